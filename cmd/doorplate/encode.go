package main

import (
	"bytes"
	"image/png"
	"io"
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"doorplate/pkg/bitmap"
	"doorplate/pkg/device/remote"
	"doorplate/pkg/palette"
	"doorplate/pkg/raster"
	"doorplate/pkg/render"
)

func encodeCommand() *cli.Command {
	def := palette.DefaultParams()

	return &cli.Command{
		Name:        "encode",
		Usage:       "Classify an image and write the interleaved payload",
		Description: "Locators are tried in order: data: URIs, http(s) URLs and file paths.",
		ArgsUsage:   "LOCATOR...",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "black-threshold",
				Value: def.BlackThreshold,
				Usage: "adjusted luminance below which a pixel is black",
			},
			&cli.Float64Flag{
				Name:  "white-threshold",
				Value: def.WhiteThreshold,
				Usage: "adjusted luminance above which a pixel is white",
			},
			&cli.Float64Flag{
				Name:  "contrast",
				Value: def.Contrast,
				Usage: "gamma contrast applied to luminance",
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: def.Mode.String(),
				Usage: "classification mode, luminance or chroma",
			},
			&cli.IntFlag{
				Name:  "chunk",
				Value: bitmap.DefaultChunkSize,
				Usage: "interleave block size in bytes",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "bitmap.bin",
				Usage:   "payload file",
			},
			&cli.StringFlag{
				Name:  "preview",
				Usage: "also write a PNG preview of the classified planes",
			},
			&cli.StringFlag{
				Name:    "device",
				EnvVars: []string{"DOORPLATE_DEVICE"},
				Usage:   "address of a render service to display the payload on",
			},
			&cli.BoolFlag{
				Name:  "no-fit",
				Usage: "do not shrink images larger than the panel",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}

			logger := newLogger(c)
			defer logger.Sync()

			mode, err := palette.ParseMode(c.String("mode"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			params := palette.Params{
				BlackThreshold: c.Float64("black-threshold"),
				WhiteThreshold: c.Float64("white-threshold"),
				Contrast:       c.Float64("contrast"),
				Mode:           mode,
			}
			if err := params.Validate(); err != nil {
				return cli.NewExitError(err, 1)
			}

			loader := raster.NewLoader(
				raster.WithLogger(logger),
				raster.WithProgress(lo.Ternary[io.Writer](c.Bool("verbose"), os.Stderr, nil)),
			)
			img, locator, err := loader.Resolve(c.Context, c.Args().Slice())
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if !c.Bool("no-fit") {
				img = raster.Fit(img, raster.MaxWidth, raster.MaxHeight)
			}

			fs, name, err := outputFs(c.String("output"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			opts := []render.Option{
				render.WithOutput(fs, name),
				render.WithLogger(logger),
			}
			if addr := c.String("device"); addr != "" {
				dev, err := remote.New(addr)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				opts = append(opts, render.WithDevice(dev))
			}

			enc := bitmap.NewEncoder(
				bitmap.WithParams(params),
				bitmap.WithChunkSize(c.Int("chunk")),
				bitmap.WithLogger(logger),
			)
			payload, err := render.New(enc, opts...).Render(img)
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			if preview := c.String("preview"); preview != "" {
				if err := writePreview(preview, payload); err != nil {
					return cli.NewExitError(err, 1)
				}
			}

			logger.With(
				zap.String("source", locator),
				zap.Int("w", payload.Width),
				zap.Int("h", payload.Height),
				zap.String("size", bytesize.New(float64(len(payload.Data))).String()),
			).Info("encoded")

			return nil
		},
	}
}

func writePreview(name string, p *bitmap.Payload) error {
	masks, err := p.Masks()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, palette.Preview(masks)); err != nil {
		return err
	}
	return writeOutput(name, buf.Bytes())
}
