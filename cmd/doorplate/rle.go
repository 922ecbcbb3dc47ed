package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"doorplate/pkg/rle"
)

func compressCommand() *cli.Command {
	return &cli.Command{
		Name:  "compress",
		Usage: "Zero-run encode a payload",
		Description: "With --firmware only the first --head-len bytes are encoded and the rest " +
			"must be zero, as stored in the panel firmware.",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "input is a hex dump instead of raw bytes",
			},
			&cli.IntFlag{
				Name:  "min-zero-run",
				Value: rle.DefaultMinZeroRun,
				Usage: "shortest zero run written as a count",
			},
			&cli.BoolFlag{
				Name:  "firmware",
				Usage: "split into a compressed head and a zero tail",
			},
			&cli.IntFlag{
				Name:  "head-len",
				Value: rle.DefaultHeadLen,
				Usage: "bytes stored compressed in firmware mode",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "compressed text",
			},
			&cli.StringFlag{
				Name:  "sketch",
				Usage: "write C declarations for the firmware sources",
			},
			&cli.StringFlag{
				Name:  "name",
				Value: "defaultImage",
				Usage: "identifier prefix used in the sketch",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}

			logger := newLogger(c)
			defer logger.Sync()

			raw, err := readInput(c.Args().First())
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			firmware := c.Bool("firmware") || c.String("sketch") != ""

			var text string
			if c.Bool("hex") {
				text = rle.Clean(string(raw))
				if firmware {
					if raw, err = hex.DecodeString(text); err != nil {
						return cli.NewExitError(errors.Wrap(err, "hex input"), 1)
					}
				}
			} else {
				text = hex.EncodeToString(raw)
			}

			var stats rle.Stats
			var out string
			if firmware {
				f, err := rle.NewFirmware(raw, c.Int("head-len"), c.Int("min-zero-run"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				out, stats = f.Head, f.Stats

				logger.With(
					zap.Int("head", f.HeadLen),
					zap.Int("tail", f.ZeroTail),
				).Info("firmware split")

				if name := c.String("sketch"); name != "" {
					var buf bytes.Buffer
					if err := rle.WriteSketch(&buf, f, c.String("name")); err != nil {
						return cli.NewExitError(err, 1)
					}
					if err := writeOutput(name, buf.Bytes()); err != nil {
						return cli.NewExitError(err, 1)
					}
				}
			} else {
				if c.Bool("hex") {
					out, err = rle.Compress(text, c.Int("min-zero-run"))
				} else {
					out, err = rle.CompressBytes(raw, c.Int("min-zero-run"))
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				stats = rle.Stats{Original: len(text), Compressed: len(out)}
			}

			if err := writeOutput(c.String("output"), []byte(out)); err != nil {
				return cli.NewExitError(err, 1)
			}

			fmt.Fprintln(os.Stderr, stats)
			return nil
		},
	}
}

func decompressCommand() *cli.Command {
	return &cli.Command{
		Name:      "decompress",
		Usage:     "Decode zero-run text back into bytes",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "fail when the output would exceed this many bytes (0 = 64 MiB)",
			},
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "write upper-case hex instead of raw bytes",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "decoded output",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}

			logger := newLogger(c)
			defer logger.Sync()

			raw, err := readInput(c.Args().First())
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			text := rle.Clean(string(raw))
			var out []byte
			if limit := c.Int("limit"); limit > 0 {
				out, err = rle.DecompressLimit(text, limit)
			} else {
				out, err = rle.Decompress(text)
			}
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			logger.With(
				zap.Int("chars", len(text)),
				zap.String("size", bytesize.New(float64(len(out))).String()),
			).Info("decompressed")

			return writeDecoded(c, out)
		},
	}
}

func expandCommand() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "Rebuild a full payload from a firmware head and its zero tail",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "head-len",
				Value: rle.DefaultHeadLen,
				Usage: "bytes the head decodes to",
			},
			&cli.IntFlag{
				Name:     "zero-tail",
				Required: true,
				Usage:    "zero bytes following the head",
			},
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "write upper-case hex instead of raw bytes",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "bitmap.bin",
				Usage:   "payload file",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}

			logger := newLogger(c)
			defer logger.Sync()

			raw, err := readInput(c.Args().First())
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			f := &rle.Firmware{
				Head:     rle.Clean(string(raw)),
				HeadLen:  c.Int("head-len"),
				ZeroTail: c.Int("zero-tail"),
			}
			out, err := f.Expand()
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			logger.With(
				zap.Int("head", f.HeadLen),
				zap.Int("tail", f.ZeroTail),
				zap.String("size", bytesize.New(float64(len(out))).String()),
			).Info("expanded")

			return writeDecoded(c, out)
		},
	}
}

func writeDecoded(c *cli.Context, out []byte) error {
	if c.Bool("hex") {
		out = bytes.ToUpper([]byte(hex.EncodeToString(out)))
	}
	if err := writeOutput(c.String("output"), out); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}
