package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "doorplate"
	app.Usage = "Three-color e-paper payload tool"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"DOORPLATE_VERBOSE"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		encodeCommand(),
		compressCommand(),
		decompressCommand(),
		expandCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		logger, _ := zap.NewDevelopment()
		logger.Fatal("run failed", zap.Error(err))
	}
}

func newLogger(c *cli.Context) *zap.Logger {
	if !c.Bool("verbose") {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
