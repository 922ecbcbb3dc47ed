package raster

import (
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Option func(l *Loader)

// WithFs sets the filesystem plain paths are read from.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

func WithClient(cli *resty.Client) Option {
	return func(l *Loader) {
		l.cli = cli.SetDoNotParseResponse(true)
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		l.log = log.With(zap.String("via", "raster-loader"))
	}
}

// WithProgress draws a download progress bar on w.
func WithProgress(w io.Writer) Option {
	return func(l *Loader) {
		l.progress = w
	}
}
