package render

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"doorplate/pkg/proto"
)

type Option func(r *Renderer)

func WithDevice(dev proto.Control) Option {
	return func(r *Renderer) {
		r.dev = dev
	}
}

func WithOutput(fs afero.Fs, name string) Option {
	return func(r *Renderer) {
		r.fs = fs
		r.name = name
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) {
		r.log = log.With(zap.String("via", "render"))
	}
}
