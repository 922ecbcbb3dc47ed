package bitmap

import (
	"go.uber.org/zap"

	"doorplate/pkg/palette"
)

type Option func(e *Encoder)

func WithParams(p palette.Params) Option {
	return func(e *Encoder) {
		e.params = p
	}
}

func WithChunkSize(size int) Option {
	return func(e *Encoder) {
		e.chunk = size
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Encoder) {
		e.logger = logger.With(zap.String("via", "bitmap-encoder"))
	}
}
