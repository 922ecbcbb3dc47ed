package render

import (
	"image"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"doorplate/internal/fsutil"
	"doorplate/pkg/bitmap"
	"doorplate/pkg/proto"
)

func New(enc *bitmap.Encoder, opts ...Option) *Renderer {
	r := &Renderer{
		enc: enc,
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Renderer turns rasters into payloads and hands them to an output file,
// a device, or both.
type Renderer struct {
	enc  *bitmap.Encoder
	dev  proto.Control
	fs   afero.Fs
	name string
	log  *zap.Logger
}

func (r *Renderer) Render(img image.Image) (*bitmap.Payload, error) {
	p, err := r.enc.Encode(img)
	if err != nil {
		return nil, err
	}

	if r.fs != nil {
		if err := fsutil.WriteFile(r.fs, r.name, p.Data, 0644); err != nil {
			return nil, errors.Wrapf(err, "write %s", r.name)
		}
		r.log.With(zap.String("name", r.name), zap.Int("bytes", len(p.Data))).Info("payload saved")
	}

	if r.dev != nil {
		if err := r.dev.Display(p); err != nil {
			return nil, errors.Wrap(err, "display")
		}
		r.log.Debug("payload displayed")
	}

	return p, nil
}
