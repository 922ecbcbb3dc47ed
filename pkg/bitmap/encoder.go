package bitmap

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"doorplate/pkg/palette"
)

// Payload is the device-ready byte stream together with the geometry the
// panel needs to read it. The geometry is not part of Data.
type Payload struct {
	Width     int
	Height    int
	ChunkSize int
	Data      []byte
}

// PlaneSize is the length of one packed plane.
func (p *Payload) PlaneSize() int {
	return Stride(p.Width) * p.Height
}

// Planes splits the payload back into its black and red planes.
func (p *Payload) Planes() (black, red []byte, err error) {
	n := p.PlaneSize()
	return Deinterleave(p.Data, n, n, p.ChunkSize)
}

// DimensionError reports a raster that has no pixels.
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dimensions %dx%d", e.Width, e.Height)
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		params: palette.DefaultParams(),
		chunk:  DefaultChunkSize,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encoder turns a raster into the interleaved black and red planes.
type Encoder struct {
	params palette.Params
	chunk  int
	logger *zap.Logger
}

func (e *Encoder) Params() palette.Params {
	return e.params
}

func (e *Encoder) ChunkSize() int {
	return e.chunk
}

func (e *Encoder) Encode(src image.Image) (*Payload, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DimensionError{Width: b.Dx(), Height: b.Dy()}
	}
	if e.chunk <= 0 {
		return nil, &palette.ConfigError{Field: "chunkSize", Value: e.chunk}
	}

	masks, err := palette.Classify(src, e.params)
	if err != nil {
		return nil, errors.Wrap(err, "classify")
	}

	black := packPlane(masks.Black, palette.Black)
	red := packPlane(masks.Red, palette.Red)

	data, err := Interleave(black.Bytes(), red.Bytes(), e.chunk)
	if err != nil {
		return nil, errors.Wrap(err, "interleave")
	}

	counts := masks.Counts()
	e.logger.With(
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
		zap.Int("black", counts[palette.Black]),
		zap.Int("white", counts[palette.White]),
		zap.Int("red", counts[palette.Red]),
		zap.Int("bytes", len(data)),
	).Debug("encoded")

	return &Payload{
		Width:     b.Dx(),
		Height:    b.Dy(),
		ChunkSize: e.chunk,
		Data:      data,
	}, nil
}

// Encode encodes src with the default parameters.
func Encode(src image.Image) (*Payload, error) {
	return NewEncoder().Encode(src)
}
