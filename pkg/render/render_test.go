package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"doorplate/pkg/bitmap"
	"doorplate/pkg/device/virtual"
)

type failing struct{}

func (failing) Startup() error                { return nil }
func (failing) Shutdown() error               { return nil }
func (failing) Clear() error                  { return nil }
func (failing) Display(*bitmap.Payload) error { return errors.New("panel busy") }

func sample() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 24, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 24; x++ {
			switch {
			case x < 8:
				img.Set(x, y, color.Black)
			case x < 16:
				img.Set(x, y, color.White)
			default:
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
	}
	return img
}

func TestRender(t *testing.T) {
	fs := afero.NewMemMapFs()
	enc := bitmap.NewEncoder(bitmap.WithChunkSize(4))
	r := New(enc,
		WithOutput(fs, "out/bitmap.bin"),
		WithDevice(virtual.Recorder(zap.NewNop(), fs, "out/preview")),
		WithLogger(zap.NewNop()),
	)

	p, err := r.Render(sample())
	require.NoError(t, err)

	saved, err := afero.ReadFile(fs, "out/bitmap.bin")
	require.NoError(t, err)
	assert.Equal(t, p.Data, saved)

	ok, err := afero.Exists(fs, "out/preview.png")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRenderWithoutSinks(t *testing.T) {
	p, err := New(bitmap.NewEncoder()).Render(sample())
	require.NoError(t, err)
	assert.Equal(t, 24, p.Width)
	assert.Len(t, p.Data, 2*3*4)
}

func TestRenderDeviceError(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := New(bitmap.NewEncoder(), WithOutput(fs, "bitmap.bin"), WithDevice(failing{}))

	p, err := r.Render(sample())
	assert.Nil(t, p)
	assert.ErrorContains(t, err, "panel busy")
}

func TestRenderEncodeError(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := New(bitmap.NewEncoder(), WithOutput(fs, "bitmap.bin"))

	_, err := r.Render(image.NewNRGBA(image.Rect(0, 0, 0, 3)))
	var de *bitmap.DimensionError
	assert.True(t, errors.As(err, &de))

	ok, _ := afero.Exists(fs, "bitmap.bin")
	assert.False(t, ok)
}
