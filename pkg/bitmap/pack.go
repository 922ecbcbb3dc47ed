package bitmap

import (
	"image"

	"github.com/pkg/errors"

	"doorplate/pkg/palette"
)

// Pack packs a mask into Stride(W)*H bytes, row-major, MSB first.
func Pack(m *palette.Mask) []byte {
	return packPlane(m, palette.Unclassified).Bytes()
}

func packPlane(m *palette.Mask, ink palette.Ink) *Plane {
	p := NewPlane(image.Rect(0, 0, m.Width(), m.Height()), ink)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y) {
				p.SetInk(x, y, true)
			}
		}
	}
	return p
}

// Unpack is the inverse of Pack. Padding bits are ignored.
func Unpack(data []byte, width, height int) (*palette.Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{Width: width, Height: height}
	}

	stride := Stride(width)
	if len(data) != stride*height {
		return nil, errors.Errorf("plane is %d bytes, %dx%d needs %d", len(data), width, height, stride*height)
	}

	m := palette.NewMask(width, height)
	for y := 0; y < height; y++ {
		row := data[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			if row[x>>3]&(0x80>>(x&7)) != 0 {
				m.Set(x, y, true)
			}
		}
	}
	return m, nil
}
