package bitmap

import (
	"image"
	"image/color"

	"doorplate/pkg/palette"
)

// NewPlane allocates an empty plane for ink over r.
func NewPlane(r image.Rectangle, ink palette.Ink) *Plane {
	stride := Stride(r.Dx())
	return &Plane{
		pixels: make([]byte, stride*r.Dy()),
		stride: stride,
		bounds: r,
		ink:    ink,
		model:  color.Palette{palette.White.Color(), ink.Color()},
	}
}

// Plane is a 1 bit per pixel bitmap of a single ink. It implements the
// image.PalettedImage and draw.Image interfaces so a plane can be previewed
// or drawn onto directly.
//
// Each row takes Stride(width) bytes. Within a byte the most significant
// bit is the leftmost pixel:
//
//    bit   7  6  5  4  3  2  1  0
//    x    +0 +1 +2 +3 +4 +5 +6 +7
//
// Bits past the right edge of the plane belong to no pixel and stay zero.
type Plane struct {
	pixels []byte
	stride int
	bounds image.Rectangle
	ink    palette.Ink
	model  color.Palette
}

// Stride returns the number of bytes holding one row of width pixels.
func Stride(width int) int {
	return (width + 7) / 8
}

// Bounds implements the image.Image interface.
func (p *Plane) Bounds() image.Rectangle {
	return p.bounds
}

// ColorModel implements the image.Image interface.
func (p *Plane) ColorModel() color.Model {
	return p.model
}

// At implements the image.Image interface.
func (p *Plane) At(x, y int) color.Color {
	return p.model[p.ColorIndexAt(x, y)]
}

// ColorIndexAt implements the image.PalettedImage interface.
func (p *Plane) ColorIndexAt(x, y int) uint8 {
	if p.InkAt(x, y) {
		return 1
	}
	return 0
}

// Set implements the draw.Image interface. A pixel is inked when c is
// closer to the plane's ink than to white.
func (p *Plane) Set(x, y int, c color.Color) {
	p.SetInk(x, y, p.model.Index(c) == 1)
}

func (p *Plane) InkAt(x, y int) bool {
	i, mask, ok := p.offset(x, y)
	if !ok {
		return false
	}
	return p.pixels[i]&mask != 0
}

// SetInk ignores coordinates outside the bounds, which keeps the padding
// bits of the last byte in a row clear.
func (p *Plane) SetInk(x, y int, v bool) {
	i, mask, ok := p.offset(x, y)
	if !ok {
		return
	}
	if v {
		p.pixels[i] |= mask
	} else {
		p.pixels[i] &^= mask
	}
}

func (p *Plane) offset(x, y int) (int, byte, bool) {
	if x < p.bounds.Min.X || x >= p.bounds.Max.X ||
		y < p.bounds.Min.Y || y >= p.bounds.Max.Y {
		return 0, 0, false
	}
	dx := x - p.bounds.Min.X
	dy := y - p.bounds.Min.Y
	return dy*p.stride + dx>>3, 0x80 >> (dx & 7), true
}

func (p *Plane) Ink() palette.Ink {
	return p.ink
}

func (p *Plane) Stride() int {
	return p.stride
}

// Bytes returns the packed rows. The slice is owned by the plane.
func (p *Plane) Bytes() []byte {
	return p.pixels
}
