package palette

import (
	"image"
	"image/color"
	"math"
)

// Luminance returns 0.299R + 0.587G + 0.114B over 8-bit channels. Alpha is
// dropped, not composited.
func Luminance(c color.Color) float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return luma(n.R, n.G, n.B)
}

func luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// Adjust applies the gamma style contrast curve 255*(l/255)^(1/contrast).
func Adjust(l, contrast float64) float64 {
	if contrast == 1.0 {
		return l
	}
	v := 255 * math.Pow(l/255, 1/contrast)
	return math.Max(0, math.Min(255, v))
}

// Classify maps every pixel of src to exactly one ink.
func Classify(src image.Image, p Params) (*Masks, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	b := src.Bounds()
	masks := newMasks(b.Dx(), b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			masks.set(x-b.Min.X, y-b.Min.Y, p.classify(n))
		}
	}

	return masks, nil
}

func (p Params) classify(c color.NRGBA) Ink {
	if p.Mode == ModeChroma {
		if isRed(c) {
			return Red
		}
		if luma(c.R, c.G, c.B) < p.BlackThreshold {
			return Black
		}
		return White
	}

	l := Adjust(luma(c.R, c.G, c.B), p.Contrast)

	switch {
	case l < p.BlackThreshold:
		return Black
	case l > p.WhiteThreshold:
		return White
	default:
		return Red
	}
}

// isRed accepts saturated red and red blended into white at glyph edges,
// but rejects orange and brown.
func isRed(c color.NRGBA) bool {
	r, g, b := int(c.R), int(c.G), int(c.B)
	if r > 200 && g < 100 && b < 100 {
		return true
	}
	return r > g+30 && r > b+30 && r > 180 && g < 120 && b < 120
}
