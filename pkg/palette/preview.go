package palette

import (
	"image"
)

// Preview renders masks as a paletted image using Model. Uncovered pixels
// show as white, the panel background.
func Preview(m *Masks) *image.Paletted {
	dst := image.NewPaletted(image.Rect(0, 0, m.Width(), m.Height()), Model())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			ink := m.InkAt(x, y)
			if ink == Unclassified {
				ink = White
			}
			dst.SetColorIndex(x, y, uint8(ink-1))
		}
	}
	return dst
}
