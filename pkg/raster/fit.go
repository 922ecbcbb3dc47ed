package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// Panel limits of the 7.5" three-color doorplate.
const (
	MaxWidth  = 800
	MaxHeight = 480
)

// Fit scales img down proportionally with a Lanczos filter when it exceeds
// maxW×maxH. Smaller images keep their size. The result always starts at
// (0, 0).
func Fit(img image.Image, maxW, maxH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() > maxW || b.Dy() > maxH {
		return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}
	return imaging.Clone(img)
}
