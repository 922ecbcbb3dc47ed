package bitmap

import (
	"github.com/pkg/errors"

	"doorplate/pkg/palette"
)

// Masks decodes the payload the way the panel reads it. White is every
// pixel inked on neither plane.
func (p *Payload) Masks() (*palette.Masks, error) {
	black, red, err := p.Planes()
	if err != nil {
		return nil, err
	}

	bm, err := Unpack(black, p.Width, p.Height)
	if err != nil {
		return nil, errors.Wrap(err, "black plane")
	}

	rm, err := Unpack(red, p.Width, p.Height)
	if err != nil {
		return nil, errors.Wrap(err, "red plane")
	}

	wm := palette.NewMask(p.Width, p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			wm.Set(x, y, !bm.At(x, y) && !rm.At(x, y))
		}
	}

	return &palette.Masks{Black: bm, White: wm, Red: rm}, nil
}
