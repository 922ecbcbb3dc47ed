package palette

import (
	"github.com/samber/lo"
)

// Mask is a W×H grid of booleans addressed from the top-left corner.
type Mask struct {
	width  int
	height int
	bits   []bool
}

func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

func (m *Mask) Width() int {
	return m.width
}

func (m *Mask) Height() int {
	return m.height
}

// At reports false for coordinates outside the mask.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = v
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	return lo.Count(m.bits, true)
}

// Masks is the result of a classification: one mask per ink.
type Masks struct {
	Black *Mask
	White *Mask
	Red   *Mask
}

func newMasks(width, height int) *Masks {
	return &Masks{
		Black: NewMask(width, height),
		White: NewMask(width, height),
		Red:   NewMask(width, height),
	}
}

func (m *Masks) Width() int {
	return m.Black.width
}

func (m *Masks) Height() int {
	return m.Black.height
}

// Mask returns the mask of the given ink, or nil for Unclassified.
func (m *Masks) Mask(ink Ink) *Mask {
	switch ink {
	case Black:
		return m.Black
	case White:
		return m.White
	case Red:
		return m.Red
	}
	return nil
}

// InkAt returns the ink of a pixel. Unclassified means the masks were built
// by hand and leave the pixel uncovered.
func (m *Masks) InkAt(x, y int) Ink {
	switch {
	case m.Black.At(x, y):
		return Black
	case m.Red.At(x, y):
		return Red
	case m.White.At(x, y):
		return White
	}
	return Unclassified
}

func (m *Masks) set(x, y int, ink Ink) {
	m.Mask(ink).Set(x, y, true)
}

// Counts returns the number of pixels per ink.
func (m *Masks) Counts() map[Ink]int {
	return map[Ink]int{
		Black: m.Black.Count(),
		White: m.White.Count(),
		Red:   m.Red.Count(),
	}
}
