// Package palette classifies raster pixels into the three inks of a
// black/white/red e-paper panel.
package palette

import (
	"image/color"
)

// Ink is one of the renderable pixel states of a three-color panel.
type Ink uint8

const (
	Unclassified Ink = iota
	Black
	White
	Red
)

func (i Ink) String() string {
	switch i {
	case Black:
		return "black"
	case White:
		return "white"
	case Red:
		return "red"
	}
	return "unclassified"
}

// Color returns the display color of the ink.
func (i Ink) Color() color.Color {
	switch i {
	case Black:
		return color.RGBA{A: 0xFF}
	case White:
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	case Red:
		return color.RGBA{R: 0xFF, A: 0xFF}
	}
	return color.Transparent
}

// Model is the palette of the panel, indexed so that Model()[i-1] is Ink i.
func Model() color.Palette {
	return color.Palette{Black.Color(), White.Color(), Red.Color()}
}
