package rle

import (
	"fmt"
)

// Stats compares the length of an input hex string with its encoding.
type Stats struct {
	Original   int
	Compressed int
}

// Ratio is the share of characters saved, in percent.
func (s Stats) Ratio() float64 {
	if s.Original == 0 {
		return 0
	}
	return (1 - float64(s.Compressed)/float64(s.Original)) * 100
}

func (s Stats) Saved() int {
	return s.Original - s.Compressed
}

func (s Stats) String() string {
	return fmt.Sprintf("%d -> %d chars (%.2f%%, saved %d)", s.Original, s.Compressed, s.Ratio(), s.Saved())
}
