package palette

import (
	"fmt"
	"math"
)

// Mode selects the rule used to pick the red ink.
type Mode uint8

const (
	// ModeLuminance assigns red to pixels whose adjusted luminance lies
	// between the two thresholds.
	ModeLuminance Mode = iota
	// ModeChroma assigns red to visibly red pixels and splits the rest on
	// the black threshold by raw luminance. Contrast is not applied. It
	// suits canvases already composed from the three inks, where
	// anti-aliased edges must not turn red.
	ModeChroma
)

func (m Mode) String() string {
	if m == ModeChroma {
		return "chroma"
	}
	return "luminance"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "luminance":
		return ModeLuminance, nil
	case "chroma":
		return ModeChroma, nil
	}
	return 0, &ConfigError{Field: "mode", Value: s}
}

type Params struct {
	BlackThreshold float64
	WhiteThreshold float64
	// Contrast is a gamma exponent applied as L^(1/Contrast); 1.0 disables it.
	Contrast float64
	Mode     Mode
}

func DefaultParams() Params {
	return Params{
		BlackThreshold: 128,
		WhiteThreshold: 128,
		Contrast:       1.0,
		Mode:           ModeLuminance,
	}
}

// Validate rejects out-of-domain values instead of clamping them.
func (p Params) Validate() error {
	if !inRange(p.BlackThreshold) {
		return &ConfigError{Field: "blackThreshold", Value: p.BlackThreshold}
	}
	if !inRange(p.WhiteThreshold) {
		return &ConfigError{Field: "whiteThreshold", Value: p.WhiteThreshold}
	}
	if math.IsNaN(p.Contrast) || math.IsInf(p.Contrast, 0) || p.Contrast <= 0 {
		return &ConfigError{Field: "contrast", Value: p.Contrast}
	}
	if p.Mode > ModeChroma {
		return &ConfigError{Field: "mode", Value: p.Mode}
	}
	return nil
}

func inRange(v float64) bool {
	return v >= 0 && v <= 255
}

// ConfigError reports a parameter outside its documented domain.
type ConfigError struct {
	Field string
	Value interface{}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}
