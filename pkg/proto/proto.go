package proto

import (
	"doorplate/pkg/bitmap"
)

// Control drives a three-color e-paper panel.
type Control interface {
	Startup() error
	Shutdown() error

	// Clear blanks the panel to white.
	Clear() error
	// Display shows an encoded payload.
	Display(p *bitmap.Payload) error
}
