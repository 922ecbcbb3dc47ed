package rle

import (
	"fmt"

	"github.com/pkg/errors"

	"doorplate/pkg/palette"
)

// DefaultHeadLen is the number of payload bytes the firmware stores
// compressed. An 800x480 two-plane payload is 96000 bytes; everything past
// the head is zero and is stored as a length only.
const DefaultHeadLen = 15150

// TailError reports a non-zero byte past the compressed head.
type TailError struct {
	Offset int
	Value  byte
}

func (e *TailError) Error() string {
	return fmt.Sprintf("rle: non-zero byte 0x%02X at offset %d in zero tail", e.Value, e.Offset)
}

// Firmware is a payload split into a compressed head and a zero tail.
type Firmware struct {
	Head     string
	HeadLen  int
	ZeroTail int
	Stats    Stats
}

// NewFirmware compresses the first headLen bytes of payload. The remaining
// bytes must all be zero. A payload shorter than headLen is compressed
// whole.
func NewFirmware(payload []byte, headLen, minZeroRun int) (*Firmware, error) {
	if headLen < 0 {
		return nil, &palette.ConfigError{Field: "headLen", Value: headLen}
	}
	if headLen > len(payload) {
		headLen = len(payload)
	}

	for i, b := range payload[headLen:] {
		if b != 0 {
			return nil, &TailError{Offset: headLen + i, Value: b}
		}
	}

	head, err := CompressBytes(payload[:headLen], minZeroRun)
	if err != nil {
		return nil, err
	}

	return &Firmware{
		Head:     head,
		HeadLen:  headLen,
		ZeroTail: len(payload) - headLen,
		Stats:    Stats{Original: headLen * 2, Compressed: len(head)},
	}, nil
}

// Len is the size of the expanded payload.
func (f *Firmware) Len() int {
	return f.HeadLen + f.ZeroTail
}

// Expand rebuilds the full payload.
func (f *Firmware) Expand() ([]byte, error) {
	head, err := DecompressLimit(f.Head, f.HeadLen)
	if err != nil {
		return nil, err
	}
	if len(head) != f.HeadLen {
		return nil, errors.Errorf("rle: head decodes to %d bytes, want %d", len(head), f.HeadLen)
	}

	out := make([]byte, f.Len())
	copy(out, head)
	return out, nil
}
