package rle

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// MalformedHexError reports input the decoder cannot read. Pos is the
// index into the encoded text, Offset the number of bytes decoded so far.
type MalformedHexError struct {
	Pos    int
	Offset int
	Text   string
}

func (e *MalformedHexError) Error() string {
	return fmt.Sprintf("rle: malformed input %q at position %d (byte offset %d)", e.Text, e.Pos, e.Offset)
}

// LimitError reports a stream that decodes to more bytes than allowed.
type LimitError struct {
	Pos   int
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("rle: output exceeds %d bytes at position %d", e.Limit, e.Pos)
}

// MaxDecodedLen caps the output of Decompress. A full panel payload is
// 96000 bytes.
const MaxDecodedLen = 64 << 20

// Decompress decodes the output of Compress. It stops at the first
// malformed token, or with a *LimitError once the output would pass
// MaxDecodedLen.
func Decompress(src string) ([]byte, error) {
	return decompress(src, MaxDecodedLen)
}

// DecompressLimit is Decompress for streams that must not decode to more
// than limit bytes. A run count swallowing the digits of the literal after
// it usually shows up here first.
func DecompressLimit(src string, limit int) ([]byte, error) {
	if limit < 0 || limit > MaxDecodedLen {
		return nil, errors.Errorf("rle: limit %d outside [0, %d]", limit, MaxDecodedLen)
	}
	return decompress(src, limit)
}

func decompress(src string, limit int) ([]byte, error) {
	out := make([]byte, 0, len(src)/2)

	for i := 0; i < len(src); {
		if src[i] == runMark {
			j := i + 1
			for j < len(src) && isDigit(src[j]) {
				j++
			}

			n, err := strconv.Atoi(src[i+1 : j])
			if err != nil {
				return nil, &MalformedHexError{Pos: i, Offset: len(out), Text: src[i:j]}
			}

			if n > limit-len(out) {
				return nil, &LimitError{Pos: i, Limit: limit}
			}

			out = zeroExtend(out, n)
			i = j
			continue
		}

		if i+1 >= len(src) {
			return nil, &MalformedHexError{Pos: i, Offset: len(out), Text: src[i:]}
		}

		v, err := strconv.ParseUint(src[i:i+2], 16, 8)
		if err != nil {
			return nil, &MalformedHexError{Pos: i, Offset: len(out), Text: src[i : i+2]}
		}

		if len(out) == limit {
			return nil, &LimitError{Pos: i, Limit: limit}
		}

		out = append(out, byte(v))
		i += 2
	}

	return out, nil
}

// zeroExtend appends n zero bytes, growing out at most once.
func zeroExtend(out []byte, n int) []byte {
	end := len(out) + n
	if end > cap(out) {
		size := 2 * cap(out)
		if size < end {
			size = end
		}
		buf := make([]byte, end, size)
		copy(buf, out)
		return buf
	}

	out = out[:end]
	for i := end - n; i < end; i++ {
		out[i] = 0
	}
	return out
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
