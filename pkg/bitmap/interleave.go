package bitmap

import (
	"github.com/pkg/errors"

	"doorplate/pkg/palette"
)

// DefaultChunkSize is the block size the panel firmware reads per plane.
const DefaultChunkSize = 800

// Interleave alternates chunk-byte blocks of a and b: a[0:k], b[0:k],
// a[k:2k], b[k:2k], ... until both are exhausted. The shorter stream simply
// stops contributing.
func Interleave(a, b []byte, chunk int) ([]byte, error) {
	if chunk <= 0 {
		return nil, &palette.ConfigError{Field: "chunkSize", Value: chunk}
	}

	out := make([]byte, 0, len(a)+len(b))
	for pos := 0; pos < max(len(a), len(b)); pos += chunk {
		out = append(out, window(a, pos, chunk)...)
		out = append(out, window(b, pos, chunk)...)
	}
	return out, nil
}

// Deinterleave splits an interleaved stream back into its two planes of
// known lengths.
func Deinterleave(data []byte, lenA, lenB, chunk int) ([]byte, []byte, error) {
	if chunk <= 0 {
		return nil, nil, &palette.ConfigError{Field: "chunkSize", Value: chunk}
	}
	if lenA < 0 || lenB < 0 || len(data) != lenA+lenB {
		return nil, nil, errors.Errorf("stream is %d bytes, planes need %d+%d", len(data), lenA, lenB)
	}

	a := make([]byte, 0, lenA)
	b := make([]byte, 0, lenB)
	cur := 0
	for pos := 0; pos < max(lenA, lenB); pos += chunk {
		n := span(lenA, pos, chunk)
		a = append(a, data[cur:cur+n]...)
		cur += n

		n = span(lenB, pos, chunk)
		b = append(b, data[cur:cur+n]...)
		cur += n
	}
	return a, b, nil
}

func window(s []byte, pos, n int) []byte {
	if pos >= len(s) {
		return nil
	}
	return s[pos : pos+span(len(s), pos, n)]
}

// span is the number of bytes a round at pos takes from a stream of size.
func span(size, pos, n int) int {
	if pos >= size {
		return 0
	}
	return min(n, size-pos)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
