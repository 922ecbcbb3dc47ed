// Package rle implements the textual zero-run encoding used to embed the
// fallback image in the panel firmware.
//
// The encoded form is a sequence of hex byte pairs ("3F") and zero runs
// (":120" stands for 120 zero bytes). A run count has no terminator: the
// decoder reads digits until the first non-digit, so ":31" always means 31
// zero bytes and never 3 zero bytes followed by a literal. Encoded payloads
// in the field rely on this, keep it.
//
// The encoder pays for it: a zero run followed by a byte whose first hex
// digit is 0-9 (0x01 to 0x9F) cannot end in a count and is written as
// plain "00" pairs, however long it is. Heads with many such runs come out
// larger than the run lengths suggest.
package rle

import (
	"encoding/hex"
	"strconv"
	"strings"

	"doorplate/pkg/palette"
)

// DefaultMinZeroRun is the shortest zero run worth a ":N" token.
const DefaultMinZeroRun = 3

const (
	zeroPair = "00"
	runMark  = ':'
)

// Compress encodes a hex string. Zero runs of at least minZeroRun bytes
// become ":N", shorter runs are copied as "00" pairs. A dangling last
// character is copied as is.
//
// A run followed by a character in 0-9 is copied as "00" pairs as well:
// a decoder would read that digit as part of the count.
func Compress(src string, minZeroRun int) (string, error) {
	if minZeroRun < 1 {
		return "", &palette.ConfigError{Field: "minZeroRun", Value: minZeroRun}
	}

	var sb strings.Builder
	sb.Grow(len(src))

	for i := 0; i < len(src); {
		if !isZeroPair(src, i) {
			if i+1 < len(src) {
				sb.WriteString(src[i : i+2])
				i += 2
			} else {
				sb.WriteByte(src[i])
				i++
			}
			continue
		}

		j := i
		for isZeroPair(src, j) {
			j += 2
		}

		if run := (j - i) / 2; run >= minZeroRun && !digitAt(src, j) {
			sb.WriteByte(runMark)
			sb.WriteString(strconv.Itoa(run))
		} else {
			sb.WriteString(src[i:j])
		}
		i = j
	}

	return sb.String(), nil
}

func isZeroPair(s string, i int) bool {
	return i+1 < len(s) && s[i:i+2] == zeroPair
}

func digitAt(s string, i int) bool {
	return i < len(s) && isDigit(s[i])
}

// CompressBytes hex encodes b in upper case and compresses it.
func CompressBytes(b []byte, minZeroRun int) (string, error) {
	return Compress(strings.ToUpper(hex.EncodeToString(b)), minZeroRun)
}

// Clean strips the whitespace that creeps into pasted hex dumps.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
