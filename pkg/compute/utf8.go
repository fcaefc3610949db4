package compute

import (
	"bytes"
	"unicode/utf8"
)

// toUpper is an optimized version of bytes.ToUpper that uses a fast path for ASCII-only strings.
// For ASCII strings, it subtracts 32 from lowercase letters ('a'-'z') to convert to uppercase.
// For strings containing non-ASCII characters, it falls back to bytes.ToUpper.
// The result is written to the provided result buffer. This function panics if the buffer length is too small.
func toUpper(b []byte, result []byte) []byte {
	if len(b) == 0 {
		return b
	}
	if len(b) != len(result) {
		panic("buffer length mismatch")
	}

	for i := 0; i < len(b); i++ {
		c := b[i]
		// If we encounter a non-ASCII byte, fall back to standard library
		if c >= utf8.RuneSelf {
			return bytes.ToUpper(b)
		}
		// Fast ASCII path: subtract 32 from 'a'-'z' range
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A' // subtract 32
		}
		result[i] = c
	}
	return result
}

// Length returns the number of runes in s.
func Length(s []byte) int32 { return int32(utf8.RuneCount(s)) }
