// Package encoding provides text encoding utilities for mesh file formats.
package encoding

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewTextReader wraps r so that a leading byte order mark is consumed.
// UTF-16 input with a BOM is converted to UTF-8; anything else is read as
// UTF-8 with invalid sequences replaced by U+FFFD.
func NewTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// FixedString returns s truncated or padded with pad to exactly size bytes.
// Truncation never splits a multi-byte UTF-8 sequence; the cut rune is
// replaced by padding.
func FixedString(s string, size int, pad byte) []byte {
	result := make([]byte, size)
	n := 0
	for _, r := range s {
		w := len(string(r))
		if n+w > size {
			break
		}
		n += copy(result[n:], string(r))
	}
	for i := n; i < size; i++ {
		result[i] = pad
	}
	return result
}
