package bitutils

import "fmt"

// InvalidCharError is returned when the input contains a byte outside
// the URL-safe base64 alphabet.
type InvalidCharError struct {
	Char   byte
	Offset int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid base64 character %q at offset %d", e.Char, e.Offset)
}

// Decode6 maps a URL-safe base64 character to its 6-bit value.
// The alphabet is A-Z, a-z, 0-9, '-', '_'.
func Decode6(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A', true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 26, true
	case c >= '0' && c <= '9':
		return c - '0' + 52, true
	case c == '-':
		return 62, true
	case c == '_':
		return 63, true
	}
	return 0, false
}
