// Package hextext parses hexadecimal text into raw bytes.
package hextext

import (
	"errors"
	"fmt"
)

// ErrMalformedHexText is returned for input that is not an even length
// sequence of hexadecimal digits.
var ErrMalformedHexText = errors.New("malformed hex text")

// LineError describes a parsing failure of a single input line.
type LineError struct {
	Line int // 1-based line number
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse decodes a string of hexadecimal digit pairs, most significant digit
// first, into bytes. Upper and lower case digits are accepted.
func Parse(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedHexText, len(s))
	}

	buf := make([]byte, len(s)/2)
	for i := range buf {
		offset := i * 2
		high, ok := nibble(s[offset])
		if !ok {
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrMalformedHexText, s[offset], offset)
		}
		low, ok := nibble(s[offset+1])
		if !ok {
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrMalformedHexText, s[offset+1], offset+1)
		}
		buf[i] = high<<4 | low
	}
	return buf, nil
}

// ParseLines parses all lines in order and returns the concatenation of
// their bytes. The first line that fails to parse aborts with a *LineError.
func ParseLines(lines []string) ([]byte, error) {
	var buf []byte
	for i, line := range lines {
		b, err := Parse(line)
		if err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}
