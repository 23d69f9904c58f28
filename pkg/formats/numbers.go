package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Numeric field errors.
var (
	ErrNotANumber    = errors.New("expected a number")
	ErrTooFewNumbers = errors.New("too few numbers")
	ErrTrailingData  = errors.New("unexpected data after numbers")
)

// ReadNumbers reads between min and max floating-point numbers from text
// into out, which must hold at least max values.
//
// Each number may be preceded by whitespace and is taken as the longest
// valid decimal prefix of what follows, so consecutive numbers need no
// separator when the boundary is unambiguous ("1-2" reads as 1 and -2).
// Reading stops after max numbers or at the end of text. Trailing
// whitespace is ignored; anything else left over is an error.
//
// The count of numbers read is returned even on failure, and the values
// read so far stay written in out.
func ReadNumbers(text string, out []float64, min, max int) (int, error) {
	n, pos := 0, 0
	for n < max && pos < len(text) {
		if isBlank(text[pos:]) {
			pos = len(text)
			break
		}
		v, used, ok := scanNumber(text[pos:])
		if !ok {
			return n, fmt.Errorf("%w: %q", ErrNotANumber, firstField(text[pos:]))
		}
		out[n] = v
		pos += used
		n++
	}

	if n < min {
		return n, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewNumbers, n, min)
	}
	if !isBlank(text[pos:]) {
		return n, fmt.Errorf("%w: %q", ErrTrailingData, strings.TrimSpace(text[pos:]))
	}
	return n, nil
}

// scanNumber parses the longest floating-point prefix of s after leading
// whitespace. It returns the value and the number of bytes consumed,
// including the whitespace.
func scanNumber(s string) (float64, int, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i

	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	// inf, infinity and nan in any case. strconv rejects a signed nan, so
	// the sign is applied after parsing.
	for _, word := range []string{"infinity", "inf", "nan"} {
		if len(s)-i >= len(word) && strings.EqualFold(s[i:i+len(word)], word) {
			end := i + len(word)
			v, err := strconv.ParseFloat(s[i:end], 64)
			if err != nil {
				return 0, 0, false
			}
			if negative {
				v = -v
			}
			return v, end, true
		}
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0, false
	}

	// The exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, 0, false
	}
	return v, i, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return false
		}
	}
	return true
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}
