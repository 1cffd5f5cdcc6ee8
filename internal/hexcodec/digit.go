// Package hexcodec converts between hexadecimal text and non-negative integers.
package hexcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is returned when a single character is not a hex digit.
	ErrInvalidDigit = errors.New("invalid hex digit")
	// ErrInvalidHex is returned when a hex string contains an invalid digit.
	ErrInvalidHex = errors.New("invalid hex value")
	// ErrInvalidInput is returned for values outside the codec's domain.
	ErrInvalidInput = errors.New("invalid input")
)

// digits maps a value in [0,15] to its canonical (lowercase) hex digit.
const digits = "0123456789abcdef"

// digitValues maps an ASCII byte to its hex value, or -1 if it is not a hex digit.
var digitValues = [256]int8{}

func init() {
	for i := range digitValues {
		digitValues[i] = -1
	}
	for i := 0; i < 16; i++ {
		digitValues[digits[i]] = int8(i)
	}
	for c := byte('A'); c <= 'F'; c++ {
		digitValues[c] = int8(c-'A') + 10
	}
}

// DigitToValue returns the value of a single hex digit (case-insensitive).
func DigitToValue(ch byte) (int, error) {
	v := digitValues[ch]
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, ch)
	}
	return int(v), nil
}

// ValueToDigit returns the lowercase hex digit for v.
// It panics if v is outside [0,15].
func ValueToDigit(v int) byte {
	if v < 0 || v > 15 {
		panic(fmt.Sprintf("hexcodec: digit value %d out of range [0,15]", v))
	}
	return digits[v]
}
