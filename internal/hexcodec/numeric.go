package hexcodec

import (
	"fmt"
	"math"
)

// HexToDecimal interprets s as an unsigned base-16 integer, most significant
// digit first. The empty string is 0.
func HexToDecimal(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		v, err := DigitToValue(s[i])
		if err != nil {
			return 0, fmt.Errorf("%w %q at position %d: %w", ErrInvalidHex, s, i, err)
		}
		if n > (math.MaxInt-v)/16 {
			return 0, fmt.Errorf("%w %q: overflows int", ErrInvalidHex, s)
		}
		n = n*16 + v
	}
	return n, nil
}

// DecimalToHex renders n in base 16 without leading zeros ("0" for zero).
func DecimalToHex(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative value %d", ErrInvalidInput, n)
	}
	if n == 0 {
		return "0", nil
	}

	// Least significant digit first, written from the end of the buffer.
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = ValueToDigit(n % 16)
		n /= 16
	}
	return string(buf[i:]), nil
}
