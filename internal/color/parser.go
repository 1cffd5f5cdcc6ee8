package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/colorconv/internal/hexcodec"
)

// rgbPattern matches rgb(R,G,B) with 1-3 decimal digits per channel and no spaces.
var rgbPattern = regexp.MustCompile(`^rgb\((\d{1,3}),(\d{1,3}),(\d{1,3})\)$`)

// Parse validates input as an rgb() string or a 3/6-digit hex code.
// The rgb() grammar is tried first; its literal prefix cannot be a hex code.
func Parse(input string) (Parsed, error) {
	s := strings.TrimSpace(input)

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		c, err := parseRGBComponents(m[1], m[2], m[3])
		if err != nil {
			return Parsed{}, fmt.Errorf("%q: %w", s, err)
		}
		return Parsed{Kind: KindRGB, rgb: c}, nil
	}

	h, err := parseHex(s)
	if err != nil {
		return Parsed{}, err
	}
	return Parsed{Kind: KindHex, hex: h}, nil
}

func parseRGBComponents(parts ...string) (RGB, error) {
	var ch [3]uint8
	for i, part := range parts {
		// The pattern guarantees at most three decimal digits.
		v, _ := strconv.Atoi(part)
		if v > 255 {
			return RGB{}, fmt.Errorf("%w: component %d is %d", ErrRGBComponentOutOfRange, i, v)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// parseHex accepts an optional '#' and 3 or 6 hex digits, returning the
// doubled, lowercased, '#'-prefixed six digit form.
func parseHex(s string) (Hex, error) {
	digits := strings.TrimPrefix(s, "#")
	if digits == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	for i := 0; i < len(digits); i++ {
		if _, err := hexcodec.DigitToValue(digits[i]); err != nil {
			return "", fmt.Errorf("%w: %w %q: %w", ErrInvalidColor, hexcodec.ErrInvalidHex, s, err)
		}
	}

	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	switch len(digits) {
	case 3:
		for i := 0; i < 3; i++ {
			d := lowerDigit(digits[i])
			b.WriteByte(d)
			b.WriteByte(d)
		}
	case 6:
		for i := 0; i < 6; i++ {
			b.WriteByte(lowerDigit(digits[i]))
		}
	default:
		return "", fmt.Errorf("%w: %w: %q has %d digits, want 3 or 6", ErrInvalidColor, ErrInvalidHexLength, s, len(digits))
	}
	return Hex(b.String()), nil
}

func lowerDigit(ch byte) byte {
	v, _ := hexcodec.DigitToValue(ch)
	return hexcodec.ValueToDigit(v)
}
