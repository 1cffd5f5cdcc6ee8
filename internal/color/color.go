// Package color parses, formats and measures hex and rgb() colors.
package color

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor is returned when the input matches neither the rgb() nor the hex grammar.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidHexLength is returned when a hex payload is not 3 or 6 digits long.
	ErrInvalidHexLength = errors.New("invalid hex length")
	// ErrRGBComponentOutOfRange is returned when an rgb() component exceeds 255.
	ErrRGBComponentOutOfRange = errors.New("rgb component out of range")
)

// Kind tags which grammar a color was parsed from.
type Kind int

const (
	KindNone Kind = iota
	KindHex
	KindRGB
)

func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindRGB:
		return "rgb"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "hex":
		*k = KindHex
	case "rgb":
		*k = KindRGB
	case "none", "":
		*k = KindNone
	default:
		return fmt.Errorf("unknown color kind %q", text)
	}
	return nil
}

// RGB is a color as three 8-bit channels.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Hex is a normalized hex color: '#' followed by six lowercase hex digits.
type Hex string

// Parsed is the result of Parse. Only the payload matching Kind is set.
type Parsed struct {
	Kind Kind
	rgb  RGB
	hex  Hex
}

// FromRGB wraps an RGB triple as a parsed rgb() color.
func FromRGB(c RGB) Parsed {
	return Parsed{Kind: KindRGB, rgb: c}
}

// RGB returns the color as an RGB triple, converting from hex if needed.
func (p Parsed) RGB() RGB {
	switch p.Kind {
	case KindRGB:
		return p.rgb
	case KindHex:
		return p.hex.RGB()
	default:
		panic("color: RGB called on zero Parsed")
	}
}

// Hex returns the color in canonical hex form, converting from rgb() if needed.
func (p Parsed) Hex() Hex {
	switch p.Kind {
	case KindRGB:
		return p.rgb.Hex()
	case KindHex:
		return p.hex
	default:
		panic("color: Hex called on zero Parsed")
	}
}
