package color

import (
	"errors"
	"testing"

	"github.com/MeKo-Tech/colorconv/internal/hexcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    Kind
		wantHex Hex
		wantRGB RGB
	}{
		{"hex 3 digit with hash", "#fff", KindHex, "#ffffff", RGB{255, 255, 255}},
		{"hex 3 digit no hash", "f2a", KindHex, "#ff22aa", RGB{255, 34, 170}},
		{"hex 6 digit no hash", "ff0022", KindHex, "#ff0022", RGB{255, 0, 34}},
		{"hex uppercase normalized", "#FFD454", KindHex, "#ffd454", RGB{255, 212, 84}},
		{"hex mixed case", "#AbC", KindHex, "#aabbcc", RGB{170, 187, 204}},
		{"hex surrounding whitespace", "  #000000\n", KindHex, "#000000", RGB{0, 0, 0}},
		{"rgb black", "rgb(0,0,0)", KindRGB, "#000000", RGB{0, 0, 0}},
		{"rgb max", "rgb(255,255,255)", KindRGB, "#ffffff", RGB{255, 255, 255}},
		{"rgb leading zeros", "rgb(007,010,255)", KindRGB, "#070aff", RGB{7, 10, 255}},
		{"rgb mixed", "rgb(18,52,86)", KindRGB, "#123456", RGB{18, 52, 86}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.wantHex, p.Hex())
			assert.Equal(t, tt.wantRGB, p.RGB())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []error
	}{
		{"empty", "", []error{ErrInvalidColor}},
		{"only hash", "#", []error{ErrInvalidColor}},
		{"whitespace", "   ", []error{ErrInvalidColor}},
		{"words", "not a color", []error{ErrInvalidColor, hexcodec.ErrInvalidHex, hexcodec.ErrInvalidDigit}},
		{"bad hex digit", "#ggg", []error{ErrInvalidColor, hexcodec.ErrInvalidHex}},
		{"two digits", "#ab", []error{ErrInvalidColor, ErrInvalidHexLength}},
		{"four digits", "abcd", []error{ErrInvalidColor, ErrInvalidHexLength}},
		{"five digits", "#12345", []error{ErrInvalidColor, ErrInvalidHexLength}},
		{"seven digits", "#1234567", []error{ErrInvalidColor, ErrInvalidHexLength}},
		{"long digits", "ffffffffffffffffffffffff", []error{ErrInvalidColor, ErrInvalidHexLength}},
		{"double hash", "##fff", []error{ErrInvalidColor, hexcodec.ErrInvalidHex}},
		{"rgb out of range", "rgb(999,0,0)", []error{ErrRGBComponentOutOfRange}},
		{"rgb 256 blue", "rgb(0,0,256)", []error{ErrRGBComponentOutOfRange}},
		{"rgb with spaces", "rgb(0, 0, 0)", []error{ErrInvalidColor}},
		{"rgb missing component", "rgb(0,0)", []error{ErrInvalidColor}},
		{"rgb four digits", "rgb(0000,0,0)", []error{ErrInvalidColor}},
		{"rgb uppercase", "RGB(0,0,0)", []error{ErrInvalidColor}},
		{"rgba", "rgba(0,0,0,1)", []error{ErrInvalidColor}},
		{"negative", "rgb(-1,0,0)", []error{ErrInvalidColor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Parse(%q) error = %v, want errors.Is %v", tt.input, err, want)
				}
			}
		})
	}
}

func TestParse_OutOfRangeIsNotInvalidColor(t *testing.T) {
	_, err := Parse("rgb(999,0,0)")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidColor), "out-of-range rgb is a distinct failure")
}

func TestParse_HexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				p, err := Parse(string(c.Hex()))
				require.NoError(t, err)
				if p.RGB() != c {
					t.Fatalf("Parse(%s).RGB() = %v, want %v", c.Hex(), p.RGB(), c)
				}
			}
		}
	}
}

func TestParse_RGBStringRoundTrip(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {1, 2, 3}, {255, 0, 34}, {99, 100, 101}} {
		p, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, KindRGB, p.Kind)
		assert.Equal(t, c, p.RGB())
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{KindNone, KindHex, KindRGB} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var got Kind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, k, got)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("hsl")))
}
