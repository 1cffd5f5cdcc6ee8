package hexcodec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitToValue(t *testing.T) {
	tests := []struct {
		ch   byte
		want int
	}{
		{'0', 0}, {'9', 9},
		{'a', 10}, {'A', 10},
		{'c', 12}, {'C', 12},
		{'f', 15}, {'F', 15},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			got, err := DigitToValue(tt.ch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDigitToValue_Invalid(t *testing.T) {
	for _, ch := range []byte{'g', 'G', 'z', '#', ' ', '-', 0, 0xff} {
		_, err := DigitToValue(ch)
		if !errors.Is(err, ErrInvalidDigit) {
			t.Errorf("DigitToValue(%q) error = %v, want ErrInvalidDigit", ch, err)
		}
	}
}

func TestValueToDigit_RoundTrip(t *testing.T) {
	const all = "0123456789abcdefABCDEF"
	for i := 0; i < len(all); i++ {
		d := all[i]
		v, err := DigitToValue(d)
		require.NoError(t, err)

		got := ValueToDigit(v)
		if string(got) != strings.ToLower(string(d)) {
			t.Errorf("ValueToDigit(DigitToValue(%q)) = %q", d, got)
		}
	}
}

func TestValueToDigit_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { ValueToDigit(16) })
	assert.Panics(t, func() { ValueToDigit(-1) })
}
