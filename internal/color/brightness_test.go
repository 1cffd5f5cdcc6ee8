package color

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want float64
	}{
		{"black", RGB{0, 0, 0}, 0},
		{"white", RGB{255, 255, 255}, 1},
		{"pure red", RGB{255, 0, 0}, 0.5},
		{"ff0022", RGB{255, 0, 34}, 0.5},
		{"mid gray", RGB{51, 51, 51}, 0.2},
		{"default yellow", RGB{255, 212, 84}, (1 + 84.0/255) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Brightness(tt.c), 1e-12)
		})
	}
}

// go-colorful computes HSL lightness independently; Brightness must agree.
func TestBrightness_MatchesHSLLightness(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				_, _, l := colorful.Color{
					R: float64(r) / 255,
					G: float64(g) / 255,
					B: float64(b) / 255,
				}.Hsl()

				got := Brightness(c)
				if got < 0 || got > 1 {
					t.Fatalf("Brightness(%v) = %v, outside [0,1]", c, got)
				}
				assert.InDelta(t, l, got, 1e-9, "Brightness(%v)", c)
			}
		}
	}
}
