package color

import (
	"fmt"
	"strconv"

	"github.com/MeKo-Tech/colorconv/internal/hexcodec"
)

// Hex formats c as '#' followed by two lowercase hex digits per channel.
func (c RGB) Hex() Hex {
	buf := []byte{'#'}
	for _, ch := range [3]uint8{c.R, c.G, c.B} {
		// Channels are uint8, so DecimalToHex cannot fail.
		s, _ := hexcodec.DecimalToHex(int(ch))
		if len(s) < 2 {
			buf = append(buf, '0')
		}
		buf = append(buf, s...)
	}
	return Hex(buf)
}

// String formats c as rgb(R,G,B).
func (c RGB) String() string {
	buf := make([]byte, 0, len("rgb(255,255,255)"))
	buf = append(buf, "rgb("...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ',')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ',')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, ')')
	return string(buf)
}

// RGB splits h into its three channels.
// It panics if h is not a normalized hex color as produced by Parse or RGB.Hex.
func (h Hex) RGB() RGB {
	if len(h) != 7 || h[0] != '#' {
		panic(fmt.Sprintf("color: malformed hex %q", string(h)))
	}
	return RGB{
		R: mustChannel(h, 1),
		G: mustChannel(h, 3),
		B: mustChannel(h, 5),
	}
}

func (h Hex) String() string {
	return string(h)
}

func mustChannel(h Hex, at int) uint8 {
	v, err := hexcodec.HexToDecimal(string(h[at : at+2]))
	if err != nil {
		panic(fmt.Sprintf("color: malformed hex %q: %v", string(h), err))
	}
	return uint8(v)
}
