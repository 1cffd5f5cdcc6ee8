package color

// Brightness returns the HSL lightness of c in [0,1]: the mean of the
// largest and smallest normalized channel. It is not perceptual luminance.
func Brightness(c RGB) float64 {
	maxv := max3(c.R, c.G, c.B)
	minv := min3(c.R, c.G, c.B)
	return (float64(maxv)/255 + float64(minv)/255) / 2
}

// max3 returns the maximum of three uint8 values.
func max3(a, b, c uint8) uint8 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

// min3 returns the minimum of three uint8 values.
func min3(a, b, c uint8) uint8 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}
