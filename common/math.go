package common

// Clamp limits v to the [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
