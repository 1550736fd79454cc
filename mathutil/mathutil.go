package mathutil

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// AbsFloat returns |v|.
func AbsFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
