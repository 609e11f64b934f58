package math

// Smooth moves cur a 1/k step toward target. Repeated calls form a first order
// exponential filter with time constant k frames.
func Smooth(cur, target, k float64) float64 {
	return cur + (target-cur)/k
}

// Interp maps x from [x0, x1] onto [y0, y1], clamping x to the input range first.
func Interp(x, x0, x1, y0, y1 float64) float64 {
	x = Clamp(x, min(x0, x1), max(x0, x1))
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
