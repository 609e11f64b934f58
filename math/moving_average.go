package math

// MovingAverage is a fixed window average. The window is filled with the first sample
// so the estimate is usable from the first update.
type MovingAverage struct {
	values      []float64
	index       int
	sum         float64
	initialized bool
	Estimate    float64
}

func (a *MovingAverage) Init(size int) {
	if size < 1 {
		size = 1
	}
	a.values = make([]float64, size)
	a.Reset()
}

func (a *MovingAverage) Reset() {
	a.initialized = false
	a.index = 0
	a.sum = 0
	a.Estimate = 0
}

func (a *MovingAverage) Update(val float64) float64 {
	if !a.initialized {
		for i := range a.values {
			a.values[i] = val
		}
		a.sum = val * float64(len(a.values))
		a.initialized = true
		a.Estimate = val
		return val
	}
	a.index = (a.index + 1) % len(a.values)
	a.sum += val - a.values[a.index]
	a.values[a.index] = val
	a.Estimate = a.sum / float64(len(a.values))
	return a.Estimate
}

func (a *MovingAverage) Raw() float64 {
	return a.values[a.index]
}
