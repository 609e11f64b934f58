package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat3MulIdentity(t *testing.T) {
	a := Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	assert.Equal(t, a, a.Mul(Identity3()))
	assert.Equal(t, a, Identity3().Mul(a))
}

func TestMat3MulVec(t *testing.T) {
	a := Mat3{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}
	assert.Equal(t, Vec3{X: 2, Y: 3, Z: 1}, a.MulVec(Vec3{X: 1, Y: 2, Z: 3}))
}

func TestRectAdjustedContains(t *testing.T) {
	r := NewRect(0, 0, 100, 50).Adjusted(-10, -10, 10, 10)
	assert.Equal(t, NewRect(-10, -10, 120, 70), r)
	assert.True(t, r.Contains(Point{X: -10, Y: 60}))
	assert.False(t, r.Contains(Point{X: 111, Y: 0}))
	assert.False(t, r.Contains(Point{X: m.NaN(), Y: 0}))
	assert.False(t, r.Contains(Point{X: 0, Y: m.Inf(1)}))
}

func TestSmoothConverges(t *testing.T) {
	for _, k := range []float64{5, 6, 10, 20} {
		v := 0.0
		for range int(k * 5) {
			v = Smooth(v, 100, k)
		}
		assert.InDelta(t, 100, v, 1, "k=%v", k)
	}
}

func TestMovingAverage(t *testing.T) {
	ma := MovingAverage{}
	ma.Init(4)
	assert.Equal(t, 2.0, ma.Update(2))
	ma.Update(6)
	ma.Update(6)
	assert.InDelta(t, 4.0, ma.Estimate, 1e-9)
	assert.Equal(t, 6.0, ma.Raw())
	ma.Update(6)
	ma.Update(6)
	assert.InDelta(t, 6.0, ma.Estimate, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10.0, Clamp(3, 10, 100))
	assert.Equal(t, 100.0, Clamp(300, 10, 100))
	assert.Equal(t, 42.0, Clamp(42, 10, 100))
}

func TestInterp(t *testing.T) {
	assert.InDelta(t, 0.4, Interp(0.2, 0.375, 0.75, 0.4, 0), 1e-9)
	assert.InDelta(t, 0.2, Interp(0.5625, 0.375, 0.75, 0.4, 0), 1e-9)
	assert.InDelta(t, 0.0, Interp(0.9, 0.375, 0.75, 0.4, 0), 1e-9)
	assert.InDelta(t, 0.785, Interp(0.5, 0, 1, 0.95, 0.62), 1e-9)
}
