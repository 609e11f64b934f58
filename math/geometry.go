package math

import (
	m "math"
)

type Point struct {
	X, Y float64
}

func (p Point) Finite() bool {
	return !(m.IsNaN(p.X) || m.IsNaN(p.Y) || m.IsInf(p.X, 0) || m.IsInf(p.Y, 0))
}

// Rect is an axis aligned rectangle anchored at its top left corner. Screen y grows
// downward.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Adjusted grows or shrinks the rectangle edges, matching the sign convention of
// adding dx1/dy1 to the top left corner and dx2/dy2 to the bottom right one.
func (r Rect) Adjusted(dx1, dy1, dx2, dy2 float64) Rect {
	return Rect{
		X: r.X + dx1,
		Y: r.Y + dy1,
		W: r.W - dx1 + dx2,
		H: r.H - dy1 + dy2,
	}
}

// Contains never reports NaN or infinite points as inside.
func (r Rect) Contains(p Point) bool {
	if !p.Finite() {
		return false
	}
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}
