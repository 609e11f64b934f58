package overlay

import (
	"math"

	m "pfeifer.dev/overlayd/math"
)

const (
	MIN_DRAW_DISTANCE = 10.0
	MAX_DRAW_DISTANCE = 100.0

	LANE_LINE_HALF_WIDTH = 0.025
	ROAD_EDGE_HALF_WIDTH = 0.025
	PATH_HALF_WIDTH      = 0.9
	PATH_Z_OFFSET        = 1.22
)

// Projector maps car space points to the screen.
type Projector interface {
	Project(x, y, z float64) (m.Point, bool)
}

// PathLengthIdx returns the last index whose forward coordinate does not exceed
// target, walking from the start of the path. Index 0 is always allowed.
func PathLengthIdx(path *Path, target float64) int {
	maxIdx := 0
	for i := 1; i < len(path.X) && path.X[i] <= target; i++ {
		maxIdx = i
	}
	return maxIdx
}

// DrawDistance is how far ahead lane lines and road edges are drawn.
func DrawDistance(position *Path) float64 {
	if len(position.X) == 0 {
		return MIN_DRAW_DISTANCE
	}
	return m.Clamp(position.X[len(position.X)-1], MIN_DRAW_DISTANCE, MAX_DRAW_DISTANCE)
}

// PathDrawDistance shortens the drawn path so it ends just short of a close lead.
func PathDrawDistance(maxDistance float64, lead RadarLead) float64 {
	if !lead.Status {
		return maxDistance
	}
	leadD := lead.DRel * 2
	return m.Clamp(leadD-math.Min(leadD*0.35, 10), 0, maxDistance)
}

// Ribbon is a closed polygon around a centerline. Points holds the right edge from
// far to near followed by the left edge from near to far. Buffers are reused between
// frames so a ribbon never grows past the length of the longest model path.
type Ribbon struct {
	Points []m.Point

	left  []m.Point
	right []m.Point
}

func (r *Ribbon) Reset() {
	r.Points = r.Points[:0]
	r.left = r.left[:0]
	r.right = r.right[:0]
}

func (r *Ribbon) Len() int {
	return len(r.Points)
}

// Build projects both edges of the path up to maxIdx. A pair is only kept when both
// edges are visible. When allowInvert is false a left point lower on screen than the
// previous one is dropped so the ribbon can not fold over itself past a hill crest.
func (r *Ribbon) Build(proj Projector, path *Path, halfWidth, zOff float64, maxIdx int, allowInvert bool) {
	r.Reset()
	last := min(maxIdx, path.Len()-1)
	for i := 0; i <= last; i++ {
		// points behind the camera plane project above the frame and flicker
		if path.X[i] < 0 {
			continue
		}

		left, l := proj.Project(path.X[i], path.Y[i]-halfWidth, path.Z[i]+zOff)
		right, rv := proj.Project(path.X[i], path.Y[i]+halfWidth, path.Z[i]+zOff)
		if !(l && rv) {
			continue
		}
		if !allowInvert && len(r.left) > 0 && left.Y > r.left[len(r.left)-1].Y {
			continue
		}
		r.left = append(r.left, left)
		r.right = append(r.right, right)
	}

	for i := len(r.right) - 1; i >= 0; i-- {
		r.Points = append(r.Points, r.right[i])
	}
	r.Points = append(r.Points, r.left...)
}

// Left returns the left edge from near to far.
func (r *Ribbon) Left() []m.Point {
	return r.left
}

// Right returns the right edge from near to far.
func (r *Ribbon) Right() []m.Point {
	return r.right
}
