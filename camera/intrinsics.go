package camera

import (
	m "pfeifer.dev/overlayd/math"
)

// Road facing camera intrinsics for the comma three sensors.
var (
	FCAM_INTRINSIC_MATRIX = m.Mat3{
		{2648.0, 0.0, 1928.0 / 2},
		{0.0, 2648.0, 1208.0 / 2},
		{0.0, 0.0, 1.0},
	}
	ECAM_INTRINSIC_MATRIX = m.Mat3{
		{567.0, 0.0, 1928.0 / 2},
		{0.0, 567.0, 1208.0 / 2},
		{0.0, 0.0, 1.0},
	}
)

// VIEW_FROM_DEVICE maps device frame (x forward, y right, z down) to camera view
// frame (x right, y down, z forward).
var VIEW_FROM_DEVICE = m.Mat3{
	{0.0, 1.0, 0.0},
	{0.0, 0.0, 1.0},
	{1.0, 0.0, 0.0},
}

const (
	NARROW_ZOOM = 1.1
	WIDE_ZOOM   = 2.0

	CLIP_MARGIN   = 500
	CENTER_MARGIN = 5

	INFINITY_POINT_DISTANCE = 1000.0
)

func Intrinsics(wide bool) m.Mat3 {
	if wide {
		return ECAM_INTRINSIC_MATRIX
	}
	return FCAM_INTRINSIC_MATRIX
}

func Zoom(wide bool) float64 {
	if wide {
		return WIDE_ZOOM
	}
	return NARROW_ZOOM
}
