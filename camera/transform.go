package camera

import (
	m "pfeifer.dev/overlayd/math"
)

// Transform is the per frame mapping from car space to screen space. It is a value
// type and is rebuilt every frame from the active stream and the live calibration.
type Transform struct {
	Wide     bool
	Zoom     float64
	XOffset  float64
	YOffset  float64
	CarSpace m.Mat3
	Frame    m.Mat4
	Surface  m.Rect
	Clip     m.Rect
}

// BuildTransform combines the camera intrinsics with the calibration and fits the
// result to a surface of the given size. The point at infinity straight ahead lands
// in the middle of the surface unless that would pull the video more than
// CENTER_MARGIN pixels past its edge.
func BuildTransform(wide bool, intrinsic, calibration m.Mat3, width, height float64) Transform {
	calibTransform := intrinsic.Mul(calibration)

	zoom := Zoom(wide)
	kep := calibTransform.MulVec(m.Vec3{X: INFINITY_POINT_DISTANCE})

	centerX := intrinsic[0][2]
	centerY := intrinsic[1][2]

	maxXOffset := centerX*zoom - width/2 - CENTER_MARGIN
	maxYOffset := centerY*zoom - height/2 - CENTER_MARGIN
	// a surface larger than the zoomed video leaves no room to shift
	maxXOffset = max(maxXOffset, 0)
	maxYOffset = max(maxYOffset, 0)
	xOffset := m.Clamp((kep.X/kep.Z-centerX)*zoom, -maxXOffset, maxXOffset)
	yOffset := m.Clamp((kep.Y/kep.Z-centerY)*zoom, -maxYOffset, maxYOffset)

	// 1) put (0, 0) in the middle of the video
	// 2) apply the same scaling as the video
	// 3) put (0, 0) back in the top left corner
	videoTransform := m.Mat3{
		{zoom, 0, (width/2 - xOffset) - centerX*zoom},
		{0, zoom, (height/2 - yOffset) - centerY*zoom},
		{0, 0, 1},
	}

	surface := m.NewRect(0, 0, width, height)
	zx := zoom * 2 * centerX / width
	zy := zoom * 2 * centerY / height

	return Transform{
		Wide:     wide,
		Zoom:     zoom,
		XOffset:  xOffset,
		YOffset:  yOffset,
		CarSpace: videoTransform.Mul(calibTransform),
		Frame: m.Mat4{
			{zx, 0, 0, -xOffset / width * 2},
			{0, zy, 0, yOffset / height * 2},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		Surface: surface,
		Clip:    surface.Adjusted(-CLIP_MARGIN, -CLIP_MARGIN, CLIP_MARGIN, CLIP_MARGIN),
	}
}

// Project maps a car space point to the screen and reports whether it lies in the
// clip region. Callers must filter out points at or behind the camera plane.
func (t *Transform) Project(x, y, z float64) (m.Point, bool) {
	pt := t.CarSpace.MulVec(m.Vec3{X: x, Y: y, Z: z})
	out := m.Point{X: pt.X / pt.Z, Y: pt.Y / pt.Z}
	return out, t.Clip.Contains(out)
}
