package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/overlayd/camera"
	m "pfeifer.dev/overlayd/math"
)

const (
	testWidth  = 1920.0
	testHeight = 1080.0
	testPoints = 50
)

func straightPath(y, z float64) Path {
	var p Path
	for i := range testPoints {
		p.Append(float64(i)*MAX_DRAW_DISTANCE/(testPoints-1), y, z)
	}
	return p
}

func testTransform(wide bool) camera.Transform {
	calib := camera.DefaultCalibration()
	return camera.BuildTransform(wide, camera.Intrinsics(wide), calib.ForStream(wide), testWidth, testHeight)
}

// stubProjector maps y to screen x and looks up screen y by forward distance.
type stubProjector struct {
	ys map[float64]float64
}

func (s stubProjector) Project(x, y, z float64) (m.Point, bool) {
	return m.Point{X: y * 100, Y: s.ys[x]}, true
}

func TestPathLengthIdx(t *testing.T) {
	p := Path{X: []float64{0, 10, 20, 30}, Y: make([]float64, 4), Z: make([]float64, 4)}
	assert.Equal(t, 2, PathLengthIdx(&p, 25))
	assert.Equal(t, 3, PathLengthIdx(&p, 30))
	assert.Equal(t, 3, PathLengthIdx(&p, 1000))
	assert.Equal(t, 0, PathLengthIdx(&p, -1))
	assert.Equal(t, 0, PathLengthIdx(&Path{}, 50))
}

func TestDrawDistance(t *testing.T) {
	assert.Equal(t, MIN_DRAW_DISTANCE, DrawDistance(&Path{}))
	p := Path{X: []float64{0, 5}, Y: []float64{0, 0}, Z: []float64{0, 0}}
	assert.Equal(t, MIN_DRAW_DISTANCE, DrawDistance(&p))
	long := straightPath(0, 0)
	long.X[len(long.X)-1] = 180
	assert.Equal(t, MAX_DRAW_DISTANCE, DrawDistance(&long))
}

func TestPathDrawDistance(t *testing.T) {
	assert.Equal(t, 100.0, PathDrawDistance(100, RadarLead{}))
	// 2*20 - min(0.35*40, 10)
	assert.Equal(t, 30.0, PathDrawDistance(100, RadarLead{Status: true, DRel: 20}))
	// 2*5 - 3.5
	assert.InDelta(t, 6.5, PathDrawDistance(100, RadarLead{Status: true, DRel: 5}), 1e-9)
	assert.Equal(t, 100.0, PathDrawDistance(100, RadarLead{Status: true, DRel: 90}))
	assert.Equal(t, 0.0, PathDrawDistance(100, RadarLead{Status: true, DRel: 0}))
}

func TestRibbonSymmetric(t *testing.T) {
	tr := testTransform(false)
	path := straightPath(0, 0)

	var r Ribbon
	r.Build(&tr, &path, PATH_HALF_WIDTH, PATH_Z_OFFSET, testPoints-1, true)
	require.NotZero(t, r.Len())
	require.Equal(t, len(r.Left()), len(r.Right()))
	assert.Equal(t, 2*len(r.Left()), r.Len())

	for i := range r.Left() {
		l, rt := r.Left()[i], r.Right()[i]
		assert.InDelta(t, testWidth, l.X+rt.X, 1e-6)
		assert.InDelta(t, l.Y, rt.Y, 1e-6)
		assert.Less(t, l.X, rt.X)
	}
	for _, pt := range r.Points {
		assert.True(t, tr.Clip.Contains(pt))
	}
}

func TestRibbonPointOrder(t *testing.T) {
	proj := stubProjector{ys: map[float64]float64{1: 500, 2: 400, 3: 300}}
	path := Path{X: []float64{1, 2, 3}, Y: []float64{0, 0, 0}, Z: []float64{0, 0, 0}}

	var r Ribbon
	r.Build(proj, &path, 1, 0, 2, false)
	require.Equal(t, 6, r.Len())
	// right edge far to near, then left edge near to far
	assert.Equal(t, m.Point{X: 100, Y: 300}, r.Points[0])
	assert.Equal(t, m.Point{X: 100, Y: 500}, r.Points[2])
	assert.Equal(t, m.Point{X: -100, Y: 500}, r.Points[3])
	assert.Equal(t, m.Point{X: -100, Y: 300}, r.Points[5])
}

func TestRibbonAntiInversion(t *testing.T) {
	proj := stubProjector{ys: map[float64]float64{1: 500, 2: 400, 3: 300, 4: 350, 5: 200}}
	path := Path{X: []float64{1, 2, 3, 4, 5}, Y: make([]float64, 5), Z: make([]float64, 5)}

	var r Ribbon
	r.Build(proj, &path, 1, 0, 4, false)
	assert.Equal(t, 8, r.Len())
	for i := 1; i < len(r.Left()); i++ {
		assert.LessOrEqual(t, r.Left()[i].Y, r.Left()[i-1].Y)
	}

	r.Build(proj, &path, 1, 0, 4, true)
	assert.Equal(t, 10, r.Len())
}

func TestRibbonRespectsMaxIdx(t *testing.T) {
	proj := stubProjector{ys: map[float64]float64{1: 500, 2: 400, 3: 300}}
	path := Path{X: []float64{1, 2, 3}, Y: make([]float64, 3), Z: make([]float64, 3)}

	var r Ribbon
	r.Build(proj, &path, 1, 0, 0, false)
	assert.Equal(t, 2, r.Len())
	r.Build(proj, &path, 1, 0, 10, false)
	assert.Equal(t, 6, r.Len())
}

func TestRibbonSkipsPointsBehindCamera(t *testing.T) {
	tr := testTransform(false)
	path := straightPath(0, 0)
	path.X[0] = -1

	var r Ribbon
	r.Build(&tr, &path, PATH_HALF_WIDTH, PATH_Z_OFFSET, testPoints-1, true)
	for _, pt := range r.Points {
		assert.True(t, pt.Finite())
	}
}
