package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/overlayd/camera"
	m "pfeifer.dev/overlayd/math"
)

func testModel() *ModelFrame {
	model := &ModelFrame{
		FrameID:  7,
		Position: straightPath(0, 0),
	}
	for i, y := range []float64{-5.4, -1.8, 1.8, 5.4} {
		model.LaneLines[i] = straightPath(y, PATH_Z_OFFSET)
		model.LaneLineProbs[i] = 0.9
	}
	for i, y := range []float64{-7, 7} {
		model.RoadEdges[i] = straightPath(y, PATH_Z_OFFSET)
		model.RoadEdgeStds[i] = 0.2
	}
	return model
}

func testInput(model *ModelFrame) *FrameInput {
	return &FrameInput{
		Width:               testWidth,
		Height:              testHeight,
		Calibration:         camera.DefaultCalibration(),
		Model:               model,
		Radar:               &RadarFrame{},
		CalibrationAlive:    true,
		ModelAlive:          true,
		RadarAlive:          true,
		LongitudinalControl: true,
	}
}

type recordingCanvas struct {
	polygons map[Style]int
	rects    int
	lines    int
	texts    []string
	stops    []GradientStop
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{polygons: map[Style]int{}}
}

func (c *recordingCanvas) FillPolygon(points []m.Point, style Style, alpha float64) {
	c.polygons[style]++
}

func (c *recordingCanvas) FillGradient(points []m.Point, stops []GradientStop) {
	c.polygons[StylePath]++
	c.stops = append(c.stops, stops...)
}

func (c *recordingCanvas) StrokeRect(r m.Rect, style Style, alpha float64, width float64) {
	c.rects++
}

func (c *recordingCanvas) Line(from, to m.Point, style Style, alpha float64, width float64) {
	c.lines++
}

func (c *recordingCanvas) Text(r m.Rect, text string, placement LabelPlacement, style Style, alpha float64) {
	c.texts = append(c.texts, text)
}

func TestEngineStraightRoad(t *testing.T) {
	e := NewEngine(DefaultConfig())
	scene, ok := e.Frame(testInput(testModel()))
	require.True(t, ok)

	assert.Equal(t, uint32(7), scene.FrameID)
	assert.Equal(t, MAX_DRAW_DISTANCE, scene.DrawDistance)
	assert.Equal(t, testPoints-1, scene.LaneMaxIdx)
	assert.Equal(t, testPoints-1, scene.PathMaxIdx)

	require.NotZero(t, scene.Path.Len())
	for _, pt := range scene.Path.Points {
		assert.True(t, scene.Transform.Clip.Contains(pt))
	}
	for i := range scene.LaneLines {
		assert.NotZero(t, scene.LaneLines[i].Len())
	}
	for i := range scene.RoadEdges {
		assert.NotZero(t, scene.RoadEdges[i].Len())
	}
	assert.Zero(t, scene.VisibleLockOns())
}

func TestEnginePathStopsShortOfLead(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testInput(testModel())
	in.Radar.Leads[0] = RadarLead{Status: true, DRel: 20}

	scene, ok := e.Frame(in)
	require.True(t, ok)
	assert.Equal(t, 30.0, scene.PathDrawDistance)
	assert.Equal(t, 14, scene.PathMaxIdx)
	assert.True(t, scene.LeadVisible[0])
	assert.False(t, scene.LeadVisible[1])

	in.RadarAlive = false
	scene, ok = e.Frame(in)
	require.True(t, ok)
	assert.Equal(t, testPoints-1, scene.PathMaxIdx)
	assert.False(t, scene.LeadVisible[0])
}

func TestEngineLeadTwoHiddenWhenClose(t *testing.T) {
	e := NewEngine(DefaultConfig())
	in := testInput(testModel())
	in.Radar.Leads[0] = RadarLead{Status: true, DRel: 20}
	in.Radar.Leads[1] = RadarLead{Status: true, DRel: 22}

	scene, _ := e.Frame(in)
	assert.True(t, scene.LeadVisible[0])
	assert.False(t, scene.LeadVisible[1])

	in.Radar.Leads[1].DRel = 40
	scene, _ = e.Frame(in)
	assert.True(t, scene.LeadVisible[1])
}

func TestEngineLockOnProbabilityGate(t *testing.T) {
	model := testModel()
	model.LeadCount = 1
	model.Leads[0] = LeadCandidate{X: 5, Prob: 0.9}

	e := NewEngine(DefaultConfig())
	scene, ok := e.Frame(testInput(model))
	require.True(t, ok)
	assert.True(t, scene.LockOns[0].Visible)
	assert.NotZero(t, e.Tracker.Slots[0].X)

	for _, prob := range []float64{0.15, DEFAULT_MIN_LEAD_PROB} {
		model.Leads[0].Prob = prob
		e := NewEngine(DefaultConfig())
		scene, ok := e.Frame(testInput(model))
		require.True(t, ok)
		assert.False(t, scene.LockOns[0].Visible)
		s := e.Tracker.Slots[0]
		assert.Zero(t, s.X)
		assert.Zero(t, s.Y)
		assert.Zero(t, s.D)
		assert.Zero(t, s.Quality)
	}
}

func TestEngineLockOnLowProbabilityKeepsState(t *testing.T) {
	model := testModel()
	model.LeadCount = 1
	model.Leads[0] = LeadCandidate{X: 5, Prob: 0.9}

	e := NewEngine(DefaultConfig())
	_, ok := e.Frame(testInput(model))
	require.True(t, ok)
	held := e.Tracker.Slots[0]
	require.NotZero(t, held.X)

	model.Leads[0].Prob = 0.15
	scene, ok := e.Frame(testInput(model))
	require.True(t, ok)
	assert.False(t, scene.LockOns[0].Visible)

	s := e.Tracker.Slots[0]
	assert.Equal(t, held.Missed+1, s.Missed)
	s.Missed = held.Missed
	assert.Equal(t, held, s)
}

func TestEngineLockOnRequiresLongitudinal(t *testing.T) {
	model := testModel()
	model.LeadCount = 2
	model.Leads[0] = LeadCandidate{X: 30, Prob: 0.9}
	model.Leads[1] = LeadCandidate{X: 30, Prob: 0.9}

	e := NewEngine(DefaultConfig())
	in := testInput(model)
	in.LongitudinalControl = false
	scene, ok := e.Frame(in)
	require.True(t, ok)
	assert.Zero(t, scene.VisibleLockOns())
	assert.Equal(t, LockOnState{}, e.Tracker.Slots[0])

	in.LongitudinalControl = true
	scene, _ = e.Frame(in)
	assert.Equal(t, 2, scene.VisibleLockOns())
}

func TestEngineSkipsStaleFrames(t *testing.T) {
	model := testModel()
	model.LeadCount = 1
	model.Leads[0] = LeadCandidate{X: 30, Prob: 0.9}

	e := NewEngine(DefaultConfig())
	for _, in := range []*FrameInput{
		{Model: model, ModelAlive: true},
		{Model: model, CalibrationAlive: true},
		{CalibrationAlive: true, ModelAlive: true},
	} {
		scene, ok := e.Frame(in)
		assert.False(t, ok)
		assert.Nil(t, scene)
	}
	assert.Equal(t, [MAX_LEAD_SLOTS]LockOnState{}, e.Tracker.Slots)
}

func TestEngineMissesUnusedSlots(t *testing.T) {
	model := testModel()
	model.LeadCount = 1
	model.Leads[0] = LeadCandidate{X: 30, Prob: 0.9}

	cfg := DefaultConfig()
	cfg.LockOnStaleResetFrames = 2
	e := NewEngine(cfg)
	in := testInput(model)
	e.Frame(in)
	require.NotZero(t, e.Tracker.Slots[0].X)

	model.Leads[0].Prob = 0.1
	e.Frame(in)
	assert.NotZero(t, e.Tracker.Slots[0].X)
	e.Frame(in)
	assert.Zero(t, e.Tracker.Slots[0].X)
}

func TestSceneDraw(t *testing.T) {
	model := testModel()
	model.LeadCount = 2
	model.Leads[0] = LeadCandidate{X: 20, Prob: 0.9}
	model.Leads[1] = LeadCandidate{X: 20, Prob: 0.9}

	e := NewEngine(DefaultConfig())
	in := testInput(model)
	in.Radar.Leads[0] = RadarLead{Status: true, DRel: 20}
	scene, ok := e.Frame(in)
	require.True(t, ok)

	c := newRecordingCanvas()
	scene.Draw(c)
	assert.Equal(t, LANE_LINE_COUNT, c.polygons[StyleLaneLine])
	assert.Equal(t, ROAD_EDGE_COUNT, c.polygons[StyleRoadEdge])
	assert.Equal(t, 1, c.polygons[StylePath])
	assert.Len(t, c.stops, len(defaultPathGradient))
	assert.Equal(t, 1, c.polygons[StyleLeadGlow])
	assert.Equal(t, 1, c.polygons[StyleLeadChevron])
	assert.Equal(t, 2, c.rects)
	assert.Contains(t, c.texts, "1")
}

func TestEnginePathGradient(t *testing.T) {
	model := testModel()
	for range testPoints {
		model.Acceleration = append(model.Acceleration, 2)
	}

	e := NewEngine(DefaultConfig())
	in := testInput(model)
	scene, ok := e.Frame(in)
	require.True(t, ok)
	assert.Equal(t, defaultPathGradient[:], scene.PathGradient)

	in.Experimental = true
	scene, ok = e.Frame(in)
	require.True(t, ok)
	require.NotEmpty(t, scene.PathGradient)
	assert.LessOrEqual(t, len(scene.PathGradient), scene.Path.Len()/4+1)
	for i, stop := range scene.PathGradient {
		assert.GreaterOrEqual(t, stop.Pos, 0.0)
		assert.LessOrEqual(t, stop.Pos, 1.0)
		assert.Equal(t, 120.0, stop.Hue)
		assert.Equal(t, 1.0, stop.Saturation)
		assert.InDelta(t, 0.62, stop.Lightness, 1e-9)
		if i > 0 {
			assert.Greater(t, stop.Pos, scene.PathGradient[i-1].Pos, "stops run from the bottom up")
		}
	}

	// no acceleration profile, nothing to color by
	model.Acceleration = nil
	scene, ok = e.Frame(in)
	require.True(t, ok)
	assert.Empty(t, scene.PathGradient)
}
