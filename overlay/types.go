package overlay

import (
	"pfeifer.dev/overlayd/camera"
)

const (
	LANE_LINE_COUNT = 4
	ROAD_EDGE_COUNT = 2
	MAX_LEAD_SLOTS  = 5
	RADAR_LEADS     = 2
)

// Path is a forward ordered polyline in car space meters (x forward, y right, z down).
type Path struct {
	X, Y, Z []float64
}

func (p *Path) Len() int {
	return min(len(p.X), len(p.Y), len(p.Z))
}

func (p *Path) Reset() {
	p.X = p.X[:0]
	p.Y = p.Y[:0]
	p.Z = p.Z[:0]
}

func (p *Path) Append(x, y, z float64) {
	p.X = append(p.X, x)
	p.Y = append(p.Y, y)
	p.Z = append(p.Z, z)
}

// LeadCandidate is a perception lead in the model frame. Lateral offset Y uses the
// model convention (positive right).
type LeadCandidate struct {
	X    float64
	Y    float64
	A    float64
	Prob float64
}

// RadarLead is a confirmed lead. YRel uses the radar convention (positive left).
type RadarLead struct {
	Status bool
	DRel   float64
	YRel   float64
	VRel   float64
}

type ModelFrame struct {
	FrameID       uint32
	Position      Path
	LaneLines     [LANE_LINE_COUNT]Path
	LaneLineProbs [LANE_LINE_COUNT]float64
	RoadEdges     [ROAD_EDGE_COUNT]Path
	RoadEdgeStds  [ROAD_EDGE_COUNT]float64
	Leads         [MAX_LEAD_SLOTS]LeadCandidate
	LeadCount     int
	Acceleration  []float64
}

type RadarFrame struct {
	Leads [RADAR_LEADS]RadarLead
}

// FrameInput is an immutable snapshot of everything a single frame needs. The
// Alive flags come from the message layer's liveness tracking.
type FrameInput struct {
	Width  float64
	Height float64

	WideCam     bool
	Calibration camera.Calibration

	// Experimental colors the path by the planned acceleration.
	Experimental bool

	Model *ModelFrame
	Radar *RadarFrame

	CalibrationAlive    bool
	ModelAlive          bool
	RadarAlive          bool
	LongitudinalControl bool
}
