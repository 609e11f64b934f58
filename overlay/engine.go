package overlay

import (
	"log/slog"

	"pfeifer.dev/overlayd/camera"
)

type Config struct {
	Tablet bool
	// PathAllowInvert lets the path ribbon fold over a hill crest instead of being
	// trimmed.
	PathAllowInvert        bool
	MinLeadProb            float64
	LockOnStaleResetFrames int
}

func DefaultConfig() Config {
	return Config{
		PathAllowInvert: true,
		MinLeadProb:     DEFAULT_MIN_LEAD_PROB,
	}
}

// Engine turns per frame inputs into overlay geometry. It owns the lock-on
// smoothing state and the scene buffers and is not safe for concurrent use.
type Engine struct {
	Config  Config
	Tracker LockOnTracker

	scene   Scene
	updated [MAX_LEAD_SLOTS]bool
}

func NewEngine(cfg Config) *Engine {
	e := &Engine{Config: cfg}
	e.Configure(cfg)
	return e
}

// Configure applies new settings without dropping the smoothing state.
func (e *Engine) Configure(cfg Config) {
	e.Config = cfg
	e.Tracker.Tablet = cfg.Tablet
	e.Tracker.StaleResetFrames = cfg.LockOnStaleResetFrames
}

// Frame builds the scene for one frame. It returns false, leaving every piece of
// state untouched, when calibration or model data is not alive.
func (e *Engine) Frame(in *FrameInput) (*Scene, bool) {
	if in.Model == nil || !in.CalibrationAlive || !in.ModelAlive {
		return nil, false
	}
	model := in.Model
	s := &e.scene
	s.reset()
	s.FrameID = model.FrameID
	s.Experimental = in.Experimental

	calib := in.Calibration.ForStream(in.WideCam)
	s.Transform = camera.BuildTransform(in.WideCam, camera.Intrinsics(in.WideCam), calib, in.Width, in.Height)
	t := &s.Transform

	s.DrawDistance = DrawDistance(&model.Position)
	s.LaneMaxIdx = PathLengthIdx(&model.LaneLines[0], s.DrawDistance)
	for i := range model.LaneLines {
		s.LaneLineProbs[i] = model.LaneLineProbs[i]
		s.LaneLines[i].Build(t, &model.LaneLines[i], LANE_LINE_HALF_WIDTH*model.LaneLineProbs[i], 0, s.LaneMaxIdx, false)
	}
	for i := range model.RoadEdges {
		s.RoadEdgeStds[i] = model.RoadEdgeStds[i]
		s.RoadEdges[i].Build(t, &model.RoadEdges[i], ROAD_EDGE_HALF_WIDTH, 0, s.LaneMaxIdx, false)
	}

	var leadOne RadarLead
	if in.RadarAlive && in.Radar != nil {
		leadOne = in.Radar.Leads[0]
	}
	s.PathDrawDistance = PathDrawDistance(s.DrawDistance, leadOne)
	s.PathMaxIdx = PathLengthIdx(&model.Position, s.PathDrawDistance)
	s.Path.Build(t, &model.Position, PATH_HALF_WIDTH, PATH_Z_OFFSET, s.PathMaxIdx, e.Config.PathAllowInvert)
	s.PathGradient = BuildPathGradient(s.PathGradient, &s.Path, model.Acceleration, in.Height, in.Experimental)

	if in.LongitudinalControl && in.RadarAlive {
		e.lockOn(in, s)
		if in.Radar != nil {
			e.radarLeads(in.Radar, model, s)
		}
	}
	s.LockQuality = e.Tracker.Quality()
	return s, true
}

func (e *Engine) lockOn(in *FrameInput, s *Scene) {
	model := in.Model
	e.updated = [MAX_LEAD_SLOTS]bool{}
	n := min(model.LeadCount, MAX_LEAD_SLOTS)
	for i := range n {
		lead := model.Leads[i]
		if lead.Prob <= e.Config.MinLeadProb || lead.X <= 0 {
			continue
		}
		anchor, _ := CandidateAnchor(&s.Transform, &model.Position, lead)
		if !anchor.Finite() {
			slog.Debug("lead candidate did not project", "slot", i, "x", lead.X, "y", lead.Y)
			continue
		}
		s.LockOns[i] = e.Tracker.Update(i, LockOnInput{
			Anchor: anchor,
			DRel:   lead.X,
			ARel:   lead.A,
			Prob:   lead.Prob,
		}, s.Transform.Surface, in.WideCam)
		e.updated[i] = true
	}
	for i, ok := range e.updated {
		if !ok {
			e.Tracker.Miss(i)
		}
	}
}

func (e *Engine) radarLeads(radar *RadarFrame, model *ModelFrame, s *Scene) {
	for i, lead := range radar.Leads {
		if !lead.Status {
			continue
		}
		if i == 1 && !ShowLeadTwo(radar.Leads[0], lead) {
			continue
		}
		anchor, visible := LeadAnchor(&s.Transform, &model.Position, lead.DRel, lead.YRel)
		if !visible {
			continue
		}
		s.Leads[i] = BuildLeadMarker(lead, anchor, s.Transform.Surface)
		s.LeadVisible[i] = true
	}
}
