package sim

import (
	"log/slog"

	"pfeifer.dev/overlayd/camera"
	"pfeifer.dev/overlayd/overlay"
)

// FrameTrace is what one frame produced, focused on the primary lock-on slot.
type FrameTrace struct {
	Frame      int
	Visible    int
	Quality    float64
	Distance   float64
	BoxWidth   float64
	TickLength float64
	Diverged   bool
	PathMaxIdx int
}

type Trace struct {
	Name   string
	Frames []FrameTrace
}

// Runner drives a fresh engine through a scenario. OnFrame, when set, sees every
// scene before the next frame overwrites it.
type Runner struct {
	Config       overlay.Config
	Width        float64
	Height       float64
	WideCam      bool
	Experimental bool
	OnFrame      func(frame int, scene *overlay.Scene)
}

func NewRunner(cfg overlay.Config) Runner {
	return Runner{
		Config: cfg,
		Width:  DEFAULT_WIDTH,
		Height: DEFAULT_HEIGHT,
	}
}

func (r Runner) Run(s Scenario) Trace {
	engine := overlay.NewEngine(r.Config)
	trace := Trace{Name: s.Name, Frames: make([]FrameTrace, 0, s.Frames)}

	for i := range s.Frames {
		model := s.model(i)
		in := &overlay.FrameInput{
			Width:               r.Width,
			Height:              r.Height,
			WideCam:             r.WideCam,
			Experimental:        r.Experimental,
			Calibration:         camera.DefaultCalibration(),
			Model:               model,
			Radar:               s.radar(model, r.Config.MinLeadProb),
			CalibrationAlive:    true,
			ModelAlive:          true,
			RadarAlive:          true,
			LongitudinalControl: true,
		}
		scene, ok := engine.Frame(in)
		if !ok {
			slog.Warn("scenario frame skipped", "scenario", s.Name, "frame", i)
			continue
		}

		primary := scene.LockOns[0]
		ft := FrameTrace{
			Frame:      i,
			Visible:    scene.VisibleLockOns(),
			Quality:    scene.LockQuality,
			Distance:   engine.Tracker.Slots[0].D,
			TickLength: primary.TickLength,
			Diverged:   scene.LockOns[1].Diverged,
			PathMaxIdx: scene.PathMaxIdx,
		}
		if primary.Visible {
			ft.BoxWidth = primary.Box.W
		}
		trace.Frames = append(trace.Frames, ft)

		if r.OnFrame != nil {
			r.OnFrame(i, scene)
		}
	}
	return trace
}
