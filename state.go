package main

import (
	"log/slog"
	"time"

	"pfeifer.dev/overlayd/camera"
	"pfeifer.dev/overlayd/overlay"
	ms "pfeifer.dev/overlayd/settings"
	"pfeifer.dev/overlayd/utils"
)

// State is everything the daemon knows about the car between frames. It is only
// touched from the main loop.
type State struct {
	Model       overlay.ModelFrame
	Radar       overlay.RadarFrame
	Calibration camera.Calibration
	Car         CarState

	ModelUpdate       utils.UpdateTracker
	CalibrationUpdate utils.UpdateTracker
	RadarUpdate       utils.UpdateTracker

	FrameRate utils.UpdateTracker
	Selector  camera.StreamSelector
	Engine    *overlay.Engine

	newModel   bool
	slowFrames int
	input      overlay.FrameInput
}

func (s *State) Init(settings *ms.OverlaySettings) {
	s.Calibration = camera.DefaultCalibration()
	s.Car.Init()
	s.ModelUpdate.Init(ms.FPS_WINDOW)
	s.CalibrationUpdate.Init(ms.FPS_WINDOW)
	s.RadarUpdate.Init(ms.FPS_WINDOW)
	s.FrameRate.Init(ms.FPS_WINDOW)
	s.Engine = overlay.NewEngine(settings.EngineConfig())
}

// Configure pushes changed settings into the engine.
func (s *State) Configure(settings *ms.OverlaySettings) {
	s.Engine.Configure(settings.EngineConfig())
}

// Frame runs the engine once per new model frame. It returns false when there is no
// new model output or the inputs are stale.
func (s *State) Frame(now time.Time, settings *ms.OverlaySettings) (*overlay.Scene, bool) {
	if !s.newModel {
		return nil, false
	}
	s.newModel = false

	timeout := settings.StaleDuration()
	experimental := s.Car.Experimental(now, timeout)
	wide := s.Selector.Update(
		float64(s.Car.VEgo),
		settings.WideCameraAvailable,
		settings.WideCameraOnly,
		experimental,
	)

	s.input = overlay.FrameInput{
		Width:               float64(settings.SurfaceWidth),
		Height:              float64(settings.SurfaceHeight),
		WideCam:             wide,
		Experimental:        experimental,
		Calibration:         s.Calibration,
		Model:               &s.Model,
		Radar:               &s.Radar,
		CalibrationAlive:    s.CalibrationUpdate.Alive(now, timeout),
		ModelAlive:          s.ModelUpdate.Alive(now, timeout),
		RadarAlive:          s.RadarUpdate.Alive(now, timeout),
		LongitudinalControl: s.Car.Longitudinal(now, timeout),
	}

	scene, ok := s.Engine.Frame(&s.input)
	if !ok {
		slog.Debug("skipping frame, inputs are stale",
			"calibration", s.input.CalibrationAlive,
			"model", s.input.ModelAlive,
		)
		return nil, false
	}

	s.FrameRate.UpdateAt(now)
	s.checkFrameRate()
	return scene, true
}

func (s *State) checkFrameRate() {
	fps := s.FrameRate.Frequency()
	if fps == 0 || fps >= ms.MIN_FPS {
		s.slowFrames = 0
		return
	}
	// warn once per averaging window
	if s.slowFrames%ms.FPS_WINDOW == 0 {
		slog.Warn("overlay frame rate is low", "fps", fps)
	}
	s.slowFrames++
}
