package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/overlayd/cereal/log"
	"pfeifer.dev/overlayd/overlay"
	"pfeifer.dev/overlayd/params"
	"pfeifer.dev/overlayd/utils"
)

var (
	Settings = OverlaySettings{}
)

type OverlaySettings struct {
	LogLevel               string  `json:"log_level"`
	TabletProfile          bool    `json:"tablet_profile"`
	PathAllowInvert        bool    `json:"path_allow_invert"`
	LockOnMinProb          float32 `json:"lockon_min_prob"`
	LockOnStaleResetFrames int32   `json:"lockon_stale_reset_frames"`
	WideCameraAvailable    bool    `json:"wide_camera_available"`
	WideCameraOnly         bool    `json:"wide_camera_only"`
	StaleTimeout           float32 `json:"stale_timeout"`
	SurfaceWidth           float32 `json:"surface_width"`
	SurfaceHeight          float32 `json:"surface_height"`
}

func (s *OverlaySettings) Default() {
	s.LogLevel = "error"
	s.TabletProfile = false
	s.PathAllowInvert = true
	s.LockOnMinProb = overlay.DEFAULT_MIN_LEAD_PROB
	s.LockOnStaleResetFrames = 0
	s.WideCameraAvailable = true
	s.WideCameraOnly = false
	s.StaleTimeout = float32(LIVENESS_TIMEOUT.Seconds())
	s.SurfaceWidth = 2160
	s.SurfaceHeight = 1080
}

func (s *OverlaySettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.OVERLAY_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *OverlaySettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *OverlaySettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.OVERLAY_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *OverlaySettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

// EngineConfig is the subset of settings the geometry engine needs.
func (s *OverlaySettings) EngineConfig() overlay.Config {
	return overlay.Config{
		Tablet:                 s.TabletProfile,
		PathAllowInvert:        s.PathAllowInvert,
		MinLeadProb:            float64(s.LockOnMinProb),
		LockOnStaleResetFrames: int(max(s.LockOnStaleResetFrames, 0)),
	}
}

func (s *OverlaySettings) StaleDuration() time.Duration {
	if s.StaleTimeout <= 0 {
		return LIVENESS_TIMEOUT
	}
	return time.Duration(float64(s.StaleTimeout) * float64(time.Second))
}

func (s *OverlaySettings) Handle(input log.OverlayIn) {
	switch input.Type() {
	case log.OverlayInputType_reloadSettings:
		s.Load()
	case log.OverlayInputType_saveSettings:
		s.Save()
	case log.OverlayInputType_loadDefaultSettings:
		s.Default()
	case log.OverlayInputType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			utils.Loge(err)
			return
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	case log.OverlayInputType_setTabletProfile:
		s.TabletProfile = input.Bool()
	case log.OverlayInputType_setPathAllowInvert:
		s.PathAllowInvert = input.Bool()
	case log.OverlayInputType_setLockOnMinProb:
		s.LockOnMinProb = input.Float()
	case log.OverlayInputType_setLockOnStaleResetFrames:
		s.LockOnStaleResetFrames = input.Int()
	case log.OverlayInputType_setWideCameraAvailable:
		s.WideCameraAvailable = input.Bool()
	case log.OverlayInputType_setWideCameraOnly:
		s.WideCameraOnly = input.Bool()
	case log.OverlayInputType_setStaleTimeout:
		s.StaleTimeout = input.Float()
	default:
		slog.Warn("unknown overlay input", "type", input.Type())
	}
}
