package settings

import (
	"path/filepath"
	"testing"
	"time"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/overlayd/cereal/log"
	"pfeifer.dev/overlayd/params"
)

func useTempParams(t *testing.T) {
	t.Helper()
	old := params.ParamsPath
	params.ParamsPath = filepath.Join(t.TempDir(), "d")
	params.EnsureParamDirectories()
	t.Cleanup(func() { params.ParamsPath = old })
}

func overlayIn(t *testing.T, typ log.OverlayInputType, fill func(log.OverlayIn)) log.OverlayIn {
	t.Helper()
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)
	evt, err := log.NewRootEvent(seg)
	require.NoError(t, err)
	in, err := evt.NewOverlayIn()
	require.NoError(t, err)
	in.SetType(typ)
	if fill != nil {
		fill(in)
	}
	return in
}

func TestLoadDefaultsMissingFields(t *testing.T) {
	useTempParams(t)
	require.NoError(t, params.PutParam(params.OVERLAY_SETTINGS, []byte(`{"tablet_profile": true}`)))

	var s OverlaySettings
	require.True(t, s.Load())
	assert.True(t, s.TabletProfile)
	assert.True(t, s.PathAllowInvert)
	assert.InDelta(t, 0.2, s.LockOnMinProb, 1e-6)
	assert.True(t, s.WideCameraAvailable)
}

func TestLoadMissingParam(t *testing.T) {
	useTempParams(t)

	var s OverlaySettings
	assert.False(t, s.Load())
	assert.Equal(t, "error", s.LogLevel)
}

func TestSaveThenLoad(t *testing.T) {
	useTempParams(t)

	var s OverlaySettings
	s.Default()
	s.LockOnStaleResetFrames = 12
	s.WideCameraOnly = true
	s.Save()

	var loaded OverlaySettings
	require.True(t, loaded.Load())
	assert.Equal(t, s, loaded)
}

func TestHandle(t *testing.T) {
	var s OverlaySettings
	s.Default()

	s.Handle(overlayIn(t, log.OverlayInputType_setTabletProfile, func(in log.OverlayIn) { in.SetBool(true) }))
	assert.True(t, s.TabletProfile)

	s.Handle(overlayIn(t, log.OverlayInputType_setLockOnMinProb, func(in log.OverlayIn) { in.SetFloat(0.5) }))
	assert.Equal(t, float32(0.5), s.LockOnMinProb)

	s.Handle(overlayIn(t, log.OverlayInputType_setLockOnStaleResetFrames, func(in log.OverlayIn) { in.SetInt(20) }))
	assert.Equal(t, int32(20), s.LockOnStaleResetFrames)

	s.Handle(overlayIn(t, log.OverlayInputType_setPathAllowInvert, func(in log.OverlayIn) { in.SetBool(false) }))
	assert.False(t, s.PathAllowInvert)

	s.Handle(overlayIn(t, log.OverlayInputType_setLogLevel, func(in log.OverlayIn) {
		require.NoError(t, in.SetStr("debug"))
	}))
	assert.Equal(t, "debug", s.LogLevel)

	s.Handle(overlayIn(t, log.OverlayInputType_loadDefaultSettings, nil))
	assert.False(t, s.TabletProfile)
	assert.True(t, s.PathAllowInvert)
}

func TestHandleSave(t *testing.T) {
	useTempParams(t)

	var s OverlaySettings
	s.Default()
	s.WideCameraOnly = true
	s.Handle(overlayIn(t, log.OverlayInputType_saveSettings, nil))
	// a change right after saving is not part of the saved settings
	s.WideCameraOnly = false

	var loaded OverlaySettings
	require.True(t, loaded.Load())
	assert.True(t, loaded.WideCameraOnly)
}

func TestEngineConfig(t *testing.T) {
	var s OverlaySettings
	s.Default()
	s.LockOnStaleResetFrames = -4
	cfg := s.EngineConfig()
	assert.Equal(t, 0, cfg.LockOnStaleResetFrames)
	assert.InDelta(t, 0.2, cfg.MinLeadProb, 1e-6)
	assert.True(t, cfg.PathAllowInvert)
}

func TestStaleDuration(t *testing.T) {
	s := OverlaySettings{StaleTimeout: 0.5}
	assert.Equal(t, 500*time.Millisecond, s.StaleDuration())
	s.StaleTimeout = 0
	assert.Equal(t, LIVENESS_TIMEOUT, s.StaleDuration())
}

func TestGetSegmentSize(t *testing.T) {
	assert.Equal(t, int64(SMALL_SEGMENT_SIZE), GetSegmentSize("carState"))
	assert.Equal(t, int64(DEFAULT_SEGMENT_SIZE), GetSegmentSize("unknown"))
}
