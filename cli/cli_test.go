package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/overlayd/cereal"
	"pfeifer.dev/overlayd/cereal/log"
	"pfeifer.dev/overlayd/overlay"
	"pfeifer.dev/overlayd/sim"
)

func newInput(t *testing.T) log.OverlayIn {
	t.Helper()
	_, input := cereal.NewMessage(cereal.OverlayInCreator, true)
	return input
}

func TestSetInputValue(t *testing.T) {
	input := newInput(t)
	require.NoError(t, setInputValue(input, Bool, "true"))
	assert.True(t, input.Bool())

	require.NoError(t, setInputValue(input, Float, "0.35"))
	assert.InDelta(t, 0.35, input.Float(), 1e-6)

	require.NoError(t, setInputValue(input, Int, "12"))
	assert.Equal(t, int32(12), input.Int())

	require.NoError(t, setInputValue(input, String, "debug"))
	str, err := input.Str()
	require.NoError(t, err)
	assert.Equal(t, "debug", str)

	require.NoError(t, setInputValue(input, None, "ignored"))
}

func TestSetInputValueRejects(t *testing.T) {
	input := newInput(t)
	assert.Error(t, setInputValue(input, Bool, "maybe"))
	assert.Error(t, setInputValue(input, Float, "fast"))
	assert.Error(t, setInputValue(input, Int, "1.5"))
	assert.Error(t, validator(Int)("x"))
	assert.NoError(t, validator(Float)("2"))
}

func TestSettingsItemsAreDistinct(t *testing.T) {
	seen := map[log.OverlayInputType]string{}
	for _, it := range settingsItems() {
		prev, dup := seen[it.MessageType]
		assert.False(t, dup, "%s and %s share a message type", prev, it.Title())
		seen[it.MessageType] = it.Title()
		if it.state == settingsCommand {
			assert.Equal(t, None, it.Type, it.Title())
		}
	}
}

func TestDescribeOutput(t *testing.T) {
	r := sim.NewRunner(overlay.DefaultConfig())
	scenario, _ := sim.GetScenario("approach")
	scenario.Frames = 60

	var text string
	r.OnFrame = func(i int, scene *overlay.Scene) {
		if i != scenario.Frames-1 {
			return
		}
		_, out := cereal.NewMessage(cereal.OverlayOutCreator, true)
		require.NoError(t, cereal.EncodeScene(out, scene))
		text = describeOutput(out)
	}
	r.Run(scenario)

	assert.Contains(t, text, "frame: 59")
	assert.Contains(t, text, "lock-ons: 2")
	assert.Contains(t, text, "slot 1:")
	assert.Contains(t, text, "leads: 1")
	assert.Contains(t, text, "experimental: false")
	assert.Contains(t, text, "path gradient stops: 3")
}

func TestOutputStatus(t *testing.T) {
	now := time.Unix(100, 0)
	var m outputModel
	assert.Equal(t, "overlayOut: waiting", m.status(now))

	_, out := cereal.NewMessage(cereal.OverlayOutCreator, true)
	out.SetFrameId(42)
	m = outputModel{output: out, valid: true, received: now.Add(-100 * time.Millisecond)}
	assert.Equal(t, "overlayOut: live, frame 42", m.status(now))

	m.received = now.Add(-2500 * time.Millisecond)
	assert.Equal(t, "overlayOut: stale for 2.5s", m.status(now))
}

func TestSimulateWritesPlots(t *testing.T) {
	dir := t.TempDir()
	err := simulate(simulateSettings{
		Engine:          engineOptions{Config: overlay.DefaultConfig()},
		Scenarios:       []string{"dropout", "curve"},
		OutputDirectory: dir,
		HTML:            true,
		Database:        filepath.Join(dir, "traces.db"),
	})
	require.NoError(t, err)

	for _, name := range []string{"dropout.png", "curve.png", "report.html", "traces.db"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestSimulateUnknownScenario(t *testing.T) {
	err := simulate(simulateSettings{
		Engine:          engineOptions{Config: overlay.DefaultConfig()},
		Scenarios:       []string{"nope"},
		OutputDirectory: t.TempDir(),
	})
	assert.ErrorContains(t, err, "unknown scenario")
}

func TestSnapshotFrameRange(t *testing.T) {
	err := snapshot(snapshotSettings{
		Engine:   engineOptions{Config: overlay.DefaultConfig()},
		Scenario: "approach",
		Frame:    1000,
		Output:   filepath.Join(t.TempDir(), "snap.png"),
	})
	assert.ErrorContains(t, err, "outside of scenario")
}
