package cereal

import (
	"testing"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/overlayd/camera"
	"pfeifer.dev/overlayd/cereal/log"
	"pfeifer.dev/overlayd/overlay"
)

func fillFloats(t *testing.T, l capnp.Float32List, vals ...float32) {
	t.Helper()
	require.Equal(t, len(vals), l.Len())
	for i, v := range vals {
		l.Set(i, v)
	}
}

func fillXYZ(t *testing.T, xyz log.ModelDataV2_XYZTData, y, z float32) {
	t.Helper()
	x, err := xyz.NewX(3)
	require.NoError(t, err)
	fillFloats(t, x, 0, 10, 20)
	ys, err := xyz.NewY(3)
	require.NoError(t, err)
	fillFloats(t, ys, y, y, y)
	zs, err := xyz.NewZ(3)
	require.NoError(t, err)
	fillFloats(t, zs, z, z, z)
}

func modelMessage(t *testing.T) []byte {
	msg, model := NewMessage(ModelV2Creator, true)
	model.SetFrameId(42)

	pos, err := model.NewPosition()
	require.NoError(t, err)
	fillXYZ(t, pos, 0.5, 0)

	lanes, err := model.NewLaneLines(4)
	require.NoError(t, err)
	for i := range 4 {
		fillXYZ(t, lanes.At(i), float32(i)-1.5, 1.22)
	}
	probs, err := model.NewLaneLineProbs(4)
	require.NoError(t, err)
	fillFloats(t, probs, 0.1, 0.9, 0.8, 0.2)

	edges, err := model.NewRoadEdges(2)
	require.NoError(t, err)
	fillXYZ(t, edges.At(0), -4, 1.22)
	fillXYZ(t, edges.At(1), 4, 1.22)
	stds, err := model.NewRoadEdgeStds(2)
	require.NoError(t, err)
	fillFloats(t, stds, 0.25, 0.5)

	leads, err := model.NewLeadsV3(2)
	require.NoError(t, err)
	lead := leads.At(0)
	lead.SetProb(0.75)
	x, err := lead.NewX(2)
	require.NoError(t, err)
	fillFloats(t, x, 25, 26)
	y, err := lead.NewY(2)
	require.NoError(t, err)
	fillFloats(t, y, -1, -1)
	a, err := lead.NewA(2)
	require.NoError(t, err)
	fillFloats(t, a, -0.5, -0.5)

	data, err := msg.Marshal()
	require.NoError(t, err)
	return data
}

func TestDecodeModel(t *testing.T) {
	model, err := Decode(modelMessage(t), ModelV2Reader)
	require.NoError(t, err)

	var frame overlay.ModelFrame
	require.NoError(t, DecodeModel(model, &frame))

	assert.Equal(t, uint32(42), frame.FrameID)
	assert.Equal(t, []float64{0, 10, 20}, frame.Position.X)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, frame.Position.Y)
	assert.InDelta(t, 0.9, frame.LaneLineProbs[1], 1e-6)
	assert.InDelta(t, 1.22, frame.LaneLines[3].Z[2], 1e-6)
	assert.Equal(t, -4.0, frame.RoadEdges[0].Y[0])
	assert.InDelta(t, 0.5, frame.RoadEdgeStds[1], 1e-6)

	require.Equal(t, 2, frame.LeadCount)
	assert.Equal(t, 25.0, frame.Leads[0].X)
	assert.Equal(t, -1.0, frame.Leads[0].Y)
	assert.Equal(t, -0.5, frame.Leads[0].A)
	assert.Equal(t, 0.75, frame.Leads[0].Prob)
	// second lead has no trajectory
	assert.Equal(t, overlay.LeadCandidate{}, frame.Leads[1])
	assert.Empty(t, frame.Acceleration)
}

func TestDecodeModelAcceleration(t *testing.T) {
	msg, model := NewMessage(ModelV2Creator, true)
	pos, err := model.NewPosition()
	require.NoError(t, err)
	fillXYZ(t, pos, 0, 0)
	accel, err := model.NewAcceleration()
	require.NoError(t, err)
	fillXYZ(t, accel, 0, 0)
	data, err := msg.Marshal()
	require.NoError(t, err)

	decoded, err := Decode(data, ModelV2Reader)
	require.NoError(t, err)
	var frame overlay.ModelFrame
	require.NoError(t, DecodeModel(decoded, &frame))
	assert.Equal(t, []float64{0, 10, 20}, frame.Acceleration)
}

func TestDecodeModelReusesBuffers(t *testing.T) {
	model, err := Decode(modelMessage(t), ModelV2Reader)
	require.NoError(t, err)

	var frame overlay.ModelFrame
	require.NoError(t, DecodeModel(model, &frame))
	require.NoError(t, DecodeModel(model, &frame))
	assert.Len(t, frame.Position.X, 3)
	assert.Len(t, frame.LaneLines[0].X, 3)
}

func TestDecodeWrongEvent(t *testing.T) {
	_, err := Decode(modelMessage(t), RadarStateReader)
	assert.Error(t, err)

	_, err = Decode(nil, ModelV2Reader)
	assert.Error(t, err)

	_, err = Decode([]byte{1, 2, 3}, ModelV2Reader)
	assert.Error(t, err)
}

func TestDecodeRadar(t *testing.T) {
	msg, radar := NewMessage(RadarStateCreator, true)
	one, err := radar.NewLeadOne()
	require.NoError(t, err)
	one.SetStatus(true)
	one.SetDRel(30)
	one.SetYRel(1.5)
	one.SetVRel(-2)
	_, err = radar.NewLeadTwo()
	require.NoError(t, err)

	data, err := msg.Marshal()
	require.NoError(t, err)
	decoded, err := Decode(data, RadarStateReader)
	require.NoError(t, err)

	var frame overlay.RadarFrame
	require.NoError(t, DecodeRadar(decoded, &frame))
	assert.Equal(t, overlay.RadarLead{Status: true, DRel: 30, YRel: 1.5, VRel: -2}, frame.Leads[0])
	assert.False(t, frame.Leads[1].Status)
}

func TestDecodeCalibration(t *testing.T) {
	msg, calib := NewMessage(LiveCalibrationCreator, true)
	calib.SetCalStatus(log.LiveCalibrationData_Status_calibrated)
	rpy, err := calib.NewRpyCalib(3)
	require.NoError(t, err)
	fillFloats(t, rpy, 0, 0, 0)

	data, err := msg.Marshal()
	require.NoError(t, err)
	decoded, err := Decode(data, LiveCalibrationReader)
	require.NoError(t, err)

	c, err := DecodeCalibration(decoded)
	require.NoError(t, err)
	assert.True(t, c.ViewFromCalib.Equals(camera.VIEW_FROM_DEVICE, 1e-9))
	// missing wide extrinsics fall back to the device frame
	assert.True(t, c.ViewFromWideCalib.Equals(camera.VIEW_FROM_DEVICE, 1e-9))
}

func TestEncodeScene(t *testing.T) {
	model, err := Decode(modelMessage(t), ModelV2Reader)
	require.NoError(t, err)
	var frame overlay.ModelFrame
	require.NoError(t, DecodeModel(model, &frame))

	e := overlay.NewEngine(overlay.DefaultConfig())
	scene, ok := e.Frame(&overlay.FrameInput{
		Width:               1920,
		Height:              1080,
		Calibration:         camera.DefaultCalibration(),
		Model:               &frame,
		Radar:               &overlay.RadarFrame{Leads: [2]overlay.RadarLead{{Status: true, DRel: 25}}},
		CalibrationAlive:    true,
		ModelAlive:          true,
		RadarAlive:          true,
		LongitudinalControl: true,
	})
	require.True(t, ok)

	msg, out := NewMessage(OverlayOutCreator, true)
	require.NoError(t, EncodeScene(out, scene))
	data, err := msg.Marshal()
	require.NoError(t, err)

	decoded, err := Decode(data, OverlayOutReader)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), decoded.FrameId())

	matrix, err := decoded.FrameMatrix()
	require.NoError(t, err)
	assert.Equal(t, 16, matrix.Len())
	assert.InDelta(t, scene.Transform.Frame[0][0], matrix.At(0), 1e-5)

	lanes, err := decoded.LaneLines()
	require.NoError(t, err)
	assert.Equal(t, overlay.LANE_LINE_COUNT, lanes.Len())
	points, err := lanes.At(1).Points()
	require.NoError(t, err)
	assert.Equal(t, scene.LaneLines[1].Len()*2, points.Len())

	lockOns, err := decoded.LockOns()
	require.NoError(t, err)
	require.Equal(t, 1, lockOns.Len())
	assert.Equal(t, uint16(0), lockOns.At(0).Slot())
	assert.Equal(t, log.OverlayOut_Label_topLeft, lockOns.At(0).Label())

	leads, err := decoded.Leads()
	require.NoError(t, err)
	require.Equal(t, 1, leads.Len())
	glow, err := leads.At(0).Glow()
	require.NoError(t, err)
	assert.Equal(t, 12, glow.Len())

	assert.False(t, decoded.Experimental())
	gradient, err := decoded.PathGradient()
	require.NoError(t, err)
	assert.Equal(t, len(scene.PathGradient), gradient.Len())
}

func TestEncodePathGradient(t *testing.T) {
	scene := &overlay.Scene{
		FrameID:      9,
		Experimental: true,
		PathGradient: []overlay.GradientStop{overlay.AccelStop(0.2, 1), overlay.AccelStop(0.6, -1)},
	}
	msg, out := NewMessage(OverlayOutCreator, true)
	require.NoError(t, EncodeScene(out, scene))
	data, err := msg.Marshal()
	require.NoError(t, err)

	decoded, err := Decode(data, OverlayOutReader)
	require.NoError(t, err)
	assert.True(t, decoded.Experimental())
	assert.False(t, decoded.WideCam())

	gradient, err := decoded.PathGradient()
	require.NoError(t, err)
	require.Equal(t, 2, gradient.Len())
	for i, want := range scene.PathGradient {
		got := gradient.At(i)
		assert.InDelta(t, want.Pos, got.Pos(), 1e-6)
		assert.InDelta(t, want.Hue, got.Hue(), 1e-6)
		assert.InDelta(t, want.Saturation, got.Saturation(), 1e-6)
		assert.InDelta(t, want.Lightness, got.Lightness(), 1e-6)
		assert.InDelta(t, want.Alpha, got.Alpha(), 1e-6)
	}
}

func TestOverlayInFields(t *testing.T) {
	msg, in := NewMessage(OverlayInCreator, true)
	in.SetType(log.OverlayInputType_setLogLevel)
	require.NoError(t, in.SetStr("debug"))
	in.SetInt(-3)

	data, err := msg.Marshal()
	require.NoError(t, err)
	decoded, err := Decode(data, OverlayInReader)
	require.NoError(t, err)
	assert.Equal(t, log.OverlayInputType_setLogLevel, decoded.Type())
	str, err := decoded.Str()
	require.NoError(t, err)
	assert.Equal(t, "debug", str)
	assert.Equal(t, int32(-3), decoded.Int())
}
