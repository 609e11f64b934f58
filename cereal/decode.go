package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"
	"pfeifer.dev/overlayd/camera"
	"pfeifer.dev/overlayd/cereal/log"
	"pfeifer.dev/overlayd/overlay"
)

// DecodeModel copies a model message into out, reusing its buffers.
func DecodeModel(model log.ModelDataV2, out *overlay.ModelFrame) error {
	out.FrameID = model.FrameId()

	pos, err := model.Position()
	if err != nil {
		return errors.Wrap(err, "could not read model position")
	}
	if err := decodePath(pos, &out.Position); err != nil {
		return errors.Wrap(err, "could not decode model position")
	}

	laneLines, err := model.LaneLines()
	if err != nil {
		return errors.Wrap(err, "could not read lane lines")
	}
	probs, err := model.LaneLineProbs()
	if err != nil {
		return errors.Wrap(err, "could not read lane line probs")
	}
	for i := range out.LaneLines {
		out.LaneLines[i].Reset()
		out.LaneLineProbs[i] = 0
		if i < laneLines.Len() {
			if err := decodePath(laneLines.At(i), &out.LaneLines[i]); err != nil {
				return errors.Wrapf(err, "could not decode lane line %d", i)
			}
		}
		if i < probs.Len() {
			out.LaneLineProbs[i] = float64(probs.At(i))
		}
	}

	roadEdges, err := model.RoadEdges()
	if err != nil {
		return errors.Wrap(err, "could not read road edges")
	}
	stds, err := model.RoadEdgeStds()
	if err != nil {
		return errors.Wrap(err, "could not read road edge stds")
	}
	for i := range out.RoadEdges {
		out.RoadEdges[i].Reset()
		out.RoadEdgeStds[i] = 0
		if i < roadEdges.Len() {
			if err := decodePath(roadEdges.At(i), &out.RoadEdges[i]); err != nil {
				return errors.Wrapf(err, "could not decode road edge %d", i)
			}
		}
		if i < stds.Len() {
			out.RoadEdgeStds[i] = float64(stds.At(i))
		}
	}

	leads, err := model.LeadsV3()
	if err != nil {
		return errors.Wrap(err, "could not read model leads")
	}
	out.LeadCount = min(leads.Len(), overlay.MAX_LEAD_SLOTS)
	for i := range out.LeadCount {
		lead := leads.At(i)
		x, err := lead.X()
		if err != nil {
			return errors.Wrapf(err, "could not read lead %d", i)
		}
		y, err := lead.Y()
		if err != nil {
			return errors.Wrapf(err, "could not read lead %d", i)
		}
		a, err := lead.A()
		if err != nil {
			return errors.Wrapf(err, "could not read lead %d", i)
		}
		out.Leads[i] = overlay.LeadCandidate{
			X:    first(x),
			Y:    first(y),
			A:    first(a),
			Prob: float64(lead.Prob()),
		}
	}

	out.Acceleration = out.Acceleration[:0]
	if model.HasAcceleration() {
		accel, err := model.Acceleration()
		if err != nil {
			return errors.Wrap(err, "could not read model acceleration")
		}
		ax, err := accel.X()
		if err != nil {
			return errors.Wrap(err, "could not read model acceleration")
		}
		for i := range ax.Len() {
			out.Acceleration = append(out.Acceleration, float64(ax.At(i)))
		}
	}
	return nil
}

func decodePath(xyz log.ModelDataV2_XYZTData, out *overlay.Path) error {
	out.Reset()
	x, err := xyz.X()
	if err != nil {
		return err
	}
	y, err := xyz.Y()
	if err != nil {
		return err
	}
	z, err := xyz.Z()
	if err != nil {
		return err
	}
	n := min(x.Len(), y.Len(), z.Len())
	for i := range n {
		out.Append(float64(x.At(i)), float64(y.At(i)), float64(z.At(i)))
	}
	return nil
}

func first(l capnp.Float32List) float64 {
	if l.Len() == 0 {
		return 0
	}
	return float64(l.At(0))
}

func DecodeRadar(radar log.RadarState, out *overlay.RadarFrame) error {
	one, err := radar.LeadOne()
	if err != nil {
		return errors.Wrap(err, "could not read lead one")
	}
	two, err := radar.LeadTwo()
	if err != nil {
		return errors.Wrap(err, "could not read lead two")
	}
	out.Leads[0] = decodeRadarLead(one)
	out.Leads[1] = decodeRadarLead(two)
	return nil
}

func decodeRadarLead(lead log.RadarState_LeadData) overlay.RadarLead {
	return overlay.RadarLead{
		Status: lead.Status(),
		DRel:   float64(lead.DRel()),
		YRel:   float64(lead.YRel()),
		VRel:   float64(lead.VRel()),
	}
}

func DecodeCalibration(calib log.LiveCalibrationData) (camera.Calibration, error) {
	rpy, err := calib.RpyCalib()
	if err != nil {
		return camera.DefaultCalibration(), errors.Wrap(err, "could not read rpyCalib")
	}
	wide, err := calib.WideFromDeviceEuler()
	if err != nil {
		return camera.DefaultCalibration(), errors.Wrap(err, "could not read wideFromDeviceEuler")
	}
	return camera.CalibrationFromEuler(toFloat64s(rpy), toFloat64s(wide)), nil
}

func toFloat64s(l capnp.Float32List) []float64 {
	res := make([]float64, l.Len())
	for i := range res {
		res[i] = float64(l.At(i))
	}
	return res
}
