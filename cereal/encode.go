package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"
	"pfeifer.dev/overlayd/cereal/log"
	m "pfeifer.dev/overlayd/math"
	"pfeifer.dev/overlayd/overlay"
)

// EncodeScene writes the geometry of one frame into an overlayOut message.
func EncodeScene(out log.OverlayOut, scene *overlay.Scene) error {
	out.SetFrameId(scene.FrameID)
	out.SetWideCam(scene.Transform.Wide)
	out.SetLockQuality(float32(scene.LockQuality))
	out.SetExperimental(scene.Experimental)

	frame, err := out.NewFrameMatrix(16)
	if err != nil {
		return errors.Wrap(err, "could not create frame matrix")
	}
	for i, row := range scene.Transform.Frame {
		for j, v := range row {
			frame.Set(i*4+j, float32(v))
		}
	}

	laneLines, err := out.NewLaneLines(overlay.LANE_LINE_COUNT)
	if err != nil {
		return errors.Wrap(err, "could not create lane lines")
	}
	for i := range scene.LaneLines {
		poly := laneLines.At(i)
		poly.SetAlpha(float32(m.Clamp(scene.LaneLineProbs[i], 0, overlay.LANE_LINE_MAX_ALPHA)))
		if err := encodePoints(poly, scene.LaneLines[i].Points); err != nil {
			return errors.Wrapf(err, "could not encode lane line %d", i)
		}
	}

	roadEdges, err := out.NewRoadEdges(overlay.ROAD_EDGE_COUNT)
	if err != nil {
		return errors.Wrap(err, "could not create road edges")
	}
	for i := range scene.RoadEdges {
		poly := roadEdges.At(i)
		poly.SetAlpha(float32(m.Clamp(1-scene.RoadEdgeStds[i], 0, 1)))
		if err := encodePoints(poly, scene.RoadEdges[i].Points); err != nil {
			return errors.Wrapf(err, "could not encode road edge %d", i)
		}
	}

	path, err := out.NewPath()
	if err != nil {
		return errors.Wrap(err, "could not create path")
	}
	path.SetAlpha(1)
	if err := encodePoints(path, scene.Path.Points); err != nil {
		return errors.Wrap(err, "could not encode path")
	}

	if err := encodeGradient(out, scene.PathGradient); err != nil {
		return err
	}
	if err := encodeLockOns(out, scene); err != nil {
		return err
	}
	return encodeLeads(out, scene)
}

func encodeGradient(out log.OverlayOut, stops []overlay.GradientStop) error {
	l, err := out.NewPathGradient(int32(len(stops)))
	if err != nil {
		return errors.Wrap(err, "could not create path gradient")
	}
	for i, stop := range stops {
		st := l.At(i)
		st.SetPos(float32(stop.Pos))
		st.SetHue(float32(stop.Hue))
		st.SetSaturation(float32(stop.Saturation))
		st.SetLightness(float32(stop.Lightness))
		st.SetAlpha(float32(stop.Alpha))
	}
	return nil
}

func encodePoints(poly log.OverlayOut_Polygon, points []m.Point) error {
	l, err := poly.NewPoints(int32(len(points) * 2))
	if err != nil {
		return err
	}
	setPoints(l, 0, points)
	return nil
}

func setPoints(l capnp.Float32List, offset int, points []m.Point) {
	for i, pt := range points {
		l.Set(offset+i*2, float32(pt.X))
		l.Set(offset+i*2+1, float32(pt.Y))
	}
}

func setLines(l capnp.Float32List, lines []overlay.Line) {
	for i, line := range lines {
		setPoints(l, i*4, []m.Point{line.From, line.To})
	}
}

func encodeLockOns(out log.OverlayOut, scene *overlay.Scene) error {
	boxes, err := out.NewLockOns(int32(scene.VisibleLockOns()))
	if err != nil {
		return errors.Wrap(err, "could not create lock-on boxes")
	}
	idx := 0
	for i := range scene.LockOns {
		b := &scene.LockOns[i]
		if !b.Visible {
			continue
		}
		box := boxes.At(idx)
		idx++

		box.SetSlot(uint16(b.Slot))
		box.SetDiverged(b.Diverged)
		box.SetHasPointer(b.HasPointer)
		box.SetHasTicks(b.HasTicks)
		box.SetLabel(log.OverlayOut_Label(b.Label))
		box.SetMeter(log.OverlayOut_Meter(b.MeterDir))
		box.SetX(float32(b.Box.X))
		box.SetY(float32(b.Box.Y))
		box.SetWidth(float32(b.Box.W))
		box.SetHeight(float32(b.Box.H))
		box.SetAlpha(float32(b.Alpha))
		box.SetQuality(float32(b.Quality))
		box.SetTickLength(float32(b.TickLength))
		box.SetDistance(float32(b.Distance))
		box.SetAccel(float32(b.Accel))

		if b.HasPointer {
			l, err := box.NewPointer(4)
			if err != nil {
				return errors.Wrap(err, "could not create lock-on pointer")
			}
			setLines(l, []overlay.Line{b.Pointer})
		}
		if b.MeterDir != overlay.MeterNone {
			l, err := box.NewMeterPoints(int32(len(b.Meter) * 2))
			if err != nil {
				return errors.Wrap(err, "could not create lock-on meter")
			}
			setPoints(l, 0, b.Meter[:])
		}
		if b.HasTicks {
			l, err := box.NewTicks(int32(len(b.Ticks) * 4))
			if err != nil {
				return errors.Wrap(err, "could not create lock-on ticks")
			}
			setLines(l, b.Ticks[:])
		}
	}
	return nil
}

func encodeLeads(out log.OverlayOut, scene *overlay.Scene) error {
	n := 0
	for _, v := range scene.LeadVisible {
		if v {
			n++
		}
	}
	leads, err := out.NewLeads(int32(n))
	if err != nil {
		return errors.Wrap(err, "could not create lead markers")
	}
	idx := 0
	for i := range scene.Leads {
		if !scene.LeadVisible[i] {
			continue
		}
		marker := &scene.Leads[i]
		lead := leads.At(idx)
		idx++

		lead.SetX(float32(marker.Anchor.X))
		lead.SetY(float32(marker.Anchor.Y))
		lead.SetSize(float32(marker.Size))
		lead.SetFillAlpha(float32(marker.FillAlpha))
		glow, err := lead.NewGlow(int32(len(marker.Glow) * 2))
		if err != nil {
			return errors.Wrap(err, "could not create lead glow")
		}
		setPoints(glow, 0, marker.Glow[:])
		chevron, err := lead.NewChevron(int32(len(marker.Chevron) * 2))
		if err != nil {
			return errors.Wrap(err, "could not create lead chevron")
		}
		setPoints(chevron, 0, marker.Chevron[:])
	}
	return nil
}
