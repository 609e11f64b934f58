package overlay

import (
	"fmt"

	"pfeifer.dev/overlayd/camera"
	m "pfeifer.dev/overlayd/math"
)

type Style int

const (
	StyleLaneLine Style = iota
	StyleRoadEdge
	StylePath
	StyleLeadGlow
	StyleLeadChevron
	StyleLockOn
	StyleLockOnDiverged
	StyleLockOnPointer
	StyleLockOnTick
	StyleMeterAccel
	StyleMeterDecel
	StyleLabel
)

func (s Style) String() string {
	switch s {
	case StyleLaneLine:
		return "lane_line"
	case StyleRoadEdge:
		return "road_edge"
	case StylePath:
		return "path"
	case StyleLeadGlow:
		return "lead_glow"
	case StyleLeadChevron:
		return "lead_chevron"
	case StyleLockOn:
		return "lockon"
	case StyleLockOnDiverged:
		return "lockon_diverged"
	case StyleLockOnPointer:
		return "lockon_pointer"
	case StyleLockOnTick:
		return "lockon_tick"
	case StyleMeterAccel:
		return "meter_accel"
	case StyleMeterDecel:
		return "meter_decel"
	case StyleLabel:
		return "label"
	}
	return "unknown"
}

// Canvas is a drawing surface. Alpha is always in [0, 1]. Colors are left to the
// implementation and keyed by Style.
type Canvas interface {
	FillPolygon(points []m.Point, style Style, alpha float64)
	StrokeRect(r m.Rect, style Style, alpha float64, width float64)
	Line(from, to m.Point, style Style, alpha float64, width float64)
	Text(r m.Rect, text string, placement LabelPlacement, style Style, alpha float64)
	// FillGradient fills a polygon with a vertical gradient. Stop positions are
	// measured up from the bottom of the surface.
	FillGradient(points []m.Point, stops []GradientStop)
}

const (
	LOCKON_BOX_LINE_WIDTH     = 5.0
	LOCKON_POINTER_LINE_WIDTH = 2.0
	LANE_LINE_MAX_ALPHA       = 0.7
)

// Scene holds everything drawn for one frame. It is owned by the Engine and reused
// between frames, so callers must copy anything they need to keep.
type Scene struct {
	FrameID      uint32
	Transform    camera.Transform
	Experimental bool

	LaneLines     [LANE_LINE_COUNT]Ribbon
	LaneLineProbs [LANE_LINE_COUNT]float64
	RoadEdges     [ROAD_EDGE_COUNT]Ribbon
	RoadEdgeStds  [ROAD_EDGE_COUNT]float64
	Path          Ribbon
	PathGradient  []GradientStop

	DrawDistance     float64
	PathDrawDistance float64
	LaneMaxIdx       int
	PathMaxIdx       int

	LockOns     [MAX_LEAD_SLOTS]LockOnBox
	LockQuality float64

	Leads       [RADAR_LEADS]LeadMarker
	LeadVisible [RADAR_LEADS]bool
}

func (s *Scene) reset() {
	for i := range s.LaneLines {
		s.LaneLines[i].Reset()
	}
	for i := range s.RoadEdges {
		s.RoadEdges[i].Reset()
	}
	s.Path.Reset()
	s.LockOns = [MAX_LEAD_SLOTS]LockOnBox{}
	s.LeadVisible = [RADAR_LEADS]bool{}
	s.LockQuality = 0
}

// VisibleLockOns counts the slots drawn this frame.
func (s *Scene) VisibleLockOns() int {
	n := 0
	for _, b := range s.LockOns {
		if b.Visible {
			n++
		}
	}
	return n
}

// Draw paints the scene back to front: lanes, edges, path, lock-on boxes, leads.
func (s *Scene) Draw(c Canvas) {
	for i := range s.LaneLines {
		if s.LaneLines[i].Len() == 0 {
			continue
		}
		c.FillPolygon(s.LaneLines[i].Points, StyleLaneLine, m.Clamp(s.LaneLineProbs[i], 0, LANE_LINE_MAX_ALPHA))
	}
	for i := range s.RoadEdges {
		if s.RoadEdges[i].Len() == 0 {
			continue
		}
		c.FillPolygon(s.RoadEdges[i].Points, StyleRoadEdge, m.Clamp(1-s.RoadEdgeStds[i], 0, 1))
	}
	if s.Path.Len() > 0 {
		c.FillGradient(s.Path.Points, s.PathGradient)
	}

	for i := range s.LockOns {
		if s.LockOns[i].Visible {
			drawLockOn(c, &s.LockOns[i])
		}
	}

	for i := range s.Leads {
		if !s.LeadVisible[i] {
			continue
		}
		lead := &s.Leads[i]
		c.FillPolygon(lead.Glow[:], StyleLeadGlow, 1)
		c.FillPolygon(lead.Chevron[:], StyleLeadChevron, lead.FillAlpha/255)
	}
}

func drawLockOn(c Canvas, b *LockOnBox) {
	style := StyleLockOn
	if b.Diverged {
		style = StyleLockOnDiverged
	}

	if b.HasPointer {
		c.Line(b.Pointer.From, b.Pointer.To, StyleLockOnPointer, b.Alpha, LOCKON_POINTER_LINE_WIDTH)
	}
	switch b.MeterDir {
	case MeterAccel:
		c.FillPolygon(b.Meter[:], StyleMeterAccel, b.Alpha)
	case MeterDecel:
		c.FillPolygon(b.Meter[:], StyleMeterDecel, b.Alpha)
	}
	if b.HasTicks {
		for _, t := range b.Ticks {
			c.Line(t.From, t.To, StyleLockOnTick, b.Alpha, LOCKON_TICK_WIDTH)
		}
	}

	c.StrokeRect(b.Box, style, b.Alpha, LOCKON_BOX_LINE_WIDTH)
	if b.Label != LabelNone {
		c.Text(b.Box, fmt.Sprint(b.Slot+1), b.Label, StyleLabel, b.Alpha)
	}
}
