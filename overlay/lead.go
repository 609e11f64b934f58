package overlay

import (
	"math"

	m "pfeifer.dev/overlayd/math"
)

const (
	// approximate camera mount height above a lead's reference point
	LEAD_HEIGHT_OFFSET = 1.22

	LEAD_BUFF        = 40.0 // m
	LEAD_SPEED_BUFF  = 10.0 // m/s
	LEAD_HOMEBASE_H  = 12.0
	LEAD_TWO_MIN_GAP = 3.0 // m
)

// LeadAnchor projects a lead onto the road surface under the predicted path. yRel
// uses the radar convention (positive left).
func LeadAnchor(proj Projector, path *Path, dRel, yRel float64) (m.Point, bool) {
	z := 0.0
	if path.Len() > 0 {
		z = path.Z[PathLengthIdx(path, dRel)]
	}
	return proj.Project(dRel, -yRel, z+LEAD_HEIGHT_OFFSET)
}

// CandidateAnchor projects a perception lead candidate.
func CandidateAnchor(proj Projector, path *Path, lead LeadCandidate) (m.Point, bool) {
	return LeadAnchor(proj, path, lead.X, -lead.Y)
}

// LeadMarkerSize is the chevron size for a lead at distance d.
func LeadMarkerSize(d float64) float64 {
	return m.Clamp((25*30)/(d/3+30), 15, 30) * 2.35
}

// LeadMarker is the chevron drawn over a radar confirmed lead. FillAlpha is in
// [0, 255] and grows as the lead gets closer or closes in faster.
type LeadMarker struct {
	Anchor    m.Point
	Size      float64
	FillAlpha float64
	Glow      [6]m.Point
	Chevron   [6]m.Point
}

func BuildLeadMarker(lead RadarLead, anchor m.Point, surface m.Rect) LeadMarker {
	fillAlpha := 0.0
	if lead.DRel < LEAD_BUFF {
		fillAlpha = 255 * (1.0 - lead.DRel/LEAD_BUFF)
		if lead.VRel < 0 {
			fillAlpha += 255 * (-1 * (lead.VRel / LEAD_SPEED_BUFF))
		}
		fillAlpha = math.Trunc(math.Min(fillAlpha, 255))
	}

	sz := LeadMarkerSize(lead.DRel)
	x := m.Clamp(anchor.X, 0, surface.W-sz/2)
	y := math.Min(anchor.Y, surface.H-sz*0.6)

	gxo := sz / 5
	gyo := sz / 10
	hb := LEAD_HOMEBASE_H

	return LeadMarker{
		Anchor:    m.Point{X: x, Y: y},
		Size:      sz,
		FillAlpha: fillAlpha,
		Glow: [6]m.Point{
			{X: x + sz*1.35 + gxo, Y: y + sz + gyo + hb},
			{X: x + sz*1.35 + gxo, Y: y + sz + gyo},
			{X: x, Y: y - gyo},
			{X: x - sz*1.35 - gxo, Y: y + sz + gyo},
			{X: x - sz*1.35 - gxo, Y: y + sz + gyo + hb},
			{X: x, Y: y + sz + hb + gyo + 10},
		},
		Chevron: [6]m.Point{
			{X: x + sz*1.25, Y: y + sz + hb},
			{X: x + sz*1.25, Y: y + sz},
			{X: x, Y: y},
			{X: x - sz*1.25, Y: y + sz},
			{X: x - sz*1.25, Y: y + sz + hb},
			{X: x, Y: y + sz + hb - 7},
		},
	}
}

// ShowLeadTwo hides the second lead when it is effectively the same object as the
// first.
func ShowLeadTwo(one, two RadarLead) bool {
	return two.Status && math.Abs(one.DRel-two.DRel) > LEAD_TWO_MIN_GAP
}
