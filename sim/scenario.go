package sim

import (
	"sort"

	"pfeifer.dev/overlayd/overlay"
)

const (
	PATH_POINTS  = 33
	PATH_SPACING = 3.0

	DEFAULT_WIDTH  = 2160.0
	DEFAULT_HEIGHT = 1080.0
)

// Lead is one perception lead at one frame. Y is positive right.
type Lead struct {
	Slot int
	X    float64
	Y    float64
	A    float64
	Prob float64
}

// Scenario is a scripted drive. Leads returns the candidates for frame i. Slots it
// leaves out are absent for that frame.
type Scenario struct {
	Name        string
	Description string
	Frames      int
	// Curvature bends the planned path as y = Curvature * x^2.
	Curvature float64
	Leads     func(i int) []Lead
}

// both puts the same object in slots 0 and 1, the way the model reports a single
// confident lead.
func both(x, y, a, prob float64) []Lead {
	return []Lead{
		{Slot: 0, X: x, Y: y, A: a, Prob: prob},
		{Slot: 1, X: x, Y: y, A: a, Prob: prob * 0.8},
	}
}

var scenarios = map[string]Scenario{
	"approach": {
		Name:        "approach",
		Description: "A single braking lead closes from 60m to 10m",
		Frames:      250,
		Leads: func(i int) []Lead {
			return both(60-0.2*float64(i), 0, -1, 0.9)
		},
	},
	"split": {
		Name:        "split",
		Description: "Slot 1 drifts into the next lane after frame 60",
		Frames:      200,
		Leads: func(i int) []Lead {
			leads := both(30, 0, 0, 0.9)
			if i > 60 {
				leads[1].Y = min(float64(i-60)*0.05, 3.6)
			}
			return leads
		},
	},
	"dropout": {
		Name:        "dropout",
		Description: "The lead drops below the probability gate for frames 50 to 79",
		Frames:      150,
		Leads: func(i int) []Lead {
			prob := 0.9
			if i >= 50 && i < 80 {
				prob = 0.1
			}
			return both(25, 0, 0.5, prob)
		},
	},
	"curve": {
		Name:        "curve",
		Description: "A steady lead 40m ahead through a right hand curve",
		Frames:      120,
		Curvature:   0.002,
		Leads: func(i int) []Lead {
			return both(40, 0.002*40*40, 0, 0.9)
		},
	},
}

func GetScenario(name string) (Scenario, bool) {
	s, ok := scenarios[name]
	return s, ok
}

func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// model builds the frame i model output for the scenario.
func (s Scenario) model(i int) *overlay.ModelFrame {
	model := &overlay.ModelFrame{FrameID: uint32(i)}
	for j := range PATH_POINTS {
		x := float64(j) * PATH_SPACING
		y := s.Curvature * x * x
		model.Position.Append(x, y, 0)
		for k, offset := range []float64{-5.4, -1.8, 1.8, 5.4} {
			model.LaneLines[k].Append(x, y+offset, overlay.PATH_Z_OFFSET)
		}
		for k, offset := range []float64{-7, 7} {
			model.RoadEdges[k].Append(x, y+offset, overlay.PATH_Z_OFFSET)
		}
	}
	model.LaneLineProbs = [overlay.LANE_LINE_COUNT]float64{0.5, 0.9, 0.9, 0.5}
	model.RoadEdgeStds = [overlay.ROAD_EDGE_COUNT]float64{0.3, 0.3}

	if s.Leads == nil {
		return model
	}
	for _, lead := range s.Leads(i) {
		if lead.Slot < 0 || lead.Slot >= overlay.MAX_LEAD_SLOTS {
			continue
		}
		model.Leads[lead.Slot] = overlay.LeadCandidate{X: lead.X, Y: lead.Y, A: lead.A, Prob: lead.Prob}
		model.LeadCount = max(model.LeadCount, lead.Slot+1)
	}

	// the plan matches the primary lead's acceleration, easing off with distance
	if model.LeadCount > 0 {
		a := model.Leads[0].A
		for j := range PATH_POINTS {
			model.Acceleration = append(model.Acceleration, a*(1-float64(j)/PATH_POINTS))
		}
	}
	return model
}

// radar confirms the slot 0 candidate when it clears the gate.
func (s Scenario) radar(model *overlay.ModelFrame, minProb float64) *overlay.RadarFrame {
	radar := &overlay.RadarFrame{}
	if model.LeadCount == 0 {
		return radar
	}
	lead := model.Leads[0]
	if lead.Prob <= minProb {
		return radar
	}
	radar.Leads[0] = overlay.RadarLead{Status: true, DRel: lead.X, YRel: -lead.Y}
	return radar
}
