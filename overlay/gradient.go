package overlay

import (
	"math"

	m "pfeifer.dev/overlayd/math"
)

// GradientStop is one color stop of the vertical path fill. Pos runs from 0 at the
// bottom of the surface to 1 at the top. Hue is in degrees, the rest in [0, 1].
type GradientStop struct {
	Pos        float64
	Hue        float64
	Saturation float64
	Lightness  float64
	Alpha      float64
}

// stock path fill when the model is not driving longitudinal
var defaultPathGradient = [...]GradientStop{
	{Pos: 0, Hue: 148, Saturation: 0.94, Lightness: 0.51, Alpha: 0.4},
	{Pos: 0.5, Hue: 112, Saturation: 1, Lightness: 0.68, Alpha: 0.35},
	{Pos: 1, Hue: 112, Saturation: 1, Lightness: 0.68, Alpha: 0},
}

// AccelStop colors one path point by the planned acceleration: green when
// speeding up, red when slowing down and grey near zero. The alpha fades out
// between 37.5% and 75% of the surface height.
func AccelStop(pos, accel float64) GradientStop {
	hue := m.Clamp(60+accel*35, 0, 120)
	// whole degrees keep the polygon fill cheap
	hue = math.Floor(math.Floor(hue*100+0.5) / 100)
	sat := math.Min(math.Abs(accel*1.5), 1)
	return GradientStop{
		Pos:        pos,
		Hue:        hue,
		Saturation: sat,
		Lightness:  m.Interp(sat, 0, 1, 0.95, 0.62),
		Alpha:      m.Interp(pos, 0.75/2, 0.75, 0.4, 0),
	}
}

// BuildPathGradient fills stops for the path ribbon. In experimental mode the
// right edge vertices are walked from the bottom of the surface and every other
// visible one gets a stop colored by accel, the last always included. Otherwise
// the stock fill is used.
func BuildPathGradient(stops []GradientStop, path *Ribbon, accel []float64, height float64, experimental bool) []GradientStop {
	stops = stops[:0]
	if !experimental {
		return append(stops, defaultPathGradient[:]...)
	}
	if height <= 0 {
		return stops
	}

	// Points starts with the right edge from far to near
	n := min(path.Len()/2, len(accel))
	for i := 0; i < n; i++ {
		y := path.Points[n-i-1].Y
		if y < 0 || y > height {
			continue
		}
		stops = append(stops, AccelStop((height-y)/height, accel[i]))
		if i+2 < n {
			i++
		}
	}
	return stops
}

// GradientAt interpolates between the stops either side of pos. Past either end
// the nearest stop is held.
func GradientAt(stops []GradientStop, pos float64) (GradientStop, bool) {
	if len(stops) == 0 {
		return GradientStop{}, false
	}
	lo, hi := -1, -1
	for i, s := range stops {
		if s.Pos <= pos && (lo < 0 || s.Pos >= stops[lo].Pos) {
			lo = i
		}
		if s.Pos >= pos && (hi < 0 || s.Pos < stops[hi].Pos) {
			hi = i
		}
	}
	switch {
	case lo < 0:
		return stops[hi], true
	case hi < 0 || stops[hi].Pos == stops[lo].Pos:
		return stops[lo], true
	}
	a, b := stops[lo], stops[hi]
	t := (pos - a.Pos) / (b.Pos - a.Pos)
	return GradientStop{
		Pos:        pos,
		Hue:        a.Hue + (b.Hue-a.Hue)*t,
		Saturation: a.Saturation + (b.Saturation-a.Saturation)*t,
		Lightness:  a.Lightness + (b.Lightness-a.Lightness)*t,
		Alpha:      a.Alpha + (b.Alpha-a.Alpha)*t,
	}, true
}
