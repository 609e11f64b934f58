package sim

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type series struct {
	name  string
	color color.RGBA
	value func(FrameTrace) float64
}

var traceSeries = []series{
	{name: "lock quality", color: color.RGBA{R: 0, G: 160, B: 80, A: 255}, value: func(f FrameTrace) float64 { return f.Quality }},
	{name: "distance (m)", color: color.RGBA{R: 30, G: 90, B: 200, A: 255}, value: func(f FrameTrace) float64 { return f.Distance }},
	{name: "box width / 10 (px)", color: color.RGBA{R: 220, G: 120, B: 0, A: 255}, value: func(f FrameTrace) float64 { return f.BoxWidth / 10 }},
	{name: "tick length (px)", color: color.RGBA{R: 200, G: 30, B: 30, A: 255}, value: func(f FrameTrace) float64 { return f.TickLength }},
}

// SavePlot writes a PNG with the primary slot's lock quality, distance, box size
// and tick length over time.
func SavePlot(tr Trace, file string) error {
	p := plot.New()
	p.Title.Text = tr.Name
	p.X.Label.Text = "frame"
	p.Legend.Top = true

	for _, s := range traceSeries {
		pts := make(plotter.XYs, 0, len(tr.Frames))
		for _, f := range tr.Frames {
			pts = append(pts, plotter.XY{X: float64(f.Frame), Y: s.value(f)})
		}
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrapf(err, "could not create %s line", s.name)
		}
		line.Color = s.color
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	if err := p.Save(12*vg.Inch, 5*vg.Inch, file); err != nil {
		return errors.Wrapf(err, "could not save plot %s", file)
	}
	return nil
}
