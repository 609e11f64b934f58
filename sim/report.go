package sim

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// WriteReport renders every trace as an interactive line chart on one HTML page.
func WriteReport(w io.Writer, traces []Trace) error {
	page := components.NewPage()
	page.PageTitle = "overlayd scenarios"

	for _, tr := range traces {
		frames := make([]int, 0, len(tr.Frames))
		for _, f := range tr.Frames {
			frames = append(frames, f.Frame)
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "420px"}),
			charts.WithTitleOpts(opts.Title{Title: tr.Name, Subtitle: fmt.Sprintf("frames=%d", len(tr.Frames))}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
			charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		)
		line.SetXAxis(frames)
		for _, s := range traceSeries {
			data := make([]opts.LineData, 0, len(tr.Frames))
			for _, f := range tr.Frames {
				data = append(data, opts.LineData{Value: s.value(f)})
			}
			line.AddSeries(s.name, data)
		}
		page.AddCharts(line)
	}

	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "could not render scenario report")
	}
	return nil
}
