package cli

import (
	"fmt"
	"strings"
	"time"

	"pfeifer.dev/overlayd/cereal/log"
)

const STALE_OUTPUT = time.Second

type outputModel struct {
	output   log.OverlayOut
	valid    bool
	received time.Time
}

// poll takes the newest overlayOut frame, if any.
func (m outputModel) poll(mm *uiModel, now time.Time) outputModel {
	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.output = out
		m.received = now
	}
	return m
}

func (m outputModel) status(now time.Time) string {
	switch {
	case !m.valid:
		return "overlayOut: waiting"
	case now.Sub(m.received) > STALE_OUTPUT:
		return fmt.Sprintf("overlayOut: stale for %s", now.Sub(m.received).Truncate(100*time.Millisecond))
	}
	return fmt.Sprintf("overlayOut: live, frame %d", m.output.FrameId())
}

func (m outputModel) View(now time.Time) string {
	if !m.valid {
		return docStyle.Render("waiting for overlayOut...\n\nesc to return") + "\n"
	}
	return docStyle.Render(m.status(now)+"\n\n"+describeOutput(m.output)+"\nesc to return") + "\n"
}

// describeOutput is a plain text summary of one overlayOut frame.
func describeOutput(out log.OverlayOut) string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame: %d\nwide camera: %t\nlock quality: %.1f\n", out.FrameId(), out.WideCam(), out.LockQuality())

	lanes, err := out.LaneLines()
	if err == nil {
		fmt.Fprintf(&b, "lane lines: %d\n", lanes.Len())
	}
	edges, err := out.RoadEdges()
	if err == nil {
		fmt.Fprintf(&b, "road edges: %d\n", edges.Len())
	}
	path, err := out.Path()
	if err == nil {
		points, err := path.Points()
		if err == nil {
			fmt.Fprintf(&b, "path points: %d\n", points.Len()/2)
		}
	}
	gradient, err := out.PathGradient()
	if err == nil {
		fmt.Fprintf(&b, "experimental: %t\npath gradient stops: %d\n", out.Experimental(), gradient.Len())
	}

	lockOns, err := out.LockOns()
	if err == nil {
		fmt.Fprintf(&b, "lock-ons: %d\n", lockOns.Len())
		for i := range lockOns.Len() {
			box := lockOns.At(i)
			fmt.Fprintf(&b, "  slot %d: d=%.1fm a=%.2f box=%.0fx%.0f quality=%.1f diverged=%t\n",
				box.Slot()+1,
				box.Distance(),
				box.Accel(),
				box.Width(),
				box.Height(),
				box.Quality(),
				box.Diverged(),
			)
		}
	}

	leads, err := out.Leads()
	if err == nil {
		fmt.Fprintf(&b, "leads: %d\n", leads.Len())
		for i := range leads.Len() {
			lead := leads.At(i)
			fmt.Fprintf(&b, "  lead %d: x=%.0f y=%.0f size=%.1f fill=%.0f\n", i+1, lead.X(), lead.Y(), lead.Size(), lead.FillAlpha())
		}
	}
	return b.String()
}
