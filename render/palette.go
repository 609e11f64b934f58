package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	m "pfeifer.dev/overlayd/math"
	"pfeifer.dev/overlayd/overlay"
)

// Palette colors are plain RGB. styleColor swaps them into OpenCV channel order.
var Palette = map[overlay.Style]color.RGBA{
	overlay.StyleLaneLine:       {R: 255, G: 255, B: 255, A: 255},
	overlay.StyleRoadEdge:       {R: 255, G: 0, B: 0, A: 255},
	overlay.StylePath:           {R: 255, G: 255, B: 255, A: 255},
	overlay.StyleLeadGlow:       {R: 218, G: 202, B: 37, A: 255},
	overlay.StyleLeadChevron:    {R: 201, G: 34, B: 49, A: 255},
	overlay.StyleLockOn:         {R: 0, G: 255, B: 0, A: 255},
	overlay.StyleLockOnDiverged: {R: 255, G: 0, B: 0, A: 255},
	overlay.StyleLockOnPointer:  {R: 0, G: 255, B: 0, A: 255},
	overlay.StyleLockOnTick:     {R: 0, G: 255, B: 0, A: 255},
	overlay.StyleMeterAccel:     {R: 0, G: 200, B: 255, A: 255},
	overlay.StyleMeterDecel:     {R: 255, G: 60, B: 60, A: 255},
	overlay.StyleLabel:          {R: 255, G: 255, B: 255, A: 255},
}

var fallback = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// bgr swaps the red and blue channels for OpenCV.
func bgr(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.B, G: c.G, B: c.R, A: c.A}
}

func styleColor(s overlay.Style) color.RGBA {
	c, ok := Palette[s]
	if !ok {
		c = fallback
	}
	return bgr(c)
}

// hslColor converts a gradient stop to an opaque OpenCV color. Alpha is blended
// separately.
func hslColor(s overlay.GradientStop) color.RGBA {
	r, g, b := colorful.Hsl(s.Hue, s.Saturation, s.Lightness).Clamped().RGB255()
	return bgr(color.RGBA{R: r, G: g, B: b, A: 255})
}

// toImagePoints rounds to pixels and drops points that cannot be drawn.
func toImagePoints(points []m.Point) []image.Point {
	out := make([]image.Point, 0, len(points))
	for _, p := range points {
		if !p.Finite() {
			continue
		}
		out = append(out, image.Pt(int(math.Round(p.X)), int(math.Round(p.Y))))
	}
	return out
}

func toImageRect(r m.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left())),
		int(math.Round(r.Top())),
		int(math.Round(r.Right())),
		int(math.Round(r.Bottom())),
	)
}

func thickness(width float64) int {
	return max(int(math.Round(width)), 1)
}

// pointBounds is the smallest rectangle holding every point.
func pointBounds(pts []image.Point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	// Max is exclusive
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}
