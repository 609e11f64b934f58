package render

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	m "pfeifer.dev/overlayd/math"
	"pfeifer.dev/overlayd/overlay"
)

const (
	LABEL_FONT       = gocv.FontHersheySimplex
	LABEL_FONT_SCALE = 1.2
	LABEL_THICKNESS  = 2
	LABEL_MARGIN     = 6
	// rows filled with one color when drawing a gradient
	GRADIENT_BAND = 8
)

// MatCanvas draws a scene onto an OpenCV image. Colors come from Palette and alpha
// is blended per primitive.
type MatCanvas struct {
	Mat gocv.Mat
}

func NewMatCanvas(width, height int) *MatCanvas {
	return &MatCanvas{Mat: gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)}
}

func (c *MatCanvas) Close() error {
	return c.Mat.Close()
}

// blend runs draw on a copy of the image and mixes it back in with the given alpha.
func (c *MatCanvas) blend(alpha float64, draw func(dst *gocv.Mat)) {
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		draw(&c.Mat)
		return
	}
	layer := c.Mat.Clone()
	defer layer.Close()
	draw(&layer)
	gocv.AddWeighted(layer, alpha, c.Mat, 1-alpha, 0, &c.Mat)
}

func (c *MatCanvas) FillPolygon(points []m.Point, style overlay.Style, alpha float64) {
	pts := toImagePoints(points)
	if len(pts) < 3 {
		return
	}
	c.blend(alpha, func(dst *gocv.Mat) {
		pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
		defer pv.Close()
		gocv.FillPoly(dst, pv, styleColor(style))
	})
}

// FillGradient fills the polygon in horizontal bands, each colored and blended at
// the gradient value of its middle row. Without stops the plain path color is used.
func (c *MatCanvas) FillGradient(points []m.Point, stops []overlay.GradientStop) {
	pts := toImagePoints(points)
	if len(pts) < 3 {
		return
	}
	if len(stops) == 0 {
		c.FillPolygon(points, overlay.StylePath, 1)
		return
	}
	rows := c.Mat.Rows()
	bounds := pointBounds(pts).Intersect(image.Rect(0, 0, c.Mat.Cols(), rows))
	if bounds.Empty() {
		return
	}

	pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
	defer pv.Close()
	layer := c.Mat.Clone()
	defer layer.Close()

	for y := bounds.Min.Y; y < bounds.Max.Y; y += GRADIENT_BAND {
		band := image.Rect(bounds.Min.X, y, bounds.Max.X, min(y+GRADIENT_BAND, bounds.Max.Y))
		mid := float64(band.Min.Y+band.Max.Y) / 2
		stop, _ := overlay.GradientAt(stops, (float64(rows)-mid)/float64(rows))
		if stop.Alpha <= 0 {
			continue
		}
		gocv.FillPoly(&layer, pv, hslColor(stop))
		c.blendRegion(&layer, band, stop.Alpha)
	}
}

// blendRegion mixes one region of layer into the image.
func (c *MatCanvas) blendRegion(layer *gocv.Mat, r image.Rectangle, alpha float64) {
	src := layer.Region(r)
	defer src.Close()
	dst := c.Mat.Region(r)
	defer dst.Close()
	gocv.AddWeighted(src, min(alpha, 1), dst, 1-min(alpha, 1), 0, &dst)
}

func (c *MatCanvas) StrokeRect(r m.Rect, style overlay.Style, alpha float64, width float64) {
	c.blend(alpha, func(dst *gocv.Mat) {
		gocv.Rectangle(dst, toImageRect(r), styleColor(style), thickness(width))
	})
}

func (c *MatCanvas) Line(from, to m.Point, style overlay.Style, alpha float64, width float64) {
	if !from.Finite() || !to.Finite() {
		return
	}
	pts := toImagePoints([]m.Point{from, to})
	c.blend(alpha, func(dst *gocv.Mat) {
		gocv.Line(dst, pts[0], pts[1], styleColor(style), thickness(width))
	})
}

func (c *MatCanvas) Text(r m.Rect, text string, placement overlay.LabelPlacement, style overlay.Style, alpha float64) {
	size := gocv.GetTextSize(text, LABEL_FONT, LABEL_FONT_SCALE, LABEL_THICKNESS)
	box := toImageRect(r)
	var org image.Point
	switch placement {
	case overlay.LabelTopLeft:
		org = image.Pt(box.Min.X, box.Min.Y-LABEL_MARGIN)
	case overlay.LabelBottomLeft:
		org = image.Pt(box.Min.X, box.Max.Y+size.Y+LABEL_MARGIN)
	default:
		return
	}
	c.blend(alpha, func(dst *gocv.Mat) {
		gocv.PutText(dst, text, org, LABEL_FONT, LABEL_FONT_SCALE, styleColor(style), LABEL_THICKNESS)
	})
}

// Save writes the image, picking the encoding from the file extension.
func (c *MatCanvas) Save(file string) error {
	if !gocv.IMWrite(file, c.Mat) {
		return errors.Errorf("could not write image %s", file)
	}
	return nil
}

// EncodePNG returns the image as PNG bytes.
func (c *MatCanvas) EncodePNG() ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, c.Mat)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode png")
	}
	defer buf.Close()
	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// Snapshot draws scene onto a blank image the size of its surface.
func Snapshot(scene *overlay.Scene) *MatCanvas {
	surface := scene.Transform.Surface
	c := NewMatCanvas(max(int(surface.W), 1), max(int(surface.H), 1))
	scene.Draw(c)
	return c
}
