package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"

	m "pfeifer.dev/overlayd/math"
	"pfeifer.dev/overlayd/overlay"
)

func TestPaletteCoversStyles(t *testing.T) {
	for s := overlay.StyleLaneLine; s <= overlay.StyleLabel; s++ {
		_, ok := Palette[s]
		assert.True(t, ok, s.String())
	}
}

func TestStyleColorSwapsChannels(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 255, A: 255}, styleColor(overlay.StyleRoadEdge))
	assert.Equal(t, bgr(fallback), styleColor(overlay.Style(99)))
}

func TestDivergedIsRed(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, Palette[overlay.StyleLockOnDiverged])
}

func TestHSLColor(t *testing.T) {
	green := hslColor(overlay.GradientStop{Hue: 120, Saturation: 1, Lightness: 0.5})
	assert.Equal(t, color.RGBA{G: 255, A: 255}, green)

	// red comes out in the blue channel for OpenCV
	red := hslColor(overlay.GradientStop{Hue: 0, Saturation: 1, Lightness: 0.5, Alpha: 0.3})
	assert.Equal(t, color.RGBA{B: 255, A: 255}, red)

	grey := hslColor(overlay.GradientStop{Hue: 60, Saturation: 0, Lightness: 1})
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, grey)
}

func TestPointBounds(t *testing.T) {
	assert.Equal(t, image.Rectangle{}, pointBounds(nil))
	assert.Equal(t, image.Rect(-1, 2, 11, 8), pointBounds([]image.Point{{X: 3, Y: 7}, {X: -1, Y: 2}, {X: 10, Y: 4}}))
}

func TestToImagePoints(t *testing.T) {
	pts := toImagePoints([]m.Point{
		{X: 1.4, Y: 2.6},
		{X: math.NaN(), Y: 3},
		{X: 10, Y: math.Inf(1)},
		{X: -0.6, Y: 0},
	})
	assert.Equal(t, []image.Point{{X: 1, Y: 3}, {X: -1, Y: 0}}, pts)
}

func TestToImageRect(t *testing.T) {
	assert.Equal(t, image.Rect(10, 20, 110, 70), toImageRect(m.NewRect(10.2, 19.7, 100, 50)))
}

func TestThickness(t *testing.T) {
	assert.Equal(t, 1, thickness(0))
	assert.Equal(t, 5, thickness(5))
	assert.Equal(t, 8, thickness(7.6))
}

func TestFillGradient(t *testing.T) {
	c := NewMatCanvas(100, 100)
	defer c.Close()

	square := []m.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}
	green := overlay.GradientStop{Hue: 120, Saturation: 1, Lightness: 0.5, Alpha: 1}
	top := green
	top.Pos = 1
	c.FillGradient(square, []overlay.GradientStop{green, top})

	assert.Equal(t, gocv.Vecb{0, 255, 0}, c.Mat.GetVecbAt(50, 50))
	assert.Equal(t, gocv.Vecb{0, 0, 0}, c.Mat.GetVecbAt(5, 5))

	// transparent stops leave the image alone
	transparent := overlay.GradientStop{Hue: 0, Saturation: 1, Lightness: 0.5}
	c.FillGradient(square, []overlay.GradientStop{transparent})
	assert.Equal(t, gocv.Vecb{0, 255, 0}, c.Mat.GetVecbAt(50, 50))
}
