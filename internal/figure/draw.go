package figure

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

var labelFace = basicfont.Face7x13

// arrow head size in pixels
const (
	headLength = 6.0
	headWidth  = 3.5
)

// dashPattern strokes 4 pixels on, 3 off.
var dashPattern = []float64{4, 3}

// px returns the centre of pixel i, so 1px strokes cover whole pixels.
func px(i int) float64 {
	return float64(i) + 0.5
}

// strokeLine strokes a 1px segment between pixel centres.
func strokeLine(dc *gg.Context, from, to image.Point, col color.Color, dashes ...float64) {
	dc.SetColor(col)
	dc.SetLineWidth(1)
	dc.SetLineCapButt()
	dc.SetDash(dashes...)
	dc.DrawLine(px(from.X), px(from.Y), px(to.X), px(to.Y))
	dc.Stroke()
	dc.SetDash()
}

// drawArrow draws a '->' style arrow from tail to tip.
func drawArrow(dc *gg.Context, tail, tip image.Point, col color.Color) {
	strokeLine(dc, tail, tip, col)

	dx, dy := float64(tip.X-tail.X), float64(tip.Y-tail.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length

	bx, by := px(tip.X)-headLength*ux, px(tip.Y)-headLength*uy
	dc.SetColor(col)
	dc.SetLineWidth(1)
	for _, side := range []float64{-1, 1} {
		dc.DrawLine(bx-side*headWidth*uy, by+side*headWidth*ux, px(tip.X), px(tip.Y))
		dc.Stroke()
	}
}

// strokeFrame outlines r with a 1px border inside r.
func strokeFrame(dc *gg.Context, r image.Rectangle, col color.Color) {
	dc.SetColor(col)
	dc.SetLineWidth(1)
	dc.SetDash()
	dc.DrawRectangle(px(r.Min.X), px(r.Min.Y), float64(r.Dx()-1), float64(r.Dy()-1))
	dc.Stroke()
}

// drawLabel draws s horizontally centred on x with its baseline at y.
func drawLabel(dc *gg.Context, s string, x, y int, col color.Color) {
	dc.SetFontFace(labelFace)
	dc.SetColor(col)
	dc.DrawStringAnchored(s, float64(x), float64(y), 0.5, 0)
}
