package figure

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/shini4i/stack3d-examples/internal/models"
)

// Point is a position in data coordinates.
type Point struct {
	X, Y float64
}

// LineStyle describes how a reference line is stroked.
type LineStyle struct {
	Color  color.Color
	Dashed bool
}

type hline struct {
	y     float64
	style LineStyle
}

type annotation struct {
	xy, xytext Point
	color      color.Color
}

type layer struct {
	data       models.Slice2D
	vmin, vmax float64
	cmap       *Colormap
}

// Axes is one panel of a Figure. Images are drawn with their origin at the
// lower left corner and stretched to fill the panel.
type Axes struct {
	Title  string
	XLabel string
	YLabel string

	image       *layer
	lines       []hline
	annotations []annotation
}

// Imshow displays s colour-scaled to [vmin, vmax] using Viridis.
func (a *Axes) Imshow(s models.Slice2D, vmin, vmax float64) {
	a.image = &layer{data: s, vmin: vmin, vmax: vmax, cmap: Viridis}
}

// HasImage reports whether Imshow was called.
func (a *Axes) HasImage() bool {
	return a.image != nil
}

// AxHLine adds a horizontal line spanning the panel at data height y.
func (a *Axes) AxHLine(y float64, style LineStyle) {
	a.lines = append(a.lines, hline{y: y, style: style})
}

// Annotate adds an arrow pointing from xytext to xy.
func (a *Axes) Annotate(xy, xytext Point, col color.Color) {
	a.annotations = append(a.annotations, annotation{xy: xy, xytext: xytext, color: col})
}

// HLines returns the data heights of the horizontal lines.
func (a *Axes) HLines() []float64 {
	ys := make([]float64, len(a.lines))
	for i, l := range a.lines {
		ys[i] = l.y
	}
	return ys
}

// Arrows returns the (xy, xytext) pairs of the annotations.
func (a *Axes) Arrows() [][2]Point {
	arrows := make([][2]Point, len(a.annotations))
	for i, ann := range a.annotations {
		arrows[i] = [2]Point{ann.xy, ann.xytext}
	}
	return arrows
}

// Shape returns the rows and columns of the displayed image.
func (a *Axes) Shape() (int, int) {
	if a.image == nil {
		return 0, 0
	}
	return a.image.data.Rows, a.image.data.Cols
}

// SetTitle sets the panel title.
func (a *Axes) SetTitle(title string) { a.Title = title }

// SetXLabel sets the x axis label.
func (a *Axes) SetXLabel(label string) { a.XLabel = label }

// SetYLabel sets the y axis label.
func (a *Axes) SetYLabel(label string) { a.YLabel = label }

// limits returns the data extent of the panel.
func (a *Axes) limits() (xmin, xmax, ymin, ymax float64) {
	if a.image == nil {
		return 0, 1, 0, 1
	}
	return -0.5, float64(a.image.data.Cols) - 0.5, -0.5, float64(a.image.data.Rows) - 0.5
}

// toPixel maps a data point into plot, with y growing upwards.
func (a *Axes) toPixel(p Point, plot image.Rectangle) image.Point {
	xmin, xmax, ymin, ymax := a.limits()
	px := float64(plot.Min.X) + (p.X-xmin)/(xmax-xmin)*float64(plot.Dx())
	py := float64(plot.Min.Y) + (ymax-p.Y)/(ymax-ymin)*float64(plot.Dy())
	return image.Pt(int(math.Round(px)), int(math.Round(py)))
}

// render draws the panel into cell of dc.
func (a *Axes) render(dc *gg.Context, cell image.Rectangle) {
	plot := image.Rect(cell.Min.X+marginLeft, cell.Min.Y+marginTop, cell.Max.X-marginRight, cell.Max.Y-marginBottom)
	if plot.Empty() {
		return
	}

	if a.image != nil {
		raster := a.image.raster()
		// origin lower: data row 0 ends up at the bottom of the panel
		raster = imaging.FlipV(raster)
		raster = imaging.Resize(raster, plot.Dx(), plot.Dy(), imaging.NearestNeighbor)
		dc.DrawImage(raster, plot.Min.X, plot.Min.Y)
	}

	dc.DrawRectangle(float64(plot.Min.X), float64(plot.Min.Y), float64(plot.Dx()), float64(plot.Dy()))
	dc.Clip()
	for _, l := range a.lines {
		y := a.toPixel(Point{Y: l.y}, plot).Y
		var dashes []float64
		if l.style.Dashed {
			dashes = dashPattern
		}
		strokeLine(dc, image.Pt(plot.Min.X, y), image.Pt(plot.Max.X, y), l.style.Color, dashes...)
	}
	for _, ann := range a.annotations {
		drawArrow(dc, a.toPixel(ann.xytext, plot), a.toPixel(ann.xy, plot), ann.color)
	}
	dc.ResetClip()

	strokeFrame(dc, plot, color.Black)

	if a.Title != "" {
		drawLabel(dc, a.Title, (plot.Min.X+plot.Max.X)/2, plot.Min.Y-6, color.Black)
	}
	if a.XLabel != "" {
		drawLabel(dc, a.XLabel, (plot.Min.X+plot.Max.X)/2, plot.Max.Y+16, color.Black)
	}
	if a.YLabel != "" {
		drawLabel(dc, a.YLabel, plot.Min.X-10, (plot.Min.Y+plot.Max.Y)/2+4, color.Black)
	}
}

// raster colours the layer data, row 0 first.
func (l *layer) raster() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, l.data.Cols, l.data.Rows))
	for r := 0; r < l.data.Rows; r++ {
		for c := 0; c < l.data.Cols; c++ {
			img.SetNRGBA(c, r, l.cmap.At(l.data.At(r, c), l.vmin, l.vmax))
		}
	}
	return img
}
