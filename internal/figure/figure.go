// Package figure is a small raster plotting surface: a grid of axes showing
// colour-scaled 2-D arrays with reference lines, arrows and labels, rendered
// to an image file.
package figure

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// DPI converts figure inches to pixels.
const DPI = 100

const (
	marginLeft   = 25
	marginRight  = 10
	marginTop    = 22
	marginBottom = 25
)

// Figure is a rows x cols grid of Axes.
type Figure struct {
	Width, Height int
	Background    color.Color

	rows, cols int
	axes       [][]*Axes
}

// New creates a figure of rows x cols axes measuring width x height inches.
func New(rows, cols int, width, height float64) *Figure {
	axes := make([][]*Axes, rows)
	for r := range axes {
		axes[r] = make([]*Axes, cols)
		for c := range axes[r] {
			axes[r][c] = &Axes{}
		}
	}

	return &Figure{
		Width:      int(width * DPI),
		Height:     int(height * DPI),
		Background: color.White,
		rows:       rows,
		cols:       cols,
		axes:       axes,
	}
}

// Shape returns the number of axes rows and columns.
func (f *Figure) Shape() (int, int) {
	return f.rows, f.cols
}

// Ax returns the axes at row r, column c.
func (f *Figure) Ax(r, c int) *Axes {
	return f.axes[r][c]
}

// Render draws every axes into a new image.
func (f *Figure) Render() *image.NRGBA {
	dc := gg.NewContext(f.Width, f.Height)
	dc.SetColor(f.Background)
	dc.Clear()

	if f.rows > 0 && f.cols > 0 {
		cellW, cellH := f.Width/f.cols, f.Height/f.rows
		for r, row := range f.axes {
			for c, ax := range row {
				cell := image.Rect(c*cellW, r*cellH, (c+1)*cellW, (r+1)*cellH)
				ax.render(dc, cell)
			}
		}
	}

	return imaging.Clone(dc.Image())
}

// Save renders the figure and writes it to path on fs. The image format is
// chosen from the file extension.
func (f *Figure) Save(fs afero.Fs, path string) (err error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return errors.Wrapf(err, "unable to save figure to %s", path)
	}

	out, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	return imaging.Encode(out, f.Render(), format)
}
