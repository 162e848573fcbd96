package app

import (
	"image/color"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/shini4i/stack3d-examples/internal/figure"
)

// panel size of a single process step, in inches
const (
	columnWidth = 2.5
	figHeight   = 5
)

var cutplaneStyle = figure.LineStyle{Color: color.White, Dashed: true}

// PlotResults builds a figure with one column per directory: the middle
// slice along the first axis on top and along the second axis below.
// Directories without .tif files leave their column blank. The first column
// also marks where each view cuts the other.
func (a *App) PlotResults(dirs, labels []string, vmin, vmax float64) (*figure.Figure, error) {
	if len(dirs) == 0 {
		return nil, errors.New("no directories to plot")
	}
	if len(labels) != len(dirs) {
		return nil, errors.Errorf("got %d labels for %d directories", len(labels), len(dirs))
	}

	ncol := len(dirs)
	fig := figure.New(2, ncol, columnWidth*float64(ncol), figHeight)

	for i, dir := range dirs {
		fnames, err := a.globber.Glob(filepath.Join(dir, tifGlob))
		if err != nil {
			return nil, err
		}
		if len(fnames) == 0 {
			a.logger.Debugf("▶ No images in %s, leaving [%s] blank", dir, labels[i])
			continue
		}

		vol, err := a.volumes.Load(fnames)
		if err != nil {
			return nil, err
		}
		a.logger.Debugf("▶ Loaded %s volume %v", labels[i], vol.Shape())

		ic, jc := vol.Nz/2, vol.Ny/2
		top, bottom := fig.Ax(0, i), fig.Ax(1, i)

		top.SetTitle(labels[i])
		top.Imshow(vol.SliceZ(ic).FlipUD(), vmin, vmax)
		bottom.Imshow(vol.SliceY(jc), vmin, vmax)

		if i == 0 {
			top.SetYLabel("Y")
			top.SetXLabel("X")
			AddCutplaneLine(top, jc, float64(vol.Nx), float64(vol.Ny))
			bottom.SetYLabel("Z")
			bottom.SetXLabel("X")
			AddCutplaneLine(bottom, ic, float64(vol.Nx), -float64(vol.Nz))
		}

		for _, ax := range []*figure.Axes{top, bottom} {
			rows, cols := ax.Shape()
			a.logger.Debugf("▶ [%s] %dx%d view, cut planes %v, arrows %v", labels[i], rows, cols, ax.HLines(), ax.Arrows())
		}
	}

	blank := 0
	for i := range dirs {
		if !fig.Ax(0, i).HasImage() {
			blank++
		}
	}
	if blank > 0 {
		a.logger.Warningf("▶ %d of %d columns left blank", blank, ncol)
	}

	return fig, nil
}

// AddCutplaneLine marks slice ind on ax with a dashed line and two arrows
// near the panel edges. A negative height flips the arrows.
func AddCutplaneLine(ax *figure.Axes, ind int, width, height float64) {
	y := float64(ind)
	ax.AxHLine(y, cutplaneStyle)

	for _, rel := range []float64{0.05, 0.95} {
		xy := figure.Point{X: rel * width, Y: y}
		xytext := figure.Point{X: rel * width, Y: y + 0.1*height}
		ax.Annotate(xy, xytext, color.White)
	}
}
