package app

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shini4i/stack3d-examples/internal/figure"
	"github.com/shini4i/stack3d-examples/internal/mocks"
	"github.com/shini4i/stack3d-examples/internal/models"
	"github.com/shini4i/stack3d-examples/internal/testutil"
)

func TestAddCutplaneLine(t *testing.T) {
	ax := &figure.Axes{}

	AddCutplaneLine(ax, 5, 40, -20)

	assert.Equal(t, []float64{5}, ax.HLines())
	assert.Equal(t, [][2]figure.Point{
		{{X: 2, Y: 5}, {X: 2, Y: 3}},
		{{X: 38, Y: 5}, {X: 38, Y: 3}},
	}, ax.Arrows())
}

func TestPlotResults(t *testing.T) {
	fs := afero.NewMemMapFs()
	dirs := []string{"/data/ch0", "/data/process/cropping/ch0", "/data/process/resampling/ch0"}
	labels := []string{"input", "cropping", "resampling"}

	testutil.WriteStack(t, fs, dirs[0], 5, 8, 6)
	testutil.WriteStack(t, fs, dirs[1], 4, 6, 4)
	// resampling produced nothing
	require.NoError(t, fs.MkdirAll(dirs[2], 0o755))

	logger, buf := captureTestLogger(t, "plot-results")
	cfg, err := NewConfig("/templates")
	require.NoError(t, err)
	a, err := New(cfg, Dependencies{FS: fs, Logger: logger})
	require.NoError(t, err)

	fig, err := a.PlotResults(dirs, labels, 0, 500)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[input] 8x6 view, cut planes [4]")
	assert.Contains(t, out, "[input] 5x6 view, cut planes [2]")
	assert.Contains(t, out, "[cropping] 6x4 view, cut planes []")
	assert.Contains(t, out, "1 of 3 columns left blank")

	rows, cols := fig.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 750, fig.Width)
	assert.Equal(t, 500, fig.Height)

	top, bottom := fig.Ax(0, 0), fig.Ax(1, 0)
	assert.Equal(t, "input", top.Title)
	assert.Equal(t, "Y", top.YLabel)
	assert.Equal(t, "Z", bottom.YLabel)

	r, c := top.Shape()
	assert.Equal(t, [2]int{8, 6}, [2]int{r, c})
	r, c = bottom.Shape()
	assert.Equal(t, [2]int{5, 6}, [2]int{r, c})

	// jc = 4 on the top view, ic = 2 on the side view
	assert.Equal(t, []float64{4}, top.HLines())
	assert.Equal(t, []float64{2}, bottom.HLines())
	topText, bottomText := top.Arrows()[0][1], bottom.Arrows()[0][1]
	assert.InDelta(t, 0.3, topText.X, 1e-9)
	assert.InDelta(t, 4.8, topText.Y, 1e-9)
	assert.InDelta(t, 1.5, bottomText.Y, 1e-9)
	assert.InDelta(t, 5.7, bottom.Arrows()[1][0].X, 1e-9)

	assert.Equal(t, "cropping", fig.Ax(0, 1).Title)
	assert.Empty(t, fig.Ax(0, 1).HLines())
	assert.True(t, fig.Ax(1, 1).HasImage())

	assert.False(t, fig.Ax(0, 2).HasImage())
	assert.False(t, fig.Ax(1, 2).HasImage())
	assert.Empty(t, fig.Ax(0, 2).Title)

	require.NoError(t, fig.Save(fs, "/out/results.png"))
}

func TestPlotResultsSlices(t *testing.T) {
	ctrl := gomock.NewController(t)

	// value = 100*z + 10*y + x on a (3, 4, 2) volume
	vol := models.Volume{Nz: 3, Ny: 4, Nx: 2, Data: make([]float64, 24)}
	for z := 0; z < 3; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 2; x++ {
				vol.Data[(z*4+y)*2+x] = float64(100*z + 10*y + x)
			}
		}
	}

	globber := mocks.NewMockGlobber(ctrl)
	globber.EXPECT().Glob(filepath.Join("/in", "*.tif")).Return([]string{"/in/a.tif", "/in/b.tif", "/in/c.tif"}, nil)
	volumes := mocks.NewMockVolumeLoader(ctrl)
	volumes.EXPECT().Load([]string{"/in/a.tif", "/in/b.tif", "/in/c.tif"}).Return(vol, nil)

	cfg, err := NewConfig("/templates")
	require.NoError(t, err)
	a, err := New(cfg, Dependencies{
		FS:      afero.NewMemMapFs(),
		Globber: globber,
		Volumes: volumes,
		Logger:  setupTestLogger(t, "plot-slices"),
	})
	require.NoError(t, err)

	fig, err := a.PlotResults([]string{"/in"}, []string{"input"}, 0, 300)
	require.NoError(t, err)

	rows, cols := fig.Ax(0, 0).Shape()
	assert.Equal(t, [2]int{4, 2}, [2]int{rows, cols})
	rows, cols = fig.Ax(1, 0).Shape()
	assert.Equal(t, [2]int{3, 2}, [2]int{rows, cols})

	assert.Equal(t, []float64{2}, fig.Ax(0, 0).HLines())
	assert.Equal(t, []float64{1}, fig.Ax(1, 0).HLines())
}

func TestPlotResultsErrors(t *testing.T) {
	a := newTestApp(t, afero.NewMemMapFs())

	_, err := a.PlotResults(nil, nil, 0, 1)
	assert.Error(t, err)

	_, err = a.PlotResults([]string{"/a", "/b"}, []string{"a"}, 0, 1)
	assert.Error(t, err)
}

func TestPlotResultsLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)

	globber := mocks.NewMockGlobber(ctrl)
	globber.EXPECT().Glob(gomock.Any()).Return([]string{"/in/a.tif"}, nil)
	volumes := mocks.NewMockVolumeLoader(ctrl)
	volumes.EXPECT().Load(gomock.Any()).Return(models.Volume{}, assert.AnError)

	cfg, err := NewConfig("/templates")
	require.NoError(t, err)
	a, err := New(cfg, Dependencies{Globber: globber, Volumes: volumes, Logger: setupTestLogger(t, "plot-load")})
	require.NoError(t, err)

	_, err = a.PlotResults([]string{"/in"}, []string{"input"}, 0, 1)
	assert.ErrorIs(t, err, assert.AnError)
}
