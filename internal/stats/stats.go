// Package stats reads the per-slice statistics persisted by pipeline steps.
package stats

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio/npy"
	"github.com/spf13/afero"

	"github.com/shini4i/stack3d-examples/internal/models"
)

// ErrShape is returned when the array is not shaped (N, 3, 3).
var ErrShape = errors.New("stats array must have shape (N, 3, 3)")

// Loader decodes .npy statistics files from Fs.
type Loader struct {
	Fs afero.Fs
}

// Load reads the statistics array stored at path.
func (l Loader) Load(path string) (models.StatsArray, error) {
	f, err := l.Fs.Open(path)
	if err != nil {
		return models.StatsArray{}, errors.Wrapf(err, "unable to open stats file %s", path)
	}
	defer f.Close()

	r, err := npy.NewReader(f)
	if err != nil {
		return models.StatsArray{}, errors.Wrapf(err, "unable to read npy header from %s", path)
	}

	shape := r.Header.Descr.Shape
	if len(shape) != 3 || shape[1] != 3 || shape[2] != 3 {
		return models.StatsArray{}, errors.Wrapf(ErrShape, "%s has shape %v", path, shape)
	}

	data, err := readFloats(r)
	if err != nil {
		return models.StatsArray{}, errors.Wrapf(err, "unable to decode %s", path)
	}

	n := shape[0]
	if r.Header.Descr.Fortran {
		data = fortranToC(data, n)
	}

	return models.StatsArray{N: n, Data: data}, nil
}

func readFloats(r *npy.Reader) ([]float64, error) {
	dtype := r.Header.Descr.Type
	switch {
	case strings.HasSuffix(dtype, "f8"):
		var data []float64
		err := r.Read(&data)
		return data, err
	case strings.HasSuffix(dtype, "f4"):
		var raw []float32
		if err := r.Read(&raw); err != nil {
			return nil, err
		}
		data := make([]float64, len(raw))
		for i, v := range raw {
			data[i] = float64(v)
		}
		return data, nil
	default:
		return nil, errors.Errorf("unsupported dtype %q", dtype)
	}
}

// fortranToC reorders a column-major (n, 3, 3) buffer into row-major order.
func fortranToC(data []float64, n int) []float64 {
	out := make([]float64, len(data))
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[(i*3+j)*3+k] = data[i+n*(j+3*k)]
			}
		}
	}
	return out
}
