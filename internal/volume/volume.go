// Package volume loads .tif image sequences into 3-D volumes.
package volume

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/image/tiff"

	"github.com/shini4i/stack3d-examples/internal/models"
)

var (
	// ErrEmpty is returned when no slice files are given.
	ErrEmpty = errors.New("no image files to load")
	// ErrSliceSize is returned when slices do not share the same dimensions.
	ErrSliceSize = errors.New("image slices differ in size")
)

// Loader decodes TIFF slices from Fs.
type Loader struct {
	Fs afero.Fs
}

// Load stacks files, in order, along the first axis of the returned volume.
func (l Loader) Load(files []string) (models.Volume, error) {
	if len(files) == 0 {
		return models.Volume{}, ErrEmpty
	}

	var vol models.Volume
	for z, file := range files {
		img, err := l.decode(file)
		if err != nil {
			return models.Volume{}, err
		}

		bounds := img.Bounds()
		if z == 0 {
			vol = models.Volume{
				Nz:   len(files),
				Ny:   bounds.Dy(),
				Nx:   bounds.Dx(),
				Data: make([]float64, len(files)*bounds.Dy()*bounds.Dx()),
			}
		} else if bounds.Dx() != vol.Nx || bounds.Dy() != vol.Ny {
			return models.Volume{}, errors.Wrapf(ErrSliceSize, "%s is %dx%d, expected %dx%d",
				file, bounds.Dx(), bounds.Dy(), vol.Nx, vol.Ny)
		}

		fill(vol.Data[z*vol.Ny*vol.Nx:(z+1)*vol.Ny*vol.Nx], img)
	}

	return vol, nil
}

func (l Loader) decode(file string) (image.Image, error) {
	f, err := l.Fs.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", file)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	var unsupported tiff.UnsupportedError
	if errors.As(err, &unsupported) {
		return nil, errors.Wrapf(err, "unable to decode %s, only unsigned integer slices are supported", file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", file)
	}
	return img, nil
}

// fill writes the luminance of img into dst in row-major order.
func fill(dst []float64, img image.Image) {
	b := img.Bounds()
	w := b.Dx()

	switch src := img.(type) {
	case *image.Gray16:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst[(y-b.Min.Y)*w+x-b.Min.X] = float64(src.Gray16At(x, y).Y)
			}
		}
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst[(y-b.Min.Y)*w+x-b.Min.X] = float64(src.GrayAt(x, y).Y)
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
				dst[(y-b.Min.Y)*w+x-b.Min.X] = float64(g.Y)
			}
		}
	}
}
