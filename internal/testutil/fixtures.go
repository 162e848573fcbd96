// Package testutil builds on-disk fixtures shaped like pipeline outputs.
package testutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

// NpyBytes builds a version 1.0 little-endian float64 .npy payload.
func NpyBytes(shape []int, fortran bool, data []float64) []byte {
	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = fmt.Sprint(d)
	}
	order := "False"
	if fortran {
		order = "True"
	}
	header := fmt.Sprintf("{'descr': '<f8', 'fortran_order': %s, 'shape': (%s), }", order, strings.Join(dims, ", "))
	// magic, version and length take 10 bytes; the whole preamble is 64 byte aligned
	pad := (64 - (10+len(header)+1)%64) % 64
	header += strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	for _, v := range data {
		_ = binary.Write(&buf, binary.LittleEndian, math.Float64bits(v))
	}
	return buf.Bytes()
}

// WriteStats writes an (n, 3, 3) stats.npy whose [i, j, k] entry is value(i, j, k).
func WriteStats(t *testing.T, fs afero.Fs, path string, n int, value func(i, j, k int) float64) {
	t.Helper()

	data := make([]float64, 0, n*9)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				data = append(data, value(i, j, k))
			}
		}
	}
	require.NoError(t, afero.WriteFile(fs, path, NpyBytes([]int{n, 3, 3}, false, data), 0o644))
}

// WriteSlice writes a w x h 16-bit grayscale TIFF whose pixels are value(x, y).
func WriteSlice(t *testing.T, fs afero.Fs, path string, w, h int, value func(x, y int) uint16) {
	t.Helper()

	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray16(x, y, color.Gray16{Y: value(x, y)})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, tiff.Encode(&buf, img, nil))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

// WriteStack writes nz slices named slice_000.tif, slice_001.tif, ... into dir.
func WriteStack(t *testing.T, fs afero.Fs, dir string, nz, ny, nx int) {
	t.Helper()

	for z := 0; z < nz; z++ {
		WriteSlice(t, fs, fmt.Sprintf("%s/slice_%03d.tif", dir, z), nx, ny, func(x, y int) uint16 {
			return uint16(100*z + 10*y + x)
		})
	}
}
