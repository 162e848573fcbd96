package models

import "math"

// Stats group indices along axis 1 of a StatsArray.
const (
	GroupInput = iota
	GroupIntermediate
	GroupOutput
)

// Stats kinds along axis 2 of a StatsArray.
const (
	StatMin = iota
	StatMax
	StatMean
)

// StatNames names the stats kinds in axis 2 order.
var StatNames = []string{"min", "max", "mean"}

// StepResult is the output directory of one process step (or the raw input).
type StepResult struct {
	Dir   string
	Label string
}

// StatsArray holds per-slice statistics with shape (N, 3, 3).
type StatsArray struct {
	N    int
	Data []float64
}

// At returns the value at [i, group, kind].
func (s StatsArray) At(i, group, kind int) float64 {
	return s.Data[(i*3+group)*3+kind]
}

// Column returns the N values of stats[:, group, kind].
func (s StatsArray) Column(group, kind int) []float64 {
	values := make([]float64, s.N)
	for i := range values {
		values[i] = s.At(i, group, kind)
	}
	return values
}

// Bounds holds (min, max) pairs extracted from a StatsArray.
type Bounds [][2]float64

// Range returns the smallest pair minimum and the largest pair maximum.
func (b Bounds) Range() (float64, float64) {
	mins := make([]float64, len(b))
	maxs := make([]float64, len(b))
	for i, pair := range b {
		mins[i], maxs[i] = pair[0], pair[1]
	}
	return NanMin(mins), NanMax(maxs)
}

// NanMin returns the minimum of values ignoring NaN, or NaN if none remain.
func NanMin(values []float64) float64 {
	out := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(out) || v < out {
			out = v
		}
	}
	return out
}

// NanMax returns the maximum of values ignoring NaN, or NaN if none remain.
func NanMax(values []float64) float64 {
	out := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(out) || v > out {
			out = v
		}
	}
	return out
}

// Volume is a 3-D image stack of shape (Nz, Ny, Nx) stored in C order.
type Volume struct {
	Nz, Ny, Nx int
	Data       []float64
}

// Shape returns (Nz, Ny, Nx).
func (v Volume) Shape() [3]int {
	return [3]int{v.Nz, v.Ny, v.Nx}
}

// At returns the voxel at [z, y, x].
func (v Volume) At(z, y, x int) float64 {
	return v.Data[(z*v.Ny+y)*v.Nx+x]
}

// Slice2D is a row-major 2-D plane of Rows x Cols values.
type Slice2D struct {
	Rows, Cols int
	Data       []float64
}

// At returns the value at [r, c].
func (s Slice2D) At(r, c int) float64 {
	return s.Data[r*s.Cols+c]
}

// SliceZ returns vol[z, :, :].
func (v Volume) SliceZ(z int) Slice2D {
	out := Slice2D{Rows: v.Ny, Cols: v.Nx, Data: make([]float64, v.Ny*v.Nx)}
	copy(out.Data, v.Data[z*v.Ny*v.Nx:(z+1)*v.Ny*v.Nx])
	return out
}

// SliceY returns vol[:, y, :].
func (v Volume) SliceY(y int) Slice2D {
	out := Slice2D{Rows: v.Nz, Cols: v.Nx, Data: make([]float64, v.Nz*v.Nx)}
	for z := 0; z < v.Nz; z++ {
		copy(out.Data[z*v.Nx:(z+1)*v.Nx], v.Data[(z*v.Ny+y)*v.Nx:(z*v.Ny+y+1)*v.Nx])
	}
	return out
}

// FlipUD reverses the row order.
func (s Slice2D) FlipUD() Slice2D {
	out := Slice2D{Rows: s.Rows, Cols: s.Cols, Data: make([]float64, len(s.Data))}
	for r := 0; r < s.Rows; r++ {
		copy(out.Data[r*s.Cols:(r+1)*s.Cols], s.Data[(s.Rows-1-r)*s.Cols:(s.Rows-r)*s.Cols])
	}
	return out
}
