package ports

//go:generate mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks

import "github.com/shini4i/stack3d-examples/internal/models"

// Globber expands filesystem patterns into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}

// StatsLoader reads a persisted per-slice statistics array.
type StatsLoader interface {
	Load(path string) (models.StatsArray, error)
}

// VolumeLoader reads an ordered sequence of 2-D images into a volume.
type VolumeLoader interface {
	Load(files []string) (models.Volume, error)
}
