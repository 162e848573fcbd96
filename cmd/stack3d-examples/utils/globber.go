package utils

import (
	"errors"
	"os"
	"sort"

	"github.com/mattn/go-zglob"
	"github.com/spf13/afero"
)

// CustomGlobber resolves glob patterns on the OS filesystem using mattn/go-zglob.
// A pattern without matches yields an empty result rather than an error.
type CustomGlobber struct{}

// Glob expands pattern and returns the matching file paths in lexical order.
func (g CustomGlobber) Glob(pattern string) ([]string, error) {
	matches, err := zglob.Glob(pattern)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}

// AferoGlobber resolves glob patterns against an afero filesystem.
type AferoGlobber struct {
	Fs afero.Fs
}

// Glob expands pattern and returns the matching file paths in lexical order.
func (g AferoGlobber) Glob(pattern string) ([]string, error) {
	matches, err := afero.Glob(g.Fs, pattern)
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
