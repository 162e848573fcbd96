package app

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Params is the subset of a project params.toml used by the helpers.
type Params struct {
	InputDirpath  string   `toml:"input_dirpath"`
	OutputDirpath string   `toml:"output_dirpath"`
	Channels      []string `toml:"channels"`
	ProcessSteps  []string `toml:"process_steps"`
}

// LoadParams parses the params.toml file at path.
func (a *App) LoadParams(path string) (Params, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return Params{}, errors.Wrapf(err, "unable to read %s", path)
	}

	var params Params
	if err := toml.Unmarshal(data, &params); err != nil {
		return Params{}, errors.Wrapf(err, "unable to parse %s", path)
	}

	return params, nil
}
