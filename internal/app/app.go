package app

import (
	"errors"

	"github.com/op/go-logging"
	"github.com/spf13/afero"

	"github.com/shini4i/stack3d-examples/cmd/stack3d-examples/utils"
	"github.com/shini4i/stack3d-examples/internal/ports"
	"github.com/shini4i/stack3d-examples/internal/stats"
	"github.com/shini4i/stack3d-examples/internal/volume"
)

// Dependencies aggregates runtime collaborators required by App.
type Dependencies struct {
	FS      afero.Fs
	Globber ports.Globber
	Stats   ports.StatsLoader
	Volumes ports.VolumeLoader
	Logger  *logging.Logger
}

// App prepares example project directories and inspects pipeline outputs.
type App struct {
	cfg     Config
	fs      afero.Fs
	globber ports.Globber
	stats   ports.StatsLoader
	volumes ports.VolumeLoader
	logger  *logging.Logger
}

// New constructs an App using the supplied configuration and dependencies.
func New(cfg Config, deps Dependencies) (*App, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}

	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.Globber == nil {
		deps.Globber = defaultGlobber(deps.FS)
	}
	if deps.Stats == nil {
		deps.Stats = stats.Loader{Fs: deps.FS}
	}
	if deps.Volumes == nil {
		deps.Volumes = volume.Loader{Fs: deps.FS}
	}

	return &App{
		cfg:     cfg,
		fs:      deps.FS,
		globber: deps.Globber,
		stats:   deps.Stats,
		volumes: deps.Volumes,
		logger:  deps.Logger,
	}, nil
}

// Config returns the configuration the App was built with.
func (a *App) Config() Config {
	return a.cfg
}

// defaultGlobber prefers zglob on the real filesystem.
func defaultGlobber(fs afero.Fs) ports.Globber {
	if _, ok := fs.(*afero.OsFs); ok {
		return utils.CustomGlobber{}
	}
	return utils.AferoGlobber{Fs: fs}
}
