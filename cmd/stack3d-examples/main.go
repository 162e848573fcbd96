package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/afero"

	"github.com/shini4i/stack3d-examples/cmd/stack3d-examples/command"
	"github.com/shini4i/stack3d-examples/internal/helpers"
	"github.com/shini4i/stack3d-examples/internal/workspace"
)

var (
	version = "local"
	log     = logging.MustGetLogger("stack3d-examples")
	// normal output doesn't need timestamps or levels
	format = logging.MustStringFormatter(`%{message}`)
)

func initLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))

	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}

	logging.SetBackend(leveled)
}

func main() {
	err := workspace.WithUserTempDir(func(tmp string) error {
		return command.Execute(command.Options{
			Version:     version,
			TemplateDir: helpers.GetEnv("STACK3D_TEMPLATE_DIR", "examples"),
			TempDirBase: helpers.GetEnv("STACK3D_BASE_DIR", tmp),
			FS:          afero.NewOsFs(),
			Logger:      log,
			InitLogging: initLogging,
		}, nil)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
