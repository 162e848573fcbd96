package command

import (
	"errors"
	"fmt"
	"math"

	"github.com/op/go-logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shini4i/stack3d-examples/internal/app"
	"github.com/shini4i/stack3d-examples/internal/helpers"
)

var outputFormats = []string{"text", "yaml"}

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version     string
	TemplateDir string
	TempDirBase string
	FS          afero.Fs
	Logger      *logging.Logger
	InitLogging func(debug bool)
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

// newRootCommand builds the root Cobra command with global flags and hooks.
func newRootCommand(opts Options) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "stack3d-examples",
		Short:        "Prepare example projects and inspect their processed image stacks",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.InitLogging != nil {
				opts.InitLogging(debug)
			}
			return nil
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")

	root.AddCommand(
		newInitCommand(opts),
		newPostproCommand(opts),
		newPlotCommand(opts),
	)

	return root
}

// newApp builds an App from the CLI defaults and per-command options.
func newApp(opts Options, templateDir string, extra ...app.ConfigOption) (*app.App, error) {
	if opts.Logger == nil {
		return nil, errors.New("no logger provided")
	}

	configOptions := append([]app.ConfigOption{
		app.WithTempDirBase(opts.TempDirBase),
		app.WithVersion(opts.Version),
	}, extra...)

	cfg, err := app.NewConfig(templateDir, configOptions...)
	if err != nil {
		return nil, err
	}

	return app.New(cfg, app.Dependencies{FS: opts.FS, Logger: opts.Logger})
}

// newInitCommand constructs the init subcommand preparing a project directory.
func newInitCommand(opts Options) *cobra.Command {
	var dir, templates string

	cmd := &cobra.Command{
		Use:   "init <case>",
		Short: "Create the project directory of an example case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, templates)
			if err != nil {
				return err
			}

			base := dir
			if base == "" {
				base = a.Config().TempDirBase
			}

			dirname, err := a.InitDir(base, args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), dirname)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Base directory (defaults to the user temp directory)")
	cmd.Flags().StringVar(&templates, "templates", opts.TemplateDir, "Directory holding params_<case>.toml templates")

	return cmd
}

// stepFlags are shared by the subcommands reading pipeline outputs.
type stepFlags struct {
	channel string
	steps   []string
	params  string
}

func (f *stepFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.channel, "channel", "c", app.DefaultChannel, "Channel to inspect")
	cmd.Flags().StringSliceVarP(&f.steps, "steps", "s", nil, "Process steps, in execution order")
	cmd.Flags().StringVarP(&f.params, "params", "p", "", "params.toml providing process_steps and input_dirpath")
}

// resolve returns the input directory and process steps to inspect.
func (f *stepFlags) resolve(a *app.App, args []string) (string, []string, error) {
	var inputDir string
	if len(args) > 0 {
		inputDir = args[0]
	}
	steps := app.NormalizeSteps(f.steps...)

	if f.params != "" {
		params, err := a.LoadParams(f.params)
		if err != nil {
			return "", nil, err
		}
		if inputDir == "" {
			inputDir = params.InputDirpath
		}
		if len(steps) == 0 {
			steps = params.ProcessSteps
		}
	}

	if inputDir == "" {
		return "", nil, errors.New("input directory must be provided")
	}

	return inputDir, steps, nil
}

// newPostproCommand constructs the postpro subcommand reporting step outputs and stats.
func newPostproCommand(opts Options) *cobra.Command {
	var (
		flags   stepFlags
		verbose bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "postpro [input-dir]",
		Short: "List step output directories and the statistics range of the last step",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !helpers.Contains(outputFormats, output) {
				return fmt.Errorf("unsupported output format %q", output)
			}

			a, err := newApp(opts, opts.TemplateDir, app.WithChannel(flags.channel), app.WithVerbose(verbose))
			if err != nil {
				return err
			}

			inputDir, steps, err := flags.resolve(a, args)
			if err != nil {
				return err
			}

			result, err := a.Postpro(steps, inputDir, a.Config().Channel)
			if err != nil {
				return err
			}

			if output == "yaml" {
				return writeYAMLReport(cmd, result)
			}
			return writeTextReport(cmd, result)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", helpers.GetEnvBool("STACK3D_VERBOSE", false), "Log every extracted (min, max) pair")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text or yaml)")

	return cmd
}

type reportStep struct {
	Label string `yaml:"label"`
	Dir   string `yaml:"dir"`
}

type reportStat struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

type postproReport struct {
	Steps []reportStep `yaml:"steps"`
	Stats []reportStat `yaml:"stats"`
}

func newPostproReport(result app.PostproResult) postproReport {
	var report postproReport
	for i, dir := range result.Dirs {
		report.Steps = append(report.Steps, reportStep{Label: result.Labels[i], Dir: dir})
	}
	for i, name := range app.BoundNames() {
		report.Stats = append(report.Stats, reportStat{Name: name, Min: result.Stats[i][0], Max: result.Stats[i][1]})
	}
	return report
}

func writeYAMLReport(cmd *cobra.Command, result app.PostproResult) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(newPostproReport(result)); err != nil {
		return err
	}
	return enc.Close()
}

func writeTextReport(cmd *cobra.Command, result app.PostproResult) error {
	out := cmd.OutOrStdout()
	report := newPostproReport(result)

	for _, step := range report.Steps {
		if _, err := fmt.Fprintf(out, "%-16s %s\n", step.Label, step.Dir); err != nil {
			return err
		}
	}
	for _, stat := range report.Stats {
		if _, err := fmt.Fprintf(out, "%s: %v %v\n", stat.Name, stat.Min, stat.Max); err != nil {
			return err
		}
	}
	return nil
}

// newPlotCommand constructs the plot subcommand rendering the step results figure.
func newPlotCommand(opts Options) *cobra.Command {
	var (
		flags      stepFlags
		out        string
		vmin, vmax float64
	)

	cmd := &cobra.Command{
		Use:   "plot [input-dir]",
		Short: "Render orthogonal mid-slices of every step output into an image",
		Long: `Render orthogonal mid-slices of every step output into an image.

Slices are read as 8 or 16-bit unsigned integer TIFFs. Stacks saved with a
floating point sample format are rejected, convert them before plotting.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, opts.TemplateDir, app.WithChannel(flags.channel))
			if err != nil {
				return err
			}

			inputDir, steps, err := flags.resolve(a, args)
			if err != nil {
				return err
			}

			result, err := a.Postpro(steps, inputDir, a.Config().Channel)
			if err != nil {
				return err
			}

			lo, hi := result.Stats.Range()
			if cmd.Flags().Changed("vmin") {
				lo = vmin
			}
			if cmd.Flags().Changed("vmax") {
				hi = vmax
			}
			if math.IsNaN(lo) || math.IsNaN(hi) {
				return errors.New("statistics hold no values, pass --vmin and --vmax")
			}

			fig, err := a.PlotResults(result.Dirs, result.Labels, lo, hi)
			if err != nil {
				return err
			}

			fs := opts.FS
			if fs == nil {
				fs = afero.NewOsFs()
			}
			if err := fig.Save(fs, out); err != nil {
				return err
			}

			opts.Logger.Infof("===> Figure saved to %s", out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "O", "results.png", "Output image file (.png, .jpg, .tif, ...)")
	cmd.Flags().Float64Var(&vmin, "vmin", 0, "Lower colour scale bound (defaults to the statistics range)")
	cmd.Flags().Float64Var(&vmax, "vmax", 0, "Upper colour scale bound (defaults to the statistics range)")

	return cmd
}
