package app

import (
	"path/filepath"
	"strings"

	"github.com/shini4i/stack3d-examples/internal/models"
)

const (
	stepRegistrationCalculation    = "registration_calculation"
	stepRegistrationTransformation = "registration_transformation"

	inputLabel = "input"
)

// statsGroups are the StatsArray groups reported by Postpro, with their prefixes.
var statsGroups = []struct {
	index  int
	prefix string
}{
	{models.GroupInput, "input"},
	{models.GroupOutput, "output"},
}

// PostproResult describes the outputs of a processed dataset.
type PostproResult struct {
	Dirs   []string
	Labels []string
	// Stats holds the (min, max) over all slices of input-min, input-max,
	// input-mean, output-min, output-max and output-mean, in that order.
	Stats models.Bounds
}

// BoundNames names the entries of PostproResult.Stats, e.g. "input-min".
func BoundNames() []string {
	var names []string
	for _, group := range statsGroups {
		for _, name := range models.StatNames {
			names = append(names, group.prefix+"-"+name)
		}
	}
	return names
}

// NormalizeSteps turns one or more step names, possibly comma separated,
// into a list of step names.
func NormalizeSteps(steps ...string) []string {
	var out []string
	for _, step := range steps {
		for _, name := range strings.Split(step, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// StepResults lists the output directory and label of the raw input and of
// every process step writing its own output.
func StepResults(processSteps []string, inputDir, channel string) []models.StepResult {
	results := []models.StepResult{{Dir: filepath.Join(inputDir, channel), Label: inputLabel}}

	for _, step := range processSteps {
		if step == stepRegistrationCalculation {
			continue
		}

		label := step
		if step == stepRegistrationTransformation {
			label = "registration"
		}
		results = append(results, models.StepResult{
			Dir:   filepath.Join(inputDir, "process", step, channel),
			Label: label,
		})
	}

	return results
}

// Postpro collects the directories and labels of each process step and the
// statistics range recorded by the last one.
func (a *App) Postpro(processSteps []string, inputDir, channel string) (PostproResult, error) {
	var result PostproResult
	for _, step := range StepResults(processSteps, inputDir, channel) {
		result.Dirs = append(result.Dirs, step.Dir)
		result.Labels = append(result.Labels, step.Label)
	}

	fname := filepath.Join(result.Dirs[len(result.Dirs)-1], "outputs", "stats.npy")
	a.logger.Debugf("===> Loading statistics from [%s]", cyan(fname))

	arr, err := a.stats.Load(fname)
	if err != nil {
		return PostproResult{}, err
	}

	for _, group := range statsGroups {
		for kind, name := range models.StatNames {
			values := arr.Column(group.index, kind)
			vmin, vmax := models.NanMin(values), models.NanMax(values)
			result.Stats = append(result.Stats, [2]float64{vmin, vmax})
			if a.cfg.Verbose {
				a.logger.Infof("%s-%s: %v %v", group.prefix, name, vmin, vmax)
			}
		}
	}

	return result, nil
}
