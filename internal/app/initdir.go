package app

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/codingsince1985/checksum"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	projectDirPrefix = "pystack3d_"
	paramsFileName   = "params.toml"
	tifGlob          = "*.tif"
)

// ProjectDir returns the project directory used for caseID under dirpath.
func ProjectDir(dirpath, caseID string) string {
	return filepath.Join(dirpath, projectDirPrefix+caseID)
}

// TemplatePath returns the parameter template shipped for caseID.
func (a *App) TemplatePath(caseID string) string {
	return filepath.Join(a.cfg.TemplateDir, fmt.Sprintf("params_%s.toml", caseID))
}

// InitDir prepares the project directory of caseID under dirpath: the
// directory is created when missing, emptied of .tif files left over by a
// previous run and given a fresh copy of the case parameter template.
func (a *App) InitDir(dirpath, caseID string) (string, error) {
	dirname := ProjectDir(dirpath, caseID)
	if a.cfg.Version != "" {
		a.logger.Infof("===> Initializing project directory [%s] with stack3d-examples %s", cyan(dirname), a.cfg.Version)
	} else {
		a.logger.Infof("===> Initializing project directory [%s]", cyan(dirname))
	}

	if err := a.fs.MkdirAll(dirname, 0o755); err != nil {
		return "", errors.Wrapf(err, "unable to create %s", dirname)
	}

	// the user temp dir is shared between runs
	stale, err := a.globber.Glob(filepath.Join(dirname, tifGlob))
	if err != nil {
		return "", err
	}
	for _, file := range stale {
		a.logger.Debugf("▶ Removing %s", file)
		if err := a.fs.Remove(file); err != nil {
			return "", errors.Wrapf(err, "unable to remove %s", file)
		}
	}

	if err := a.copyParams(a.TemplatePath(caseID), filepath.Join(dirname, paramsFileName)); err != nil {
		return "", err
	}

	return dirname, nil
}

// copyParams overwrites dst with the template at src.
func (a *App) copyParams(src, dst string) error {
	template, err := afero.ReadFile(a.fs, src)
	if err != nil {
		return errors.Wrapf(err, "unable to read parameter template %s", src)
	}

	previous, err := afero.ReadFile(a.fs, dst)
	if err == nil && !bytes.Equal(previous, template) {
		a.logger.Warningf("▶ Overwriting modified %s", yellow(dst))
		edits := myers.ComputeEdits(span.URIFromPath(dst), string(previous), string(template))
		a.logger.Debug(fmt.Sprint(gotextdiff.ToUnified(dst, src, string(previous), edits)))
	}

	if err := afero.WriteFile(a.fs, dst, template, 0o644); err != nil {
		return errors.Wrapf(err, "unable to write %s", dst)
	}

	sum, err := checksum.SHA256sumReader(bytes.NewReader(template))
	if err != nil {
		return err
	}
	a.logger.Debugf("▶ Copied %s to %s (sha256 %s)", src, dst, sum)

	return nil
}
