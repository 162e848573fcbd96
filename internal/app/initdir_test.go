package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shini4i/stack3d-examples/internal/mocks"
)

const templateContent = "input_dirpath = \"/data\"\nchannels = [\"ch0\"]\n"

func TestInitDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/templates/params_synthetic.toml", []byte(templateContent), 0o644))

	a := newTestApp(t, fs)

	dirname, err := a.InitDir("/tmp", "synthetic")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp", "pystack3d_synthetic"), dirname)

	content, err := afero.ReadFile(fs, filepath.Join(dirname, "params.toml"))
	require.NoError(t, err)
	assert.Equal(t, templateContent, string(content))
}

func TestInitDirIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/templates/params_synthetic.toml", []byte(templateContent), 0o644))
	a := newTestApp(t, fs)

	dirname, err := a.InitDir("/tmp", "synthetic")
	require.NoError(t, err)

	// a previous run left slices behind and edited the parameters
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dirname, "slice_000.tif"), []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dirname, "slice_001.tif"), []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dirname, "params.toml"), []byte("edited = true\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dirname, "notes.txt"), []byte("keep"), 0o644))

	again, err := a.InitDir("/tmp", "synthetic")
	require.NoError(t, err)
	assert.Equal(t, dirname, again)

	tifs, err := afero.Glob(fs, filepath.Join(dirname, "*.tif"))
	require.NoError(t, err)
	assert.Empty(t, tifs)

	content, err := afero.ReadFile(fs, filepath.Join(dirname, "params.toml"))
	require.NoError(t, err)
	assert.Equal(t, templateContent, string(content))

	exists, err := afero.Exists(fs, filepath.Join(dirname, "notes.txt"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInitDirMissingTemplate(t *testing.T) {
	a := newTestApp(t, afero.NewMemMapFs())

	_, err := a.InitDir("/tmp", "unknown")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInitDirGlobError(t *testing.T) {
	ctrl := gomock.NewController(t)

	fs := afero.NewMemMapFs()
	globber := mocks.NewMockGlobber(ctrl)
	globber.EXPECT().Glob(filepath.Join("/tmp", "pystack3d_synthetic", "*.tif")).Return(nil, assert.AnError)

	cfg, err := NewConfig("/templates")
	require.NoError(t, err)
	a, err := New(cfg, Dependencies{FS: fs, Globber: globber, Logger: setupTestLogger(t, "initdir-glob")})
	require.NoError(t, err)

	_, err = a.InitDir("/tmp", "synthetic")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestInitDirOnDisk(t *testing.T) {
	templates := t.TempDir()
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templates, "params_real.toml"), []byte(templateContent), 0o644))

	cfg, err := NewConfig(templates)
	require.NoError(t, err)
	a, err := New(cfg, Dependencies{Logger: setupTestLogger(t, "initdir-disk")})
	require.NoError(t, err)

	dirname := ProjectDir(base, "real")
	require.NoError(t, os.MkdirAll(dirname, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirname, "old.tif"), []byte("x"), 0o644))

	got, err := a.InitDir(base, "real")
	require.NoError(t, err)
	assert.Equal(t, dirname, got)

	_, err = os.Stat(filepath.Join(dirname, "old.tif"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dirname, "params.toml"))
}

func TestInitDirLogsStaleParamsDiff(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/templates/params_synthetic.toml", []byte(templateContent), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/pystack3d_synthetic/params.toml", []byte("edited = true\n"), 0o644))

	logger, buf := captureTestLogger(t, "initdir-diff")
	cfg, err := NewConfig("/templates", WithVersion("1.2.3"))
	require.NoError(t, err)
	a, err := New(cfg, Dependencies{FS: fs, Logger: logger})
	require.NoError(t, err)

	_, err = a.InitDir("/tmp", "synthetic")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "pystack3d_synthetic")
	assert.Contains(t, out, "with stack3d-examples 1.2.3")
	assert.Contains(t, out, "Overwriting modified")
	assert.Contains(t, out, "-edited = true")
	assert.Contains(t, out, "+input_dirpath = \"/data\"")
	assert.Regexp(t, `sha256 [0-9a-f]{64}\)`, out)
}

func TestInitDirUnchangedParamsLogNoDiff(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/templates/params_synthetic.toml", []byte(templateContent), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/pystack3d_synthetic/params.toml", []byte(templateContent), 0o644))

	logger, buf := captureTestLogger(t, "initdir-nodiff")
	cfg, err := NewConfig("/templates")
	require.NoError(t, err)
	a, err := New(cfg, Dependencies{FS: fs, Logger: logger})
	require.NoError(t, err)

	_, err = a.InitDir("/tmp", "synthetic")
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "Overwriting modified")
	assert.NotContains(t, out, "with stack3d-examples")
	assert.Contains(t, out, "sha256 ")
}

func TestInitDirOnDiskKeepsNestedImages(t *testing.T) {
	templates := t.TempDir()
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templates, "params_real.toml"), []byte(templateContent), 0o644))

	cfg, err := NewConfig(templates)
	require.NoError(t, err)
	a, err := New(cfg, Dependencies{Logger: setupTestLogger(t, "initdir-nested")})
	require.NoError(t, err)

	dirname := ProjectDir(base, "real")
	nested := filepath.Join(dirname, "process", "cropping", "ch0")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirname, "slice_000.tif"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "slice_000.tif"), []byte("x"), 0o644))

	_, err = a.InitDir(base, "real")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dirname, "slice_000.tif"))
	assert.FileExists(t, filepath.Join(nested, "slice_000.tif"))
}
