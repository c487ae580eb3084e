package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "_transactions.json", cfg.FileSuffix)
	assert.Equal(t, "General", cfg.DefaultCategory)
	assert.Contains(t, cfg.Categories, "Food")
	assert.Contains(t, cfg.Categories, "General")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	want := Default()
	want.DataDir = "/var/ledgers"
	want.Categories = []string{"Food", "Fun"}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolve_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolve_EnvOverrides(t *testing.T) {
	t.Setenv("TRACKEXPENSES_DATA_DIR", "/tmp/ledgers")
	t.Setenv("TRACKEXPENSES_LOG_LEVEL", "debug")

	cfg, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ledgers", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "_transactions.json", cfg.FileSuffix, "untouched fields keep defaults")
}

func TestResolve_FilePlusEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	cfg := Default()
	cfg.DataDir = "from-file"
	require.NoError(t, Save(path, cfg))

	t.Setenv("TRACKEXPENSES_DATA_DIR", "from-env")

	got, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", got.DataDir, "environment wins over the file")
}
