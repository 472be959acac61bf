package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MOLVIEW_DATA_DIR", "MOLVIEW_LOG_LEVEL", "MOLVIEW_PRESET_DB"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "molview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
data_dir: /srv/molview
log_level: debug
shape:
  color: blue
representation:
  type: ball-and-stick
  color: element-symbol
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/molview", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join("/srv/molview", "presets.db"), cfg.PresetDB)
	assert.Equal(t, "blue", cfg.Shape.Color)
	assert.Equal(t, 0.1, cfg.Shape.Radius)
	assert.Equal(t, "ball-and-stick", cfg.Representation.Type)
	assert.Equal(t, "element-symbol", cfg.Representation.Color)
	require.NoError(t, cfg.Validate())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "data_dir: /from/file\nlog_level: info\n")
	t.Setenv("MOLVIEW_DATA_DIR", "/from/env")
	t.Setenv("MOLVIEW_LOG_LEVEL", "warn")
	t.Setenv("MOLVIEW_PRESET_DB", "/tmp/p.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/p.db", cfg.PresetDB)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cartoon", cfg.Representation.Type)
	assert.Equal(t, "red", cfg.Shape.Color)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "shape: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.LogLevel = "loud"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.Shape.Radius = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.DataDir = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
