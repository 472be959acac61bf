package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds CLI settings read from molview.yaml and the environment.
type Config struct {
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
	PresetDB string `yaml:"preset_db"`

	Shape struct {
		Radius float64 `yaml:"radius"`
		Color  string  `yaml:"color"`
	} `yaml:"shape"`

	Representation struct {
		Type  string `yaml:"type"`
		Color string `yaml:"color"`
		Size  string `yaml:"size"`
	} `yaml:"representation"`
}

// DefaultDataDir returns ~/.agentic-research/molview, or a relative
// directory when the home directory is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".molview"
	}
	return filepath.Join(home, ".agentic-research", "molview")
}

// DefaultPath is the config file read when none is given.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "molview.yaml")
}

// Default returns the settings used when no file or variable overrides them.
func Default() *Config {
	cfg := &Config{
		DataDir:  DefaultDataDir(),
		LogLevel: "info",
	}
	cfg.Shape.Radius = 0.1
	cfg.Shape.Color = "red"
	cfg.Representation.Type = "cartoon"
	return cfg
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A .env file in the working directory is loaded
// first. With an empty path the default file is used if it exists.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read config: %w", err)
	}

	if v := os.Getenv("MOLVIEW_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("MOLVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MOLVIEW_PRESET_DB"); v != "" {
		cfg.PresetDB = v
	}
	if cfg.PresetDB == "" {
		cfg.PresetDB = filepath.Join(cfg.DataDir, "presets.db")
	}
	return cfg, nil
}

// Validate reports the first setting the CLI cannot run with.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Shape.Radius <= 0 {
		return fmt.Errorf("%w: shape.radius must be positive, got %g", ErrInvalid, c.Shape.Radius)
	}
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is empty", ErrInvalid)
	}
	return nil
}

// Level maps log_level onto a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
}
