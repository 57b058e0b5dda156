// Package config resolves smallt configuration. Settings come from the
// global config file, then the environment, then CLI flags, lowest to
// highest precedence. Everything has a working default, so a missing
// config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTaskFile is the backing file used when nothing overrides it.
const DefaultTaskFile = "tasks.md"

// EnvTaskFile overrides the task file path from the environment.
const EnvTaskFile = "SMALLT_TASK_FILE"

// Config holds the resolved settings.
type Config struct {
	// TaskFile is the path of the markdown task file.
	TaskFile string `yaml:"task_file"`
}

// Load resolves configuration from the default config directory.
// The --file flag is applied on top by the CLI layer.
func Load() (*Config, error) {
	return LoadWithDir(DefaultConfigDir())
}

// LoadWithDir resolves configuration from an explicit config directory.
func LoadWithDir(dir string) (*Config, error) {
	cfg := &Config{TaskFile: DefaultTaskFile}

	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.TaskFile == "" {
			cfg.TaskFile = DefaultTaskFile
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv(EnvTaskFile); v != "" {
		cfg.TaskFile = v
	}
	return cfg, nil
}

// DefaultConfigDir returns the global configuration directory,
// ~/.config/smallt, falling back to a relative path when the home
// directory is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "smallt")
	}
	return filepath.Join(home, ".config", "smallt")
}
