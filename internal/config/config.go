// Package config loads the optional TOML configuration file. Keybindings
// are deliberately not configurable; the key protocol is part of the
// application's interface.
package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName        = "s_todo"
	ConfigFileName = "config.toml"
	DataFileName   = "data.json"

	// FallbackDataFileName is used when no home directory resolves.
	FallbackDataFileName = "s_todo_data.json"

	DefaultTheme = "default"
)

type Config struct {
	// DataPath overrides the location of the data file. Empty means the
	// default path under the user's config directory.
	DataPath string `toml:"data_path"`
	Theme    string `toml:"theme"`
}

func Default() Config {
	return Config{Theme: DefaultTheme}
}

// LoadOrCreate reads the config at path, writing the defaults there first
// if no file exists yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
