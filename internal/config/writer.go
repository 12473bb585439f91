package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the on-disk shape of Config. Durations are written as
// strings such as "33ms" so the file stays readable.
type fileConfig struct {
	TickRate string `toml:"tick_rate" comment:"Idle wait between loop phases"`
	Log      struct {
		Level string `toml:"level" comment:"debug, info, warn or error"`
		File  string `toml:"file" comment:"Log file; empty disables logging"`
	} `toml:"log"`
	Splash struct {
		MinTicks int    `toml:"min_ticks" comment:"Shortest splash run, in ticks"`
		TickRate string `toml:"tick_rate"`
	} `toml:"splash"`
	Theme struct {
		Accent     string `toml:"accent"`
		Background string `toml:"background"`
	} `toml:"theme"`
}

// Marshal encodes cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	var f fileConfig
	f.TickRate = cfg.TickRate.String()
	f.Log.Level = cfg.Log.Level
	f.Log.File = cfg.Log.File
	f.Splash.MinTicks = cfg.Splash.MinTicks
	f.Splash.TickRate = cfg.Splash.TickRate.String()
	f.Theme.Accent = cfg.Theme.Accent
	f.Theme.Background = cfg.Theme.Background

	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Write saves cfg to path as TOML, creating parent directories.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
