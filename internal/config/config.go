package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dshills/tickloop/internal/renderer/core"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "TICKLOOP"

// Default values.
const (
	DefaultTickRate       = 33 * time.Millisecond
	DefaultLogLevel       = "info"
	DefaultSplashMinTicks = 20
	DefaultSplashTickRate = 100 * time.Millisecond
	DefaultAccent         = "#5fafff"
	DefaultBackground     = "#1c1c1c"
)

// Config holds all tickloop settings.
type Config struct {
	// TickRate is the idle wait between loop phases of the main demo.
	TickRate time.Duration `mapstructure:"tick_rate"`

	Log    LogConfig    `mapstructure:"log"`
	Splash SplashConfig `mapstructure:"splash"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// LogConfig configures the log file. Logs never go to the terminal.
type LogConfig struct {
	Level string `mapstructure:"level"`
	// File is the log destination. Empty discards logs.
	File string `mapstructure:"file"`
}

// SplashConfig configures the splash screen run.
type SplashConfig struct {
	MinTicks int           `mapstructure:"min_ticks"`
	TickRate time.Duration `mapstructure:"tick_rate"`
}

// ThemeConfig holds the demo colors as hex strings.
type ThemeConfig struct {
	Accent     string `mapstructure:"accent"`
	Background string `mapstructure:"background"`
}

// AccentColor returns the parsed accent color, or the default on error.
func (t ThemeConfig) AccentColor() core.Color {
	return parseColor(t.Accent, DefaultAccent)
}

// BackgroundColor returns the parsed background color, or the default on error.
func (t ThemeConfig) BackgroundColor() core.Color {
	return parseColor(t.Background, DefaultBackground)
}

func parseColor(hex, fallback string) core.Color {
	if c, err := core.ColorFromHex(hex); err == nil {
		return c
	}
	return core.MustHex(fallback)
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TickRate: DefaultTickRate,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Splash: SplashConfig{
			MinTicks: DefaultSplashMinTicks,
			TickRate: DefaultSplashTickRate,
		},
		Theme: ThemeConfig{
			Accent:     DefaultAccent,
			Background: DefaultBackground,
		},
	}
}

// DefaultPath returns the user config file location,
// $XDG_CONFIG_HOME/tickloop/config.toml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".tickloop", "config.toml")
	}
	return filepath.Join(dir, "tickloop", "config.toml")
}

// flagKeys maps command-line flag names to setting keys.
var flagKeys = map[string]string{
	"tick-rate": "tick_rate",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load reads settings from defaults, the TOML file at path, the environment
// and flags, in increasing priority. A missing file is not an error; flags
// may be nil. Only flags the user actually set override other layers.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := readFile(v, path); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func readFile(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("reading config file %s: is a directory", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// setDefaults registers every key so environment variables can override
// keys absent from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("tick_rate", d.TickRate)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("splash.min_ticks", d.Splash.MinTicks)
	v.SetDefault("splash.tick_rate", d.Splash.TickRate)
	v.SetDefault("theme.accent", d.Theme.Accent)
	v.SetDefault("theme.background", d.Theme.Background)
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return &ValidationError{Key: "tick_rate", Message: "must be positive"}
	}
	if c.Splash.TickRate <= 0 {
		return &ValidationError{Key: "splash.tick_rate", Message: "must be positive"}
	}
	if c.Splash.MinTicks < 0 {
		return &ValidationError{Key: "splash.min_ticks", Message: "must not be negative"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return &ValidationError{Key: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	if _, err := core.ColorFromHex(c.Theme.Accent); err != nil {
		return &ValidationError{Key: "theme.accent", Message: err.Error()}
	}
	if _, err := core.ColorFromHex(c.Theme.Background); err != nil {
		return &ValidationError{Key: "theme.background", Message: err.Error()}
	}
	return nil
}
