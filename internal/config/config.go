// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/planning/internal/dateutil"
	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
)

// Config holds the application configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig holds how dates and pills are rendered.
type DisplayConfig struct {
	Locale       string `toml:"locale"`        // BCP 47 tag, e.g. "en-US"
	Timezone     string `toml:"timezone"`      // IANA name or "Local"
	DefaultScale string `toml:"default_scale"` // "day", "week", "month", "year"
	FirstWeekday string `toml:"first_weekday"` // weekday name, empty means the locale's
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Path  string `toml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Locale:       "en-US",
			Timezone:     "Local",
			DefaultScale: string(pill.ScaleWeek),
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Debug: false,
			Path:  "planning-debug.log",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "planning.db"
	}
	return filepath.Join(home, ".local", "share", "planning", "planning.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "planning", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PLANNING_LOCALE"); v != "" {
		cfg.Display.Locale = v
	}
	if v := os.Getenv("PLANNING_TIMEZONE"); v != "" {
		cfg.Display.Timezone = v
	}
	if v := os.Getenv("PLANNING_DEFAULT_SCALE"); v != "" {
		cfg.Display.DefaultScale = v
	}
	if v := os.Getenv("PLANNING_FIRST_WEEKDAY"); v != "" {
		cfg.Display.FirstWeekday = v
	}
	if v := os.Getenv("PLANNING_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("PLANNING_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("PLANNING_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PLANNING_DEBUG: %w", err)
		}
		cfg.Log.Debug = debug
	}
	if v := os.Getenv("PLANNING_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := pill.ParseScale(c.Display.DefaultScale); err != nil {
		return fmt.Errorf("default_scale: %w", err)
	}
	if _, err := loadLocation(c.Display.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if c.Display.Locale != "" && !locale.Supported(c.Display.Locale) {
		return fmt.Errorf("invalid locale: %q", c.Display.Locale)
	}
	if c.Display.FirstWeekday != "" {
		if _, ok := dateutil.ParseWeekday(c.Display.FirstWeekday); !ok {
			return fmt.Errorf("first_weekday: unknown weekday %q", c.Display.FirstWeekday)
		}
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.Log.Debug && c.Log.Path == "" {
		return errors.New("log path must be set when debug is enabled")
	}
	return nil
}

// Scale returns the configured default scale, falling back to week.
func (c *Config) Scale() pill.Scale {
	s, err := pill.ParseScale(c.Display.DefaultScale)
	if err != nil {
		return pill.ScaleWeek
	}
	return s
}

// Location returns the configured time zone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	loc, err := loadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Locale returns the locale matching the configured tag, with the first
// weekday overridden when one is set.
func (c *Config) Locale() locale.Locale {
	l := locale.Lookup(c.Display.Locale)
	if wd, ok := dateutil.ParseWeekday(c.Display.FirstWeekday); ok {
		l.FirstWeekday = wd
	}
	return l
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
