package config

// Configuration loading and validation for breaktimer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JeffryGonzalez/timer/internal/deadline"
	"github.com/JeffryGonzalez/timer/internal/errors"
)

// ShortcutConfig is the wall-clock shortcut offered alongside the presets,
// e.g. "until 5:00 PM Eastern".
type ShortcutConfig struct {
	Hour   int    `yaml:"hour"`
	Minute int    `yaml:"minute"`
	Zone   string `yaml:"zone"`
}

// LoggingConfig controls the headless run commands' output.
type LoggingConfig struct {
	Level   string `yaml:"level,omitempty"`    // "silent","error","info","verbose","debug"
	LogFile string `yaml:"log_file,omitempty"` // optional file sink
}

// Config is the breaktimer configuration.
type Config struct {
	PresetsMinutes []int          `yaml:"presets_minutes"`
	TickIntervalMs int            `yaml:"tick_interval_ms"`
	AutoStop       bool           `yaml:"auto_stop"`
	Shortcut       ShortcutConfig `yaml:"shortcut"`
	Zones          []string       `yaml:"zones,omitempty"`
	Logging        LoggingConfig  `yaml:"logging,omitempty"`
}

// TickInterval returns the tick cadence as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// DisplayZones returns the configured zones as label/ID pairs, falling back
// to the label-less ID for zones outside the built-in U.S. table.
func (c *Config) DisplayZones() []deadline.Zone {
	zones := make([]deadline.Zone, 0, len(c.Zones))
	for _, id := range c.Zones {
		if z := deadline.FindZone(deadline.USZones, id); z != nil {
			zones = append(zones, *z)
			continue
		}
		zones = append(zones, deadline.Zone{Label: id, ID: id})
	}
	return zones
}

// CreateDefaultConfig returns the built-in defaults.
func CreateDefaultConfig() *Config {
	zones := make([]string, len(deadline.USZones))
	for i, z := range deadline.USZones {
		zones[i] = z.ID
	}
	return &Config{
		PresetsMinutes: []int{5, 10, 15, 20, 30},
		TickIntervalMs: 250,
		AutoStop:       false,
		Shortcut:       ShortcutConfig{Hour: 17, Minute: 0, Zone: "America/New_York"},
		Zones:          zones,
		Logging:        LoggingConfig{Level: "info"},
	}
}

// DefaultPath returns the conventional config location under the user's
// config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "breaktimer.yaml"
	}
	return filepath.Join(dir, "breaktimer", "config.yaml")
}

// WriteDefaultConfig writes the default configuration to path.
func WriteDefaultConfig(path string) error {
	cfg := CreateDefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist and autoCreate is true, it will create a default config file
func LoadConfig(path string, autoCreate bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if autoCreate {
				if err := WriteDefaultConfig(path); err != nil {
					return nil, fmt.Errorf("create default config: %w", err)
				}
				data, err = os.ReadFile(path)
				if err != nil {
					return nil, errors.WrapConfigError(
						fmt.Errorf("read created config file: %w", err),
						path,
					)
				}
			} else {
				return nil, errors.WrapConfigError(
					fmt.Errorf("config file not found: %s", path),
					path,
				)
			}
		} else {
			return nil, errors.WrapConfigError(
				fmt.Errorf("read config file: %w", err),
				path,
			)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, errors.WrapConfigError(err, path)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := CreateDefaultConfig()
	if len(cfg.PresetsMinutes) == 0 {
		cfg.PresetsMinutes = def.PresetsMinutes
	}
	if cfg.TickIntervalMs == 0 {
		cfg.TickIntervalMs = def.TickIntervalMs
	}
	if cfg.Shortcut.Zone == "" {
		cfg.Shortcut = def.Shortcut
	}
	if len(cfg.Zones) == 0 {
		cfg.Zones = def.Zones
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}

// ValidateConfig checks a loaded configuration for values the timer cannot
// run with.
func ValidateConfig(cfg *Config) error {
	for _, m := range cfg.PresetsMinutes {
		if m <= 0 {
			return fmt.Errorf("presets_minutes: %d is not a positive minute count", m)
		}
	}
	if cfg.TickIntervalMs < 50 || cfg.TickIntervalMs > 1000 {
		return fmt.Errorf("tick_interval_ms: %d out of range (50-1000)", cfg.TickIntervalMs)
	}
	if cfg.Shortcut.Hour < 0 || cfg.Shortcut.Hour > 23 {
		return fmt.Errorf("shortcut.hour: %d out of range (0-23)", cfg.Shortcut.Hour)
	}
	if cfg.Shortcut.Minute < 0 || cfg.Shortcut.Minute > 59 {
		return fmt.Errorf("shortcut.minute: %d out of range (0-59)", cfg.Shortcut.Minute)
	}
	if _, err := time.LoadLocation(cfg.Shortcut.Zone); err != nil {
		return fmt.Errorf("shortcut.zone: %w", err)
	}
	return nil
}
