package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/riordanpawley/customselect/internal/domain"
)

// CurrentVersion is the config schema version written by SaveConfig
const CurrentVersion = 1

// FileName is the project-local config file looked up by LoadConfig
const FileName = ".customselect.json"

// Config represents the full form configuration
type Config struct {
	Version int           `json:"version"`
	Title   string        `json:"title"`
	Logging LoggingConfig `json:"logging"`
	Fields  []FieldConfig `json:"fields"`
}

// LoggingConfig contains log file settings
type LoggingConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSizeMB  int    `json:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays"`
}

// FieldConfig describes one dropdown on the form
type FieldConfig struct {
	Name        string           `json:"name"`
	Label       string           `json:"label,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Value       string           `json:"value,omitempty"`
	Options     domain.Options   `json:"options"`
	Appearance  AppearanceConfig `json:"appearance"`
}

// AppearanceConfig holds per-field trigger theming. Empty values keep the
// component defaults.
type AppearanceConfig struct {
	TextSize               int    `json:"textSize,omitempty"`
	TriggerTextColor       string `json:"triggerTextColor,omitempty"`
	TriggerBorderColor     string `json:"triggerBorderColor,omitempty"`
	TriggerBackgroundColor string `json:"triggerBackgroundColor,omitempty"`
	TrailingIcon           string `json:"trailingIcon,omitempty"`
	MaxVisibleRows         int    `json:"maxVisibleRows,omitempty"`
}

// DefaultConfig returns a Config with a small demo form
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Version: CurrentVersion,
		Title:   "Preferences",
		Logging: LoggingConfig{
			File:       filepath.Join(homeDir, ".customselect", "customselect.log"),
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Fields: []FieldConfig{
			{
				Name:        "fruit",
				Label:       "Favourite fruit",
				Placeholder: "Pick a fruit",
				Options: domain.Options{
					{Value: "apple", Label: "Apple"},
					{Value: "banana", Label: "Banana"},
					{Value: "cherry", Label: "Cherry"},
				},
				Appearance: AppearanceConfig{TrailingIcon: "▾"},
			},
			{
				Name:  "size",
				Label: "T-shirt size",
				Value: "m",
				Options: domain.Options{
					{Value: "xs", Label: "Extra small"},
					{Value: "s", Label: "Small"},
					{Value: "m", Label: "Medium"},
					{Value: "l", Label: "Large"},
					{Value: "xl", Label: "Extra large"},
					{Value: "xxl", Label: "Double extra large"},
					{Value: "xxxl", Label: "Triple extra large"},
					{Value: "4xl", Label: "4XL"},
					{Value: "5xl", Label: "5XL"},
				},
				Appearance: AppearanceConfig{
					TextSize:           20,
					TriggerBorderColor: "#8aadf4",
					TrailingIcon:       "▾",
				},
			},
			{
				Name:  "contact",
				Label: "Preferred contact",
				Options: domain.Options{
					{Value: "email", Label: "Email"},
					{Value: "phone", Label: "Phone"},
				},
			},
		},
	}
}

// LoadConfig loads configuration from project path with priority:
// 1. .customselect.json in project root
// 2. package.json "customselect" key
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	if cfg, err := LoadConfigFile(filepath.Join(projectPath, FileName)); err == nil {
		return cfg, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	packagePath := filepath.Join(projectPath, "package.json")
	if data, err := os.ReadFile(packagePath); err == nil {
		var packageJSON struct {
			CustomSelect json.RawMessage `json:"customselect"`
		}
		if err := json.Unmarshal(data, &packageJSON); err == nil && packageJSON.CustomSelect != nil {
			cfg, err := parse(packageJSON.CustomSelect)
			if err != nil {
				return nil, fmt.Errorf("failed to parse package.json customselect config: %w", err)
			}
			return cfg, nil
		}
	}

	return DefaultConfig(), nil
}

// LoadConfigFile loads a config from an explicit path. A missing file is
// reported with an error wrapping os.ErrNotExist.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &domain.ConfigError{Op: "load", Err: err}
	}
	if cfg.Version > CurrentVersion {
		return nil, &domain.ConfigError{
			Op:  "load",
			Err: fmt.Errorf("%w: version %d is newer than supported version %d", domain.ErrInvalidConfig, cfg.Version, CurrentVersion),
		}
	}
	MergeWithDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	cfg.Version = CurrentVersion
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Title == "" {
		cfg.Title = defaults.Title
	}

	// Merge Logging config
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaults.Logging.File
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = defaults.Logging.MaxSizeMB
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = defaults.Logging.MaxBackups
	}
	if cfg.Logging.MaxAgeDays == 0 {
		cfg.Logging.MaxAgeDays = defaults.Logging.MaxAgeDays
	}

	// A config without fields gets the demo form
	if cfg.Fields == nil {
		cfg.Fields = defaults.Fields
	}

	return cfg
}

// Validate checks that every field has a unique, non-empty name.
// Duplicate option values are allowed; the first match wins on display.
func Validate(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Fields))
	for i, f := range cfg.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return &domain.ConfigError{
				Op:  "validate",
				Err: fmt.Errorf("%w: field %d has no name", domain.ErrInvalidConfig, i),
			}
		}
		if seen[f.Name] {
			return &domain.ConfigError{
				Op:    "validate",
				Field: f.Name,
				Err:   fmt.Errorf("%w: duplicate field name", domain.ErrInvalidConfig),
			}
		}
		seen[f.Name] = true
	}
	return nil
}

// Field returns the field with the given name
func (c *Config) Field(name string) (*FieldConfig, error) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i], nil
		}
	}
	return nil, &domain.ConfigError{Op: "lookup", Field: name, Err: domain.ErrNotFound}
}

// ApplyValues copies selections back into the matching fields.
// Names without a field are ignored.
func (c *Config) ApplyValues(values map[string]string) {
	for i := range c.Fields {
		if v, ok := values[c.Fields[i].Name]; ok {
			c.Fields[i].Value = v
		}
	}
}

// LogLevel parses Logging.Level, defaulting to info
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
