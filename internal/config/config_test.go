package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/customselect/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "Preferences", cfg.Title)

	// Test logging defaults
	assert.NotEmpty(t, cfg.Logging.File)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Logging.MaxSizeMB)
	assert.Equal(t, 3, cfg.Logging.MaxBackups)
	assert.Equal(t, 28, cfg.Logging.MaxAgeDays)

	// Test demo fields
	require.Len(t, cfg.Fields, 3)
	assert.Equal(t, "fruit", cfg.Fields[0].Name)
	assert.Equal(t, "m", cfg.Fields[1].Value)
	assert.NoError(t, Validate(cfg))
}

func TestLoadConfigFromProjectFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `{
  "title": "Shipping",
  "logging": {
    "level": "debug"
  },
  "fields": [
    {
      "name": "carrier",
      "value": "ups",
      "options": [
        {"value": "ups", "label": "UPS"},
        {"value": "dhl", "label": "DHL"}
      ],
      "appearance": {
        "textSize": 24,
        "triggerTextColor": "#ff0000"
      }
    }
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	// Check custom values
	assert.Equal(t, "Shipping", cfg.Title)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.Len(t, cfg.Fields, 1)
	assert.Equal(t, "carrier", cfg.Fields[0].Name)
	assert.Equal(t, "DHL", cfg.Fields[0].Options.LabelFor("dhl", ""))
	assert.Equal(t, 24, cfg.Fields[0].Appearance.TextSize)
	assert.Equal(t, "#ff0000", cfg.Fields[0].Appearance.TriggerTextColor)

	// Check defaults are filled in
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 5, cfg.Logging.MaxSizeMB)
	assert.NotEmpty(t, cfg.Logging.File)
}

func TestLoadConfigFromPackageJSON(t *testing.T) {
	tmpDir := t.TempDir()

	packageContent := `{
  "name": "my-app",
  "version": "1.0.0",
  "customselect": {
    "title": "From package.json"
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "package.json"), []byte(packageContent), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "From package.json", cfg.Title)
	assert.Len(t, cfg.Fields, len(DefaultConfig().Fields), "missing fields fall back to the demo form")
}

func TestLoadConfigPriority(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(`{"title": "project"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "package.json"), []byte(`{"customselect": {"title": "package"}}`), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "project", cfg.Title)
}

func TestLoadConfigNoFiles(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Title, cfg.Title)
	assert.Equal(t, defaults.Fields, cfg.Fields)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(`{"title": `), 0644))

	_, err := LoadConfig(tmpDir)
	require.Error(t, err)

	var cfgErr *domain.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "load", cfgErr.Op)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadConfigNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99}`), 0644))

	_, err := LoadConfigFile(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		fields    []FieldConfig
		wantErr   bool
		wantField string
	}{
		{
			name:   "unique names",
			fields: []FieldConfig{{Name: "a"}, {Name: "b"}},
		},
		{
			name:    "missing name",
			fields:  []FieldConfig{{Name: "a"}, {Name: "  "}},
			wantErr: true,
		},
		{
			name:      "duplicate name",
			fields:    []FieldConfig{{Name: "a"}, {Name: "a"}},
			wantErr:   true,
			wantField: "a",
		},
		{
			name: "duplicate option values are allowed",
			fields: []FieldConfig{{
				Name:    "a",
				Options: domain.Options{{Value: "x", Label: "1"}, {Value: "x", Label: "2"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&Config{Fields: tt.fields})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			var cfgErr *domain.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "form.json")

	cfg := DefaultConfig()
	cfg.ApplyValues(map[string]string{"fruit": "cherry", "unknown": "x"})
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfigFile(path)
	require.NoError(t, err)

	field, err := loaded.Field("fruit")
	require.NoError(t, err)
	assert.Equal(t, "cherry", field.Value)

	size, err := loaded.Field("size")
	require.NoError(t, err)
	assert.Equal(t, "m", size.Value, "untouched fields keep their value")
}

func TestFieldNotFound(t *testing.T) {
	_, err := DefaultConfig().Field("missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Logging: LoggingConfig{Level: tt.level}}
			assert.Equal(t, tt.want, cfg.LogLevel())
		})
	}
}
