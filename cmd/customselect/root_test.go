package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/customselect/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"config", "save", "log-file", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSavePath(t *testing.T) {
	assert.Equal(t, config.FileName, savePath(""))
	assert.Equal(t, "form.json", savePath("form.json"))
}

func TestPrintValues(t *testing.T) {
	cfg := &config.Config{Fields: []config.FieldConfig{{Name: "b"}, {Name: "a"}}}
	var out bytes.Buffer

	printValues(&out, cfg, map[string]string{"a": "1", "b": "", "z": "9", "y": "8"})

	assert.Equal(t, "b=\na=1\ny=8\nz=9\n", out.String())
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "form.log")

	logger, closeLog := newLogger(config.LoggingConfig{File: path, MaxSizeMB: 1}, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("visible", "field", "fruit")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"visible"`)
	assert.Contains(t, string(data), `"field":"fruit"`)
	assert.NotContains(t, string(data), "hidden")
}
