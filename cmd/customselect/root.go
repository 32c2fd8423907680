package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/customselect/internal/app"
	"github.com/riordanpawley/customselect/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

type options struct {
	configPath string
	save       bool
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "customselect",
		Short:         "Fill in a form of dropdowns in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a form config (default: "+config.FileName+" or package.json in the current directory)")
	flags.BoolVar(&opts.save, "save", false, "write the final selections back to the config file")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	return cmd
}

func run(out io.Writer, opts *options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logger, closeLog := newLogger(cfg.Logging, cfg.LogLevel())
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("starting form", "title", cfg.Title, "fields", len(cfg.Fields))

	program := tea.NewProgram(
		app.New(cfg, logger),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	values := final.(app.Model).Values()
	printValues(out, cfg, values)

	if opts.save {
		path := savePath(opts.configPath)
		cfg.ApplyValues(values)
		if err := config.SaveConfig(cfg, path); err != nil {
			return err
		}
		logger.Info("saved selections", "path", path)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadConfigFile(path)
}

func savePath(path string) string {
	if path == "" {
		return config.FileName
	}
	return path
}

// newLogger writes JSON logs to a rotating file; the terminal belongs to the UI
func newLogger(cfg config.LoggingConfig, level slog.Level) (*slog.Logger, func()) {
	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(handler), func() { _ = file.Close() }
}

// printValues writes name=value lines in field order
func printValues(out io.Writer, cfg *config.Config, values map[string]string) {
	names := make([]string, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		names = append(names, f.Name)
	}
	// Fields missing from the config still get printed, after the known ones
	var extra []string
	for name := range values {
		if !slices.Contains(names, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)

	for _, name := range append(names, extra...) {
		fmt.Fprintf(out, "%s=%s\n", name, values[name])
	}
}
