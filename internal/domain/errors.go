package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrNotFound      = errors.New("not found")
)

// ConfigError describes a problem with the form configuration
type ConfigError struct {
	Op    string // Operation: "load", "validate", "save"
	Field string // Optional: offending field name
	Err   error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s [%s]: %v", e.Op, e.Field, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("config %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("config %s failed", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
