// Package config manages the persisted user settings: background theme,
// volume and display flags. It loads userConfig.yaml, applies defaults
// and environment overrides, validates, and provides thread-safe access.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNotInitialized indicates the Manager has not been initialized via Load().
	ErrNotInitialized = errors.New("config: manager not initialized, call Load() first")

	// ErrInvalidYAML indicates invalid YAML syntax in the settings file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidBackground indicates a background outside the known themes.
	ErrInvalidBackground = errors.New("config: invalid background, must be one of: forge, c322, highcharity")

	// ErrInvalidVolume indicates a volume outside [0, 1].
	ErrInvalidVolume = errors.New("config: invalid volume, must be between 0 and 1")

	// ErrUnknownField indicates SetField was called with an unknown key.
	ErrUnknownField = errors.New("config: unknown settings field")

	// ErrNoConfigDir indicates no configuration directory could be determined.
	ErrNoConfigDir = errors.New("config: cannot determine configuration directory")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
