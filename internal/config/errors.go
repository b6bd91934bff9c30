package config

import (
	"errors"
	"fmt"

	"github.com/dshills/gridsketch/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrNotFound indicates an explicitly requested config file is missing.
	ErrNotFound = errors.New("config file not found")

	// ErrInvalidValue indicates a setting holds a value outside its domain.
	ErrInvalidValue = errors.New("invalid config value")

	// ErrTypeMismatch indicates a setting has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// Is matches ErrInvalidValue.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidValue
}

// TypeError is returned when a setting cannot be read as the expected
// type.
type TypeError struct {
	// Path is the setting path.
	Path string
	// Expected is the expected type name.
	Expected string
	// Actual is the actual type name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
