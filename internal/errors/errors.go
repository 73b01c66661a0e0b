// Package errors provides centralized error definitions and error handling
// utilities for the navstack codebase. The navigation core itself is
// error-free by contract: invalid mutation requests degrade to no-ops. The
// errors defined here surface at the configuration and CLI boundary, where
// malformed input must be reported rather than absorbed.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for the configuration surface.
var (
	// ErrUnknownAnimation indicates a configured animation name that the
	// navigation core does not define.
	ErrUnknownAnimation = errors.New("unknown animation")
	// ErrUnknownGesture indicates a configured gesture capability that the
	// navigation core does not define.
	ErrUnknownGesture = errors.New("unknown gesture capability")
	// ErrInvalidMaxDepth indicates a negative stack depth limit.
	ErrInvalidMaxDepth = errors.New("invalid max depth")
	// ErrInvalidDelay indicates a negative replace-root settle delay.
	ErrInvalidDelay = errors.New("invalid replace-root delay")
)

// ValidationError represents a single configuration validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "nav.max_depth")
	Value   any    // The invalid value
	Message string // Human-readable error description
	Err     error  // Underlying sentinel, if any
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns the underlying sentinel error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
