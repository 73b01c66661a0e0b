package config

import (
	"fmt"
	"strings"

	"github.com/benmax/navstack/internal/errors"
	"github.com/benmax/navstack/internal/nav"
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found. A nil return means the config is usable as-is.
func (c *Config) Validate() errors.ValidationErrors {
	var errs errors.ValidationErrors

	if c.Nav.ReplaceRootDelayMs < 0 {
		errs = append(errs, errors.ValidationError{
			Field:   "nav.replace_root_delay_ms",
			Value:   c.Nav.ReplaceRootDelayMs,
			Message: "must be zero or positive",
			Err:     errors.ErrInvalidDelay,
		})
	}

	if c.Nav.MaxDepth < 0 {
		errs = append(errs, errors.ValidationError{
			Field:   "nav.max_depth",
			Value:   c.Nav.MaxDepth,
			Message: "must be zero (unlimited) or positive",
			Err:     errors.ErrInvalidMaxDepth,
		})
	}

	if !nav.IsValidAnimation(c.Nav.DefaultAnimation) {
		errs = append(errs, errors.ValidationError{
			Field:   "nav.default_animation",
			Value:   c.Nav.DefaultAnimation,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(nav.ValidAnimations(), ", ")),
			Err:     errors.ErrUnknownAnimation,
		})
	}

	if !nav.IsValidGesture(c.Nav.DefaultGesture) {
		errs = append(errs, errors.ValidationError{
			Field:   "nav.default_gesture",
			Value:   c.Nav.DefaultGesture,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(nav.ValidGestures(), ", ")),
			Err:     errors.ErrUnknownGesture,
		})
	}

	if c.TUI.MaxVisibleEntries < 0 {
		errs = append(errs, errors.ValidationError{
			Field:   "tui.max_visible_entries",
			Value:   c.TUI.MaxVisibleEntries,
			Message: "must be zero (unlimited) or positive",
		})
	}

	level := strings.ToLower(c.Logging.Level)
	valid := false
	for _, l := range ValidLogLevels() {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, errors.ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errs
}
