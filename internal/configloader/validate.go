package configloader

import (
	"fmt"

	"github.com/yaklabco/richmd/pkg/config"
)

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// Validate checks the final merged configuration for invalid values.
// It returns the first error encountered, or nil.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Message: "configuration is nil"}
	}

	if !cfg.Flavor.IsValid() {
		return &ValidationError{
			Field:   "flavor",
			Value:   string(cfg.Flavor),
			Message: "expected commonmark or gfm",
		}
	}

	if !cfg.Format.IsValid() {
		return &ValidationError{
			Field:   "format",
			Value:   string(cfg.Format),
			Message: "expected text, ansi, json, or spans",
		}
	}

	if !cfg.Color.IsValid() {
		return &ValidationError{
			Field:   "color",
			Value:   string(cfg.Color),
			Message: "expected auto, always, or never",
		}
	}

	return nil
}
