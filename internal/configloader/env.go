package configloader

import (
	"fmt"
	"os"

	"github.com/yaklabco/richmd/pkg/config"
)

// envVarPrefix is the prefix for all richmd environment variables.
const envVarPrefix = "RICHMD_"

// envSetters maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envSetters = map[string]func(cfg *config.Config, value string) error{
	"FLAVOR": func(cfg *config.Config, value string) error {
		cfg.Flavor = config.Flavor(value)
		return nil
	},
	"CODE_LANGUAGE": func(cfg *config.Config, value string) error {
		cfg.CodeLanguage = value
		return nil
	},
	"FORMAT": func(cfg *config.Config, value string) error {
		cfg.Format = config.OutputFormat(value)
		return nil
	},
	"COLOR": func(cfg *config.Config, value string) error {
		mode := config.ColorMode(value)
		if !mode.IsValid() {
			return fmt.Errorf("invalid color mode %q (expected auto/always/never)", value)
		}
		cfg.Color = mode
		return nil
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with RICHMD_ (e.g., RICHMD_FLAVOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, set := range envSetters {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := set(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", envVar, err)
		}
	}

	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"RICHMD_FLAVOR":        "Markdown flavor: commonmark or gfm",
		"RICHMD_CODE_LANGUAGE": "Default language for untagged code blocks (or 'auto')",
		"RICHMD_FORMAT":        "Output format: text, ansi, json, or spans",
		"RICHMD_COLOR":         "Colorize ANSI output: auto, always, or never",
	}
}
