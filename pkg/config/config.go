// Package config defines core configuration types for richmd.
// These types are pure data structures with no dependency on the
// loader machinery that populates them.
package config

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is recognized.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the output format for rendered documents.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatANSI  OutputFormat = "ansi"
	FormatJSON  OutputFormat = "json"
	FormatSpans OutputFormat = "spans"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatANSI, FormatJSON, FormatSpans:
		return true
	default:
		return false
	}
}

// ColorMode controls whether ANSI output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is recognized.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// CodeLanguageAuto asks richmd to guess the language of code blocks that
// carry no fence tag instead of leaving them unhighlighted.
const CodeLanguageAuto = "auto"

// Config is the root configuration structure for richmd.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `mapstructure:"flavor" yaml:"flavor"`

	// CodeLanguage is the default language for untagged code blocks.
	// Empty leaves them unhighlighted; "auto" enables detection.
	CodeLanguage string `mapstructure:"code_language" yaml:"code_language"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Color controls colorization of ANSI output.
	Color ColorMode `mapstructure:"-" yaml:"-"`

	// Output is the destination path, empty for stdout.
	Output string `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:       FlavorCommonMark,
		CodeLanguage: "",
		Format:       FormatText,
		Color:        ColorAuto,
	}
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
