package configloader

import "github.com/yaklabco/richmd/pkg/config"

// merge layers overlay on top of base. Zero-valued overlay fields leave
// the base value in place; everything else wins. Neither argument is
// mutated.
func merge(base, overlay *config.Config) *config.Config {
	if base == nil {
		return overlay.Clone()
	}
	if overlay == nil {
		return base.Clone()
	}

	merged := base.Clone()

	if overlay.Flavor != "" {
		merged.Flavor = overlay.Flavor
	}
	if overlay.CodeLanguage != "" {
		merged.CodeLanguage = overlay.CodeLanguage
	}
	if overlay.Format != "" {
		merged.Format = overlay.Format
	}
	if overlay.Color != "" {
		merged.Color = overlay.Color
	}
	if overlay.Output != "" {
		merged.Output = overlay.Output
	}

	return merged
}
