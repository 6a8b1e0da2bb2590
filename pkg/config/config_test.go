package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/richmd/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Empty(t, cfg.CodeLanguage)
}

func TestFlavorIsValid(t *testing.T) {
	assert.True(t, config.FlavorCommonMark.IsValid())
	assert.True(t, config.FlavorGFM.IsValid())
	assert.False(t, config.Flavor("markdown-extra").IsValid())
	assert.False(t, config.Flavor("").IsValid())
}

func TestOutputFormatIsValid(t *testing.T) {
	for _, f := range []config.OutputFormat{
		config.FormatText, config.FormatANSI, config.FormatJSON, config.FormatSpans,
	} {
		assert.True(t, f.IsValid(), "format %q", f)
	}
	assert.False(t, config.OutputFormat("html").IsValid())
}

func TestColorModeIsValid(t *testing.T) {
	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorAlways.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}

func TestClone(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Flavor = config.FlavorGFM
	cfg.CodeLanguage = "go"

	clone := cfg.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, cfg, clone)

	clone.Flavor = config.FlavorCommonMark
	assert.Equal(t, config.FlavorGFM, cfg.Flavor, "clone must not alias the original")
}

func TestCloneNil(t *testing.T) {
	var cfg *config.Config
	assert.Nil(t, cfg.Clone())
}
