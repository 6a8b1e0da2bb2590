package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/richmd/pkg/config"
)

func TestFromYAML(t *testing.T) {
	data := []byte("flavor: gfm\ncode_language: auto\n")

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	assert.Equal(t, config.CodeLanguageAuto, cfg.CodeLanguage)
}

func TestFromYAMLEmptyDocument(t *testing.T) {
	cfg, err := config.FromYAML([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Flavor, "absent fields keep zero values")
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := config.FromYAML([]byte("flavor: [unclosed"))
	assert.Error(t, err)
}

func TestToYAMLRoundTrip(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Flavor = config.FlavorGFM
	cfg.CodeLanguage = "python"

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Flavor, parsed.Flavor)
	assert.Equal(t, cfg.CodeLanguage, parsed.CodeLanguage)
}

func TestToYAMLNil(t *testing.T) {
	var cfg *config.Config
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}
