package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/richmd/pkg/config"
)

// baseOpts isolates tests from machine-level config and environment.
func baseOpts(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeProjectConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".richmd.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	result, err := Load(context.Background(), baseOpts(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, config.FlavorCommonMark, result.Config.Flavor)
	assert.Equal(t, config.FormatText, result.Config.Format)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectConfig(t, dir, "flavor: gfm\ncode_language: auto\n")

	result, err := Load(context.Background(), baseOpts(dir))
	require.NoError(t, err)

	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.Equal(t, config.CodeLanguageAuto, result.Config.CodeLanguage)
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoadProjectConfigFoundUpward(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "flavor: gfm\n")
	nested := filepath.Join(dir, "docs", "guides")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(context.Background(), baseOpts(nested))
	require.NoError(t, err)
	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
}

func TestFindProjectConfigStopsAtVCSRoot(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "flavor: gfm\n")

	// A VCS root between the config and the start dir hides the config.
	repo := filepath.Join(dir, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	path, err := FindProjectConfig(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("flavor: gfm\n"), 0o644))

	opts := baseOpts(t.TempDir())
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.Equal(t, explicit, result.Paths.Explicit)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	opts := baseOpts(t.TempDir())
	opts.ExplicitPath = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(context.Background(), opts)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "flavor: commonmark\ncode_language: go\n")

	t.Setenv("RICHMD_FLAVOR", "gfm")

	opts := baseOpts(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.Equal(t, "go", result.Config.CodeLanguage, "unset env vars must not clobber file values")
}

func TestLoadEnvColorOverridesDefault(t *testing.T) {
	t.Setenv("RICHMD_COLOR", "never")

	opts := baseOpts(t.TempDir())
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, config.ColorNever, result.Config.Color,
		"a zero CLI overlay must let the environment through")
}

func TestLoadCLIConfigWinsOverEnv(t *testing.T) {
	t.Setenv("RICHMD_FORMAT", "json")

	opts := baseOpts(t.TempDir())
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{Format: config.FormatSpans}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, config.FormatSpans, result.Config.Format)
}

func TestLoadRejectsInvalidFlavor(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "flavor: textile\n")

	_, err := Load(context.Background(), baseOpts(dir))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "flavor", verr.Field)
}

func TestLoadFromEnvInvalidColor(t *testing.T) {
	t.Setenv("RICHMD_COLOR", "rainbow")

	cfg := config.NewConfig()
	err := LoadFromEnv(cfg)
	assert.Error(t, err)
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, baseOpts(t.TempDir()))
	assert.Error(t, err)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := config.NewConfig()
	overlay := &config.Config{Flavor: config.FlavorGFM}

	merged := merge(base, overlay)
	assert.Equal(t, config.FlavorGFM, merged.Flavor)
	assert.Equal(t, config.FlavorCommonMark, base.Flavor)
}
