package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabularforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ModelPath)
	assert.Equal(t, DefaultSeverity, cfg.Severity)
	assert.False(t, cfg.Verbose)

	opts := cfg.Format.Options()
	assert.Equal(t, 4, opts.IndentSize)
	assert.Equal(t, 100, opts.MaxLineLength)
	assert.True(t, opts.UppercaseKeywords)
	assert.False(t, opts.UseTabs)
}

func TestLoadConfigFromFile(t *testing.T) {
	cfgPath := writeConfigFile(t, `model: sales.yaml
severity: error
format:
  indent_size: 2
  use_tabs: true
  max_line_length: 80
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "sales.yaml", cfg.ModelPath)
	assert.Equal(t, "error", cfg.Severity)

	opts := cfg.Format.Options()
	assert.Equal(t, 2, opts.IndentSize)
	assert.True(t, opts.UseTabs)
	assert.Equal(t, 80, opts.MaxLineLength)
	// Untouched keys keep their defaults
	assert.True(t, opts.UppercaseKeywords)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	cfgPath := writeConfigFile(t, `severity: info
`)

	t.Setenv("TABULARFORGE_SEVERITY", "error")
	t.Setenv("TABULARFORGE_FORMAT__INDENT_SIZE", "8")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Severity, "env var should override config file")
	assert.Equal(t, 8, cfg.Format.IndentSize)
}

func TestLoadConfigFlagPrecedence(t *testing.T) {
	cfgPath := writeConfigFile(t, `severity: info
`)

	t.Setenv("TABULARFORGE_SEVERITY", "warning")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("severity", "", "minimum severity")
	require.NoError(t, flags.Set("severity", "error"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Severity, "flag value should override config file and env var")
}

func TestLoadConfigUnsetFlagFallsBackToEnv(t *testing.T) {
	cfgPath := writeConfigFile(t, `severity: info
`)

	t.Setenv("TABULARFORGE_SEVERITY", "error")

	// Flag registered but never set, so Changed is false
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("severity", "", "minimum severity")

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Severity, "env var should be used when flag is not set")
}
