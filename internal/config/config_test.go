package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultRulesDir, cfg.RulesDir)
	assert.Equal(t, DefaultExtension, cfg.Extension)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Fix)
	assert.Empty(t, cfg.Schema)
	assert.Empty(t, cfg.Disable)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`rules_dir: docs/rules
strict: true
disable:
  - GL01
  - TG01
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "docs/rules", cfg.RulesDir)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"GL01", "TG01"}, cfg.Disable)
	assert.Equal(t, DefaultExtension, cfg.Extension, "unset keys keep defaults")
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules_dir: from-file\n"), 0o644))

	t.Setenv("RULELINT_RULES_DIR", "from-env")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.RulesDir)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	t.Setenv("RULELINT_RULES_DIR", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("rules-dir", DefaultRulesDir, "")
	flags.Bool("strict", false, "")
	require.NoError(t, flags.Set("rules-dir", "from-flag"))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.RulesDir)
	assert.False(t, cfg.Strict, "unchanged flags must not override lower layers")
}

func TestLoad_UnchangedFlagIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extension: .mdc\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("extension", DefaultExtension, "")

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, ".mdc", cfg.Extension, "flag default must not clobber the file value")
}

func TestFindConfigFile_ExplicitWins(t *testing.T) {
	assert.Equal(t, "custom.yaml", findConfigFile("custom.yaml"))
}
