package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptstack/rulelint/internal/config"
)

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	assert.Equal(t, "validate [paths...]", cmd.Use)
	for _, name := range []string{"schema", "strict", "fix", "report-json", "disable", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
}

func TestBuildRunOptions_ConfigOnly(t *testing.T) {
	cfg := &config.Config{
		RulesDir:  "docs/rules",
		Extension: ".mdc",
		Strict:    true,
		Schema:    "cfg.schema.json",
		Disable:   []string{"GL01"},
	}

	got := buildRunOptions(cfg, &ValidateOptions{}, nil)

	assert.Equal(t, "docs/rules", got.RulesDir)
	assert.Equal(t, ".mdc", got.Extension)
	assert.True(t, got.Strict)
	assert.False(t, got.Fix)
	assert.Equal(t, "cfg.schema.json", got.SchemaPath)
	assert.Equal(t, []string{"GL01"}, got.Disable)
	assert.Empty(t, got.Paths)
}

func TestBuildRunOptions_FlagsWin(t *testing.T) {
	cfg := &config.Config{
		RulesDir: config.DefaultRulesDir,
		Schema:   "cfg.schema.json",
		Disable:  []string{"GL01"},
	}
	opts := &ValidateOptions{
		Schema:  "flag.schema.json",
		Strict:  true,
		Fix:     true,
		Disable: []string{"TG01"},
	}

	got := buildRunOptions(cfg, opts, []string{"a.md", "b.md"})

	assert.Equal(t, "flag.schema.json", got.SchemaPath)
	assert.True(t, got.Strict)
	assert.True(t, got.Fix)
	assert.Equal(t, []string{"GL01", "TG01"}, got.Disable, "config and flag disables accumulate")
	assert.Equal(t, []string{"a.md", "b.md"}, got.Paths)
}

func TestBuildRunOptions_ConfigStrictNotClearedByFlag(t *testing.T) {
	cfg := &config.Config{Strict: true}
	got := buildRunOptions(cfg, &ValidateOptions{}, nil)
	require.True(t, got.Strict, "strict from config survives an unset flag")
}
