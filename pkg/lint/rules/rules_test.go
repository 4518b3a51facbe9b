package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/meta"
)

func fm(t *testing.T, src string) *meta.Mapping {
	t.Helper()
	m, err := meta.Parse(src)
	require.NoError(t, err)
	return m
}

func TestSeverityValues(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		findings int
	}{
		{"valid level", `severity: high`, 0},
		{"empty string", `severity: ""`, 0},
		{"absent", `description: x`, 0},
		{"unknown level", `severity: urgent`, 1},
		{"non-string left to schema", `severity: 3`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := checkSeverityValues(fm(t, tc.src))
			assert.Len(t, findings, tc.findings)
			for _, f := range findings {
				assert.Equal(t, lint.CategorySemantic, f.Category)
			}
		})
	}
}

func TestBroadGlob(t *testing.T) {
	t.Run("catch-all produces exactly one finding", func(t *testing.T) {
		findings := checkBroadGlob(fm(t, "globs:\n  - \"**/*\"\n"))
		require.Len(t, findings, 1)
		assert.Equal(t, lint.CategoryHeuristic, findings[0].Category)
		assert.Equal(t, "overly broad glob '**/*'", findings[0].Message)
	})

	t.Run("scoped glob produces none", func(t *testing.T) {
		assert.Empty(t, checkBroadGlob(fm(t, "globs:\n  - \"src/**/*.ts\"\n")))
	})

	t.Run("each broad entry flagged", func(t *testing.T) {
		findings := checkBroadGlob(fm(t, "globs:\n  - \"**\"\n  - \"*\"\n  - \"ok/*.go\"\n"))
		assert.Len(t, findings, 2)
	})

	t.Run("surrounding whitespace still matches", func(t *testing.T) {
		findings := checkBroadGlob(fm(t, "globs:\n  - \" **/* \"\n"))
		require.Len(t, findings, 1)
	})

	t.Run("differently spelled broad pattern is not flagged", func(t *testing.T) {
		// Known limitation: only the literal set triggers.
		assert.Empty(t, checkBroadGlob(fm(t, "globs:\n  - \"**/*.*\"\n")))
	})

	t.Run("non-list globs ignored", func(t *testing.T) {
		assert.Empty(t, checkBroadGlob(fm(t, `globs: "**/*"`)))
	})
}

func TestGlobSyntax(t *testing.T) {
	t.Run("valid patterns", func(t *testing.T) {
		assert.Empty(t, checkGlobSyntax(fm(t, "globs:\n  - \"src/**/*.ts\"\n  - \"*.md\"\n")))
	})

	t.Run("unclosed class", func(t *testing.T) {
		findings := checkGlobSyntax(fm(t, "globs:\n  - \"src/[ts\"\n"))
		require.Len(t, findings, 1)
		assert.Equal(t, lint.CategorySemantic, findings[0].Category)
		assert.Contains(t, findings[0].Message, "src/[ts")
	})

	t.Run("empty entry skipped", func(t *testing.T) {
		assert.Empty(t, checkGlobSyntax(fm(t, "globs:\n  - \"\"\n")))
	})
}

func TestAlwaysCoherence(t *testing.T) {
	t.Run("missing flag produces exactly one finding", func(t *testing.T) {
		findings := checkAlwaysCoherence(fm(t, `ruleType: Always`))
		require.Len(t, findings, 1)
		assert.Equal(t, lint.CategorySemantic, findings[0].Category)
		assert.Contains(t, findings[0].Message, "ruleType")
		assert.Contains(t, findings[0].Message, "alwaysApply")
	})

	t.Run("false flag still fires", func(t *testing.T) {
		findings := checkAlwaysCoherence(fm(t, "ruleType: Always\nalwaysApply: false\n"))
		assert.Len(t, findings, 1)
	})

	t.Run("truthy string is not the boolean true", func(t *testing.T) {
		findings := checkAlwaysCoherence(fm(t, "ruleType: Always\nalwaysApply: \"yes\"\n"))
		assert.Len(t, findings, 1)
	})

	t.Run("coherent", func(t *testing.T) {
		assert.Empty(t, checkAlwaysCoherence(fm(t, "ruleType: Always\nalwaysApply: true\n")))
	})

	t.Run("other ruleType ignored", func(t *testing.T) {
		assert.Empty(t, checkAlwaysCoherence(fm(t, `ruleType: Manual`)))
	})
}

func TestAutoAttachedCoherence(t *testing.T) {
	t.Run("missing when", func(t *testing.T) {
		findings := checkAutoAttachedCoherence(fm(t, `ruleType: Auto Attached`))
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "'when' predicates")
	})

	t.Run("empty when", func(t *testing.T) {
		findings := checkAutoAttachedCoherence(fm(t, "ruleType: Auto Attached\nwhen: {}\n"))
		assert.Len(t, findings, 1)
	})

	t.Run("populated when", func(t *testing.T) {
		assert.Empty(t, checkAutoAttachedCoherence(fm(t, "ruleType: Auto Attached\nwhen:\n  fileExtension: .ts\n")))
	})
}

func TestLowercaseTags(t *testing.T) {
	t.Run("mixed case flagged per tag", func(t *testing.T) {
		findings := checkLowercaseTags(fm(t, "tags:\n  - Testing\n  - golang\n  - HTTP\n"))
		require.Len(t, findings, 2)
		assert.Equal(t, lint.CategoryStyle, findings[0].Category)
		assert.Equal(t, "tag 'Testing' should be lowercase", findings[0].Message)
		assert.Equal(t, "tag 'HTTP' should be lowercase", findings[1].Message)
	})

	t.Run("lowercase clean", func(t *testing.T) {
		assert.Empty(t, checkLowercaseTags(fm(t, "tags:\n  - testing\n")))
	})
}

func TestRulesAreRegistered(t *testing.T) {
	for _, id := range []string{"SV01", "GL01", "GL02", "RT01", "RT02", "TG01"} {
		_, ok := lint.GetByID(id)
		assert.True(t, ok, "rule %s should be registered", id)
	}
}

func TestIndependentRulesAccumulate(t *testing.T) {
	// One document can collect findings from several rules in one pass.
	m := fm(t, `severity: urgent
ruleType: Always
globs:
  - "**/*"
tags:
  - Testing
`)
	findings := lint.NewAnalyzer(nil).Analyze(m)

	categories := map[lint.Category]int{}
	for _, f := range findings {
		categories[f.Category]++
	}
	assert.GreaterOrEqual(t, categories[lint.CategorySemantic], 2, "severity and ruleType findings")
	assert.Equal(t, 1, categories[lint.CategoryHeuristic])
	assert.Equal(t, 1, categories[lint.CategoryStyle])
}
