package rules

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/meta"
)

func init() {
	lint.Register(GlobSyntax)
}

// GlobSyntax checks that glob entries are syntactically valid patterns.
var GlobSyntax = lint.RuleDef{
	ID:          "GL02",
	Name:        "semantic.glob_syntax",
	Group:       "globs",
	Category:    lint.CategorySemantic,
	Description: "Glob entries must be valid doublestar patterns.",
	Check:       checkGlobSyntax,

	Rationale: `A glob that does not compile never matches anything, so the
rule it scopes is silently dead. Catching the syntax error at validation time
is much cheaper than debugging a rule that never fires.`,

	BadExample: `globs:
  - "src/[ts"`,

	GoodExample: `globs:
  - "src/**/*.ts"`,

	Fix: "Fix the pattern syntax; see doublestar pattern documentation.",
}

func checkGlobSyntax(fm *meta.Mapping) []lint.Finding {
	var findings []lint.Finding
	for _, g := range globStrings(fm) {
		trimmed := strings.TrimSpace(g)
		if trimmed == "" {
			continue
		}
		if !doublestar.ValidatePattern(trimmed) {
			findings = append(findings, lint.Finding{
				Category: lint.CategorySemantic,
				Message:  fmt.Sprintf("invalid glob pattern '%s'", g),
			})
		}
	}
	return findings
}
