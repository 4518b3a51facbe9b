package rules

import (
	"fmt"
	"strings"

	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/meta"
)

func init() {
	lint.Register(BroadGlob)
}

// broadGlobs is the closed set of literal maximally-broad patterns.
// Deliberately narrow: spellings like "**/*.*" are just as broad but
// are not flagged, because widening the set would change pass/fail
// outcomes on documents that validate today. Known limitation.
var broadGlobs = map[string]bool{
	"**/*": true,
	"**":   true,
	"*":    true,
}

// BroadGlob flags glob entries that match everything.
var BroadGlob = lint.RuleDef{
	ID:          "GL01",
	Name:        "heuristic.broad_glob",
	Group:       "globs",
	Category:    lint.CategoryHeuristic,
	Description: "Glob patterns should not match every file.",
	Check:       checkBroadGlob,

	Rationale: `A rule attached to every file is almost never intentional; it
usually means the author forgot to scope the rule. This is a heuristic, not a
hard failure: only the exact literal catch-all spellings are flagged.`,

	BadExample: `globs:
  - "**/*"`,

	GoodExample: `globs:
  - "src/**/*.ts"`,

	Fix: "Scope the glob to the directories or file types the rule is about.",
}

func checkBroadGlob(fm *meta.Mapping) []lint.Finding {
	var findings []lint.Finding
	for _, g := range globStrings(fm) {
		if broadGlobs[strings.TrimSpace(g)] {
			findings = append(findings, lint.Finding{
				Category: lint.CategoryHeuristic,
				Message:  fmt.Sprintf("overly broad glob '%s'", g),
			})
		}
	}
	return findings
}

// globStrings returns the string entries of the globs list, ignoring
// a missing field, a non-list value, and non-string entries.
func globStrings(fm *meta.Mapping) []string {
	v, ok := fm.Get("globs")
	if !ok || v.Kind != meta.KindList {
		return nil
	}
	var out []string
	for _, item := range v.List {
		if s, ok := item.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}
