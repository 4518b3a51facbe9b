package rules

import (
	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/meta"
)

func init() {
	lint.Register(SeverityValues)
}

// allowedSeverities is the closed set of severity levels. The empty
// string is allowed so a document can declare the field without
// committing to a level.
var allowedSeverities = map[string]bool{
	"critical": true,
	"high":     true,
	"medium":   true,
	"low":      true,
	"info":     true,
	"":         true,
}

// SeverityValues checks the severity field against the known levels.
var SeverityValues = lint.RuleDef{
	ID:          "SV01",
	Name:        "semantic.severity",
	Group:       "severity",
	Category:    lint.CategorySemantic,
	Description: "severity must be one of critical, high, medium, low, info, or empty.",
	Check:       checkSeverityValues,

	Rationale: `Downstream tooling sorts and filters rules by severity. An
unrecognized level silently drops the rule out of every severity bucket.`,

	BadExample: `severity: urgent`,

	GoodExample: `severity: high`,

	Fix: "Use one of the documented severity levels, or remove the field.",
}

// checkSeverityValues only applies when severity is present and a
// string; type errors are the schema's job.
func checkSeverityValues(fm *meta.Mapping) []lint.Finding {
	v, ok := fm.Get("severity")
	if !ok {
		return nil
	}
	s, ok := v.AsString()
	if !ok {
		return nil
	}
	if !allowedSeverities[s] {
		return []lint.Finding{{
			Category: lint.CategorySemantic,
			Message:  "severity must be one of critical|high|medium|low|info or empty",
		}}
	}
	return nil
}
