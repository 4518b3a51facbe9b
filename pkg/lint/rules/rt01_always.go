package rules

import (
	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/meta"
)

func init() {
	lint.Register(AlwaysCoherence)
	lint.Register(AutoAttachedCoherence)
}

// AlwaysCoherence checks that ruleType 'Always' is backed by the
// alwaysApply flag.
var AlwaysCoherence = lint.RuleDef{
	ID:          "RT01",
	Name:        "semantic.ruletype_always",
	Group:       "ruletype",
	Category:    lint.CategorySemantic,
	Description: "ruleType 'Always' requires alwaysApply: true.",
	Check:       checkAlwaysCoherence,

	Rationale: `ruleType describes intent while alwaysApply drives behavior.
When they disagree, the rule looks always-on in listings but is never applied
unconditionally.`,

	BadExample: `ruleType: Always
alwaysApply: false`,

	GoodExample: `ruleType: Always
alwaysApply: true`,

	Fix: "Set alwaysApply: true, or change ruleType.",
}

func checkAlwaysCoherence(fm *meta.Mapping) []lint.Finding {
	if !ruleTypeIs(fm, "Always") {
		return nil
	}
	// The flag must be the boolean true, not a truthy string.
	if aa, ok := fm.Get("alwaysApply"); ok && aa.IsTrue() {
		return nil
	}
	return []lint.Finding{{
		Category: lint.CategorySemantic,
		Message:  "ruleType 'Always' requires alwaysApply: true",
	}}
}

// AutoAttachedCoherence checks that ruleType 'Auto Attached' carries
// attachment predicates.
var AutoAttachedCoherence = lint.RuleDef{
	ID:          "RT02",
	Name:        "semantic.ruletype_auto_attached",
	Group:       "ruletype",
	Category:    lint.CategorySemantic,
	Description: "ruleType 'Auto Attached' requires non-empty 'when' predicates.",
	Check:       checkAutoAttachedCoherence,

	Rationale: `An auto-attached rule without predicates can never attach to
anything; it exists but is unreachable.`,

	BadExample: `ruleType: Auto Attached`,

	GoodExample: `ruleType: Auto Attached
when:
  fileExtension: .ts`,

	Fix: "Add a 'when' block with at least one predicate, or change ruleType.",
}

func checkAutoAttachedCoherence(fm *meta.Mapping) []lint.Finding {
	if !ruleTypeIs(fm, "Auto Attached") {
		return nil
	}
	if w, ok := fm.Get("when"); ok && !w.IsZero() {
		return nil
	}
	return []lint.Finding{{
		Category: lint.CategorySemantic,
		Message:  "ruleType 'Auto Attached' requires 'when' predicates",
	}}
}

// ruleTypeIs reports whether ruleType is the given string value.
// A non-string ruleType never matches; the schema reports its type.
func ruleTypeIs(fm *meta.Mapping, want string) bool {
	v, ok := fm.Get("ruleType")
	if !ok {
		return false
	}
	s, ok := v.AsString()
	return ok && s == want
}
