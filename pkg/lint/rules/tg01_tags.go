package rules

import (
	"fmt"
	"strings"

	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/meta"
)

func init() {
	lint.Register(LowercaseTags)
}

// LowercaseTags recommends lowercase tag names.
var LowercaseTags = lint.RuleDef{
	ID:          "TG01",
	Name:        "style.lowercase_tags",
	Group:       "tags",
	Category:    lint.CategoryStyle,
	Description: "Tags should be lowercase.",
	Check:       checkLowercaseTags,

	Rationale: `Tag lookups are case-sensitive; "Testing" and "testing" would
split one topic across two tags.`,

	BadExample: `tags:
  - Testing`,

	GoodExample: `tags:
  - testing`,

	Fix: "Lowercase the tag.",
}

func checkLowercaseTags(fm *meta.Mapping) []lint.Finding {
	v, ok := fm.Get("tags")
	if !ok || v.Kind != meta.KindList {
		return nil
	}
	var findings []lint.Finding
	for _, item := range v.List {
		s, ok := item.AsString()
		if !ok {
			continue
		}
		if s != strings.ToLower(s) {
			findings = append(findings, lint.Finding{
				Category: lint.CategoryStyle,
				Message:  fmt.Sprintf("tag '%s' should be lowercase", s),
			})
		}
	}
	return findings
}
