package lint

import (
	"fmt"
	"strings"
)

// requiredSections are the markers every rule document body must
// contain. Presence only; relative order is not enforced.
var requiredSections = []string{
	"# ",
	"## Description",
	"## Rule",
	"## Examples",
	"## Rationale",
	"## Priority",
	"## Confidence",
}

// examplesScanWindow bounds how many lines after the Examples heading
// are searched for example content.
const examplesScanWindow = 20

// CheckStructure verifies the body contains the required sections and
// that the Examples section holds at least one bullet or code fence
// within the scan window. It is a presence check over literal marker
// text, not a markdown parser.
func CheckStructure(body []string) []Finding {
	var findings []Finding
	text := strings.Join(body, "\n")

	for _, sec := range requiredSections {
		if !strings.Contains(text, sec) {
			findings = append(findings, Finding{
				Category: CategoryStructure,
				Message:  fmt.Sprintf("missing section '%s'", strings.TrimSpace(sec)),
			})
		}
	}

	if idx := strings.Index(text, "## Examples"); idx >= 0 {
		after := strings.Split(text[idx:], "\n")
		if len(after) > 1 {
			after = after[1:]
		} else {
			after = nil
		}
		if len(after) > examplesScanWindow {
			after = after[:examplesScanWindow]
		}
		hasExample := false
		for _, ln := range after {
			trimmed := strings.TrimSpace(ln)
			if strings.HasPrefix(trimmed, "-") ||
				strings.HasPrefix(trimmed, "```") ||
				strings.HasPrefix(trimmed, "~~~") {
				hasExample = true
				break
			}
		}
		if !hasExample {
			findings = append(findings, Finding{
				Category: CategoryStructure,
				Message:  "'## Examples' should include at least one bullet or code block",
			})
		}
	}

	return findings
}
