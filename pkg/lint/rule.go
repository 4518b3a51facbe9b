package lint

import "github.com/promptstack/rulelint/pkg/meta"

// CheckFunc evaluates one rule against parsed frontmatter and returns
// zero or more findings. Rules are stateless; all context arrives via
// the mapping.
type CheckFunc func(fm *meta.Mapping) []Finding

// RuleDef is a data-driven rule definition. Frontmatter rules are plain
// values, not an interface hierarchy; the registry and analyzer treat
// them uniformly.
type RuleDef struct {
	ID          string   // Unique identifier, e.g. "SV01"
	Name        string   // Human-readable name, e.g. "semantic.severity"
	Group       string   // Grouping for documentation, e.g. "severity", "globs"
	Category    Category // Finding category this rule emits
	Description string   // One-line description
	Check       CheckFunc

	// Documentation fields for the rules command.
	Rationale   string // Why this rule exists
	BadExample  string // Frontmatter showing the anti-pattern
	GoodExample string // Frontmatter showing the correct form
	Fix         string // How to fix violations
}

// RuleInfo is the serializable metadata of a rule, used by the rules
// command for documentation output.
type RuleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Rationale   string   `json:"rationale,omitempty"`
	BadExample  string   `json:"bad_example,omitempty"`
	GoodExample string   `json:"good_example,omitempty"`
	Fix         string   `json:"fix,omitempty"`
}

// Info extracts the documentation metadata of a rule.
func (r RuleDef) Info() RuleInfo {
	return RuleInfo{
		ID:          r.ID,
		Name:        r.Name,
		Group:       r.Group,
		Category:    r.Category,
		Description: r.Description,
		Rationale:   r.Rationale,
		BadExample:  r.BadExample,
		GoodExample: r.GoodExample,
		Fix:         r.Fix,
	}
}
