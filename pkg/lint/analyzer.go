package lint

import "github.com/promptstack/rulelint/pkg/meta"

// Analyzer runs registered frontmatter rules against a document.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates an analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze evaluates every enabled rule against the frontmatter in
// stable (ID) order. Rules are independent; findings accumulate.
func (a *Analyzer) Analyze(fm *meta.Mapping) []Finding {
	if fm == nil {
		return nil
	}

	var findings []Finding
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}
		findings = append(findings, rule.Check(fm)...)
	}
	return findings
}
