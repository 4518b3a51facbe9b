// Package rules contains all frontmatter lint rules.
// Import this package to register them with the lint registry:
//
//	import _ "github.com/promptstack/rulelint/pkg/lint/rules"
//
// Rules are registered via init() functions when this package is
// imported:
//
//   - SV01: Severity Values - severity must be a known level
//   - GL01: Broad Glob - flag maximally-broad glob patterns
//   - GL02: Glob Syntax - glob entries must be valid patterns
//   - RT01: Always Coherence - ruleType 'Always' requires alwaysApply
//   - RT02: Auto Attached Coherence - ruleType 'Auto Attached' requires 'when'
//   - TG01: Lowercase Tags - tags should be lowercase
package rules
