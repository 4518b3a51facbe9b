// Package lint defines the finding model and the rule engine for
// frontmatter validation.
//
// Rules are stateless RuleDef values registered in a global registry
// via init() functions in the rules subpackage:
//
//	import _ "github.com/promptstack/rulelint/pkg/lint/rules"
//
// The Analyzer evaluates every enabled rule independently against a
// document's frontmatter; rules never short-circuit each other, so a
// single pass can accumulate findings from several rules.
package lint
