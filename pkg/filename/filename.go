// Package filename derives canonical rule-document filenames from
// frontmatter and title, checks the naming convention, and performs the
// optional conflict-safe auto-rename.
package filename

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/meta"
)

// DefaultRulesDir is the directory under which the naming convention
// applies. Documents elsewhere bypass the policy entirely.
const DefaultRulesDir = ".cursor/rules"

// DefaultExtension is the expected rule document extension.
const DefaultExtension = ".md"

var (
	nonAlnumRun  = regexp.MustCompile(`[^a-z0-9]+`)
	nonKebabChar = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify lowercases the title, collapses every maximal run of
// non-alphanumeric characters to a single hyphen, and trims hyphens at
// both ends. Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	slug := nonAlnumRun.ReplaceAllString(lowered, "-")
	return strings.Trim(slug, "-")
}

// Fix records one applied rename.
type Fix struct {
	Action string `json:"action"` // always "rename"
	From   string `json:"from"`
	To     string `json:"to"`
}

// Policy checks filenames against the {type}-{slug} convention.
type Policy struct {
	// RulesDir scopes the policy; only paths containing this
	// directory are checked.
	RulesDir string
	// Extension is the required file extension, including the dot.
	Extension string
}

// NewPolicy returns a policy with the default scope and extension.
func NewPolicy() *Policy {
	return &Policy{RulesDir: DefaultRulesDir, Extension: DefaultExtension}
}

// InScope reports whether the path falls under the rules directory.
// The check is segment-based so both absolute and relative paths work.
func (p *Policy) InScope(path string) bool {
	dir := strings.Trim(filepath.ToSlash(p.RulesDir), "/")
	if dir == "" {
		return false
	}
	norm := filepath.ToSlash(filepath.Clean(path))
	return strings.Contains("/"+norm+"/", "/"+dir+"/")
}

// Check validates the actual filename against the convention derived
// from frontmatter type and title. Out-of-scope paths produce no
// findings. The expected-name check and the kebab-case/prefix checks
// are independent and may all fire on the same document.
func (p *Policy) Check(path string, fm *meta.Mapping, title string) []lint.Finding {
	if !p.InScope(path) {
		return nil
	}

	base := filepath.Base(path)
	if !strings.HasSuffix(base, p.Extension) {
		return []lint.Finding{{
			Category: lint.CategoryFilename,
			Message:  fmt.Sprintf("rule files must end with %s", p.Extension),
		}}
	}
	stem := strings.TrimSuffix(base, p.Extension)

	category := typeField(fm)
	if category == "" {
		return []lint.Finding{{
			Category: lint.CategoryFilename,
			Message:  "frontmatter 'type' missing; cannot validate filename pattern",
		}}
	}

	var findings []lint.Finding
	if title != "" {
		expected := category + "-" + Slugify(title)
		if stem != expected {
			findings = append(findings, lint.Finding{
				Category: lint.CategoryFilename,
				Message:  fmt.Sprintf("expected '%s%s' based on type and title", expected, p.Extension),
			})
		}
	}
	if stem != strings.ToLower(stem) || nonKebabChar.MatchString(stem) {
		findings = append(findings, lint.Finding{
			Category: lint.CategoryFilename,
			Message:  "must be lowercase kebab-case (a-z, 0-9, hyphen)",
		})
	}
	if !strings.HasPrefix(stem, category+"-") {
		findings = append(findings, lint.Finding{
			Category: lint.CategoryFilename,
			Message:  "file name category must match frontmatter 'type'",
		})
	}
	return findings
}

// ExpectedPath computes the canonical full path for the document, or ""
// when it cannot be derived (out of scope, no type, or no title).
func (p *Policy) ExpectedPath(path string, fm *meta.Mapping, title string) string {
	if !p.InScope(path) {
		return ""
	}
	category := typeField(fm)
	if category == "" || title == "" {
		return ""
	}
	name := category + "-" + Slugify(title) + p.Extension
	return filepath.Join(filepath.Dir(path), name)
}

// Rename moves the document to its expected path. It refuses when a
// file already exists at the target (fix-conflict, no data loss) and
// reports I/O failures as fix-error findings; both are non-fatal.
// A nil Fix with no findings means the name was already canonical.
func (p *Policy) Rename(path string, fm *meta.Mapping, title string) (*Fix, []lint.Finding) {
	expected := p.ExpectedPath(path, fm, title)
	if expected == "" || sameFile(expected, path) {
		return nil, nil
	}
	if _, err := os.Stat(expected); err == nil {
		return nil, []lint.Finding{{
			Category: lint.CategoryFixConflict,
			Message:  fmt.Sprintf("cannot rename; target exists: %s", expected),
		}}
	}
	if err := os.Rename(path, expected); err != nil {
		return nil, []lint.Finding{{
			Category: lint.CategoryFixError,
			Message:  fmt.Sprintf("failed to rename to %s: %v", expected, err),
		}}
	}
	return &Fix{Action: "rename", From: path, To: expected}, nil
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// typeField returns the trimmed string value of the frontmatter type
// field, or "" when absent or not a string.
func typeField(fm *meta.Mapping) string {
	v, ok := fm.Get("type")
	if !ok {
		return ""
	}
	s, ok := v.AsString()
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
