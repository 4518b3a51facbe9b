// Package document splits rule documents into YAML frontmatter and a
// markdown body.
package document

import (
	"fmt"
	"strings"

	"github.com/promptstack/rulelint/pkg/meta"
)

// Delimiter is the frontmatter fence: a line containing only "---".
const Delimiter = "---"

// Document is a rule document parsed for one validation pass.
// It is constructed fresh from file content and never mutated.
type Document struct {
	Path        string
	Frontmatter *meta.Mapping // nil when no frontmatter block was found
	FMStart     int           // line index of the opening delimiter, -1 if none
	FMEnd       int           // line index of the closing delimiter, -1 if none
	Body        []string      // lines after the closing delimiter
}

// ParseError reports a malformed frontmatter block. It is fatal to the
// remaining checks for that document only.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: failed to parse frontmatter: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse frontmatter: %s", e.Message)
}

// Parse splits content into frontmatter and body. If the first line is
// the delimiter and a matching closing delimiter exists, the region
// between them must decode to a YAML mapping; anything else is a
// *ParseError. Absent or too-short documents are not an error: the
// result simply has no frontmatter and the whole content as body.
func Parse(path, content string) (*Document, error) {
	lines := splitLines(content)
	doc := &Document{
		Path:    path,
		FMStart: -1,
		FMEnd:   -1,
		Body:    lines,
	}

	if len(lines) < 3 || strings.TrimSpace(lines[0]) != Delimiter {
		return doc, nil
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != Delimiter {
			continue
		}
		fm, err := meta.Parse(strings.Join(lines[1:i], "\n"))
		if err != nil {
			return nil, &ParseError{Path: path, Message: err.Error()}
		}
		doc.Frontmatter = fm
		doc.FMStart = 0
		doc.FMEnd = i
		doc.Body = lines[i+1:]
		return doc, nil
	}
	// Opening delimiter without a closing one: treat as body text.
	return doc, nil
}

// HasFrontmatter reports whether a non-empty frontmatter block was
// found. An empty block is treated the same as a missing one.
func (d *Document) HasFrontmatter() bool {
	return d.Frontmatter != nil && d.Frontmatter.Len() > 0
}

// Title returns the text of the leading "# " heading of the body, or ""
// when the body does not start with one. Blank lines before the heading
// are allowed; any other content means the document has no title.
func (d *Document) Title() string {
	for _, ln := range d.Body {
		trimmed := strings.TrimSpace(ln)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
		if trimmed != "" {
			break
		}
	}
	return ""
}

// splitLines splits on newlines the way splitlines() does: no trailing
// empty element for a trailing newline.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
