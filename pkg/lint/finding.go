package lint

import "fmt"

// Category classifies a finding by the pipeline stage that produced it.
type Category string

const (
	// CategorySchema marks violations of the frontmatter JSON Schema.
	CategorySchema Category = "schema"
	// CategorySemantic marks cross-field coherence violations.
	CategorySemantic Category = "semantic"
	// CategoryStructure marks missing or malformed body sections.
	CategoryStructure Category = "structure"
	// CategoryHeuristic marks advisory findings, e.g. overly broad globs.
	CategoryHeuristic Category = "heuristic"
	// CategoryStyle marks conventions such as lowercase tags.
	CategoryStyle Category = "style"
	// CategoryFilename marks naming-convention violations.
	CategoryFilename Category = "filename"
	// CategoryFixConflict marks a refused auto-rename: the target
	// already exists.
	CategoryFixConflict Category = "fix-conflict"
	// CategoryFixError marks an auto-rename that failed on I/O.
	CategoryFixError Category = "fix-error"
)

// Finding is one validation result for a document. FieldPath is the
// dotted path into the frontmatter when the finding concerns a specific
// field, e.g. "when.globs.0".
type Finding struct {
	Category  Category `json:"category"`
	Message   string   `json:"message"`
	FieldPath string   `json:"field,omitempty"`
}

// String renders the finding for terminal output.
func (f Finding) String() string {
	if f.FieldPath != "" {
		return fmt.Sprintf("%s: %s at '%s'", f.Category, f.Message, f.FieldPath)
	}
	return fmt.Sprintf("%s: %s", f.Category, f.Message)
}
