// Package schema adapts a JSON Schema engine to the finding model.
//
// The core never defines the schema language itself: a declarative
// schema plus a frontmatter instance go in, field-level violations come
// out. The engine is santhosh-tekuri/jsonschema (Draft 2020-12).
package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/promptstack/rulelint/pkg/lint"
	"github.com/promptstack/rulelint/pkg/meta"
)

// defaultSchemaName is the resource name the embedded schema compiles
// under.
const defaultSchemaName = "rule_frontmatter.schema.json"

//go:embed rule_frontmatter.schema.json
var defaultSchema []byte

// Validator validates frontmatter mappings against a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewDefault compiles the embedded frontmatter schema.
func NewDefault() (*Validator, error) {
	return compile(defaultSchemaName, defaultSchema)
}

// LoadFile compiles a schema from a JSON file on disk.
func LoadFile(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return compile(path, data)
}

func compile(name string, data []byte) (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("load schema %s: %w", name, err)
	}
	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Validator{schema: s}, nil
}

// Validate checks the frontmatter against the schema and returns one
// schema finding per leaf violation. Findings carry a dotted field
// path into the instance when the violation is below the root.
func (v *Validator) Validate(fm *meta.Mapping) []lint.Finding {
	err := v.schema.Validate(fm.Interface())
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []lint.Finding{{
			Category: lint.CategorySchema,
			Message:  err.Error(),
		}}
	}
	return collectLeaves(ve, nil)
}

// collectLeaves walks the cause tree; only leaves carry the concrete
// violation messages.
func collectLeaves(ve *jsonschema.ValidationError, findings []lint.Finding) []lint.Finding {
	if len(ve.Causes) == 0 {
		return append(findings, lint.Finding{
			Category:  lint.CategorySchema,
			Message:   ve.Message,
			FieldPath: pointerToPath(ve.InstanceLocation),
		})
	}
	for _, cause := range ve.Causes {
		findings = collectLeaves(cause, findings)
	}
	return findings
}

// pointerToPath converts a JSON pointer ("/when/globs/0") to the dotted
// form used in findings ("when.globs.0").
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	segments := strings.Split(ptr, "/")
	for i, seg := range segments {
		seg = strings.ReplaceAll(seg, "~1", "/")
		segments[i] = strings.ReplaceAll(seg, "~0", "~")
	}
	return strings.Join(segments, ".")
}
