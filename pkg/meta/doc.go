// Package meta models frontmatter metadata as a typed value tree.
//
// YAML frontmatter is a recursive structure of scalars, lists, and
// mappings. Rather than passing map[string]any around, this package
// decodes yaml.v3 nodes into an explicit tagged union (Value) and an
// order-preserving Mapping, so rule code can switch on Kind instead of
// type-asserting interface values.
package meta
