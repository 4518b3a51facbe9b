package meta

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindMapping
)

// String returns the kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

// Value is a tagged union over the frontmatter value space:
// scalar (string, number, bool, null), list, or nested mapping.
// Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
	List []Value
	Map  *Mapping
}

// Constructors used by rules and tests.

func Null() Value                { return Value{Kind: KindNull} }
func String(s string) Value      { return Value{Kind: KindString, Str: s} }
func Number(n float64) Value     { return Value{Kind: KindNumber, Num: n} }
func Bool(b bool) Value          { return Value{Kind: KindBool, Bool: b} }
func List(items ...Value) Value  { return Value{Kind: KindList, List: items} }
func Map(m *Mapping) Value       { return Value{Kind: KindMapping, Map: m} }

// AsString returns the string content if the value is a string.
func (v Value) AsString() (string, bool) {
	if v.Kind == KindString {
		return v.Str, true
	}
	return "", false
}

// IsTrue reports whether the value is the boolean true.
func (v Value) IsTrue() bool {
	return v.Kind == KindBool && v.Bool
}

// IsZero reports whether the value is empty in the loose sense used by
// presence checks: null, empty string, zero, false, or an empty
// list/mapping.
func (v Value) IsZero() bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindString:
		return v.Str == ""
	case KindNumber:
		return v.Num == 0
	case KindBool:
		return !v.Bool
	case KindList:
		return len(v.List) == 0
	case KindMapping:
		return v.Map == nil || v.Map.Len() == 0
	}
	return true
}

// Interface converts the value to plain Go types as encoding/json would
// decode them (map[string]any, []any, float64, string, bool, nil).
// Schema validation consumes this form.
func (v Value) Interface() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindList:
		out := make([]any, len(v.List))
		for i, item := range v.List {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		return v.Map.Interface()
	}
	return nil
}

// Mapping is an order-preserving string-keyed mapping of Values.
type Mapping struct {
	keys []string
	vals map[string]Value
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{vals: make(map[string]Value)}
}

// Set inserts or replaces a key. Insertion order is preserved.
func (m *Mapping) Set(key string, v Value) *Mapping {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
	return m
}

// Get returns the value for key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Interface converts the mapping to a plain map[string]any.
func (m *Mapping) Interface() map[string]any {
	out := make(map[string]any, m.Len())
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out[k] = v.Interface()
	}
	return out
}

// Parse decodes YAML source into a Mapping. Empty input yields an
// empty mapping. A document whose top-level value is not a mapping
// (a bare scalar or list) is an error.
func Parse(src string) (*Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewMapping(), nil
	}
	v, err := decodeNode(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if v.Kind == KindNull {
		return NewMapping(), nil
	}
	if v.Kind != KindMapping {
		return nil, fmt.Errorf("frontmatter is not a mapping (got %s)", v.Kind)
	}
	return v.Map, nil
}

func decodeNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return decodeNode(n.Content[0])
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return Value{}, fmt.Errorf("invalid mapping key at line %d: %w", n.Content[i].Line, err)
			}
			val, err := decodeNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			m.Set(key, val)
		}
		return Map(m), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := decodeNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{Kind: KindList, List: items}, nil
	case yaml.ScalarNode:
		return decodeScalar(n)
	}
	return Value{}, fmt.Errorf("unsupported YAML node kind %d at line %d", n.Kind, n.Line)
}

func decodeScalar(n *yaml.Node) (Value, error) {
	var x any
	if err := n.Decode(&x); err != nil {
		return Value{}, fmt.Errorf("invalid scalar at line %d: %w", n.Line, err)
	}
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case string:
		return String(t), nil
	case time.Time:
		// Timestamps are kept as strings; nothing downstream is date-aware.
		return String(t.Format(time.RFC3339)), nil
	default:
		return String(fmt.Sprint(t)), nil
	}
}
