package meta

import (
	"testing"
)

func TestParse_NestedMapping(t *testing.T) {
	src := `description: widget rules
severity: high
alwaysApply: true
priority: 3
when:
  fileExtension: .ts
tags:
  - testing
  - golang
unset:
`

	m, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := m.Len(); got != 7 {
		t.Fatalf("expected 7 keys, got %d", got)
	}

	// Insertion order must be preserved.
	wantKeys := []string{"description", "severity", "alwaysApply", "priority", "when", "tags", "unset"}
	for i, k := range m.Keys() {
		if k != wantKeys[i] {
			t.Errorf("key %d: expected %q, got %q", i, wantKeys[i], k)
		}
	}

	if v, _ := m.Get("description"); v.Kind != KindString || v.Str != "widget rules" {
		t.Errorf("description: got %+v", v)
	}
	if v, _ := m.Get("alwaysApply"); !v.IsTrue() {
		t.Errorf("alwaysApply: expected true, got %+v", v)
	}
	if v, _ := m.Get("priority"); v.Kind != KindNumber || v.Num != 3 {
		t.Errorf("priority: got %+v", v)
	}
	if v, _ := m.Get("unset"); v.Kind != KindNull {
		t.Errorf("unset: expected null, got %+v", v)
	}

	when, _ := m.Get("when")
	if when.Kind != KindMapping {
		t.Fatalf("when: expected mapping, got %s", when.Kind)
	}
	if v, _ := when.Map.Get("fileExtension"); v.Str != ".ts" {
		t.Errorf("when.fileExtension: got %+v", v)
	}

	tags, _ := m.Get("tags")
	if tags.Kind != KindList || len(tags.List) != 2 {
		t.Fatalf("tags: got %+v", tags)
	}
	if tags.List[1].Str != "golang" {
		t.Errorf("tags[1]: got %+v", tags.List[1])
	}
}

func TestParse_Empty(t *testing.T) {
	for _, src := range []string{"", "\n", "# only a comment\n"} {
		m, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", src, err)
		}
		if m.Len() != 0 {
			t.Errorf("Parse(%q): expected empty mapping, got %d keys", src, m.Len())
		}
	}
}

func TestParse_NonMapping(t *testing.T) {
	for _, src := range []string{"- a\n- b\n", "just a scalar", "42"} {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q): expected error for non-mapping document", src)
		}
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse("foo: [unclosed\n"); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValue_IsZero(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Null(), true},
		{String(""), true},
		{String("x"), false},
		{Number(0), true},
		{Number(1), false},
		{Bool(false), true},
		{Bool(true), false},
		{List(), true},
		{List(String("a")), false},
		{Map(NewMapping()), true},
		{Map(NewMapping().Set("k", Null())), false},
	}
	for _, tc := range cases {
		if got := tc.v.IsZero(); got != tc.want {
			t.Errorf("IsZero(%+v): got %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestInterface_PlainTypes(t *testing.T) {
	m, err := Parse("a: 1\nb: [x, true]\nc:\n  d: null\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := m.Interface()
	if out["a"] != float64(1) {
		t.Errorf("a: got %T %v", out["a"], out["a"])
	}
	b, ok := out["b"].([]any)
	if !ok || len(b) != 2 || b[0] != "x" || b[1] != true {
		t.Errorf("b: got %#v", out["b"])
	}
	c, ok := out["c"].(map[string]any)
	if !ok || c["d"] != nil {
		t.Errorf("c: got %#v", out["c"])
	}
}
