package hop

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q) unexpected error = %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if got, err := ParseKind(" SourceGraph "); err != nil || got != SourceGraph {
		t.Errorf("ParseKind(\" SourceGraph \") = %v, %v; want %v, nil", got, err, SourceGraph)
	}

	if _, err := ParseKind("teleport"); err == nil {
		t.Error("ParseKind(\"teleport\") expected error, got nil")
	}
}

func TestKind_String(t *testing.T) {
	if got := Workday.String(); got != "workday" {
		t.Errorf("Workday.String() = %q, want %q", got, "workday")
	}
	if got := Kind(-1).String(); got != "kind(-1)" {
		t.Errorf("Kind(-1).String() = %q", got)
	}
	if len(Kinds()) != 11 {
		t.Errorf("len(Kinds()) = %d, want 11", len(Kinds()))
	}
}

func TestHop_YAML(t *testing.T) {
	input := `
kind: gitlab
base: https://code.example.com/
`
	var h Hop
	if err := yaml.Unmarshal([]byte(input), &h); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	want := New(GitLab, "https://code.example.com/")
	if h != want {
		t.Errorf("decoded hop = %+v, want %+v", h, want)
	}

	out, err := yaml.Marshal(h)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "kind: gitlab") {
		t.Errorf("yaml.Marshal() = %q, want kind name", out)
	}
}

func TestHop_YAMLUnknownKind(t *testing.T) {
	var h Hop
	err := yaml.Unmarshal([]byte("kind: warp\nbase: x\n"), &h)
	if err == nil {
		t.Fatal("yaml.Unmarshal() expected error for unknown kind")
	}
	if !strings.Contains(err.Error(), `unknown hop kind "warp"`) {
		t.Errorf("error = %q, want unknown hop kind", err.Error())
	}
}

func TestFlagSet_YAML(t *testing.T) {
	var tables Tables
	input := `
dashboards:
  ids: abc
sourcegraph_flags: [re, sl]
`
	if err := yaml.Unmarshal([]byte(input), &tables); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if !tables.SourceGraphFlags.Contains("re") || !tables.SourceGraphFlags.Contains("sl") {
		t.Errorf("flags = %v, want re and sl", tables.SourceGraphFlags.Sorted())
	}
	if tables.SourceGraphFlags.Contains("st") {
		t.Error("flags unexpectedly contain st")
	}
	if tables.Dashboards["ids"] != "abc" {
		t.Errorf("Dashboards[ids] = %q, want abc", tables.Dashboards["ids"])
	}
}
