/*
Package hop defines the URL transformation strategies ("hops") that turn the
arguments of a shortcut into a destination URL.
*/
package hop

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies a hop strategy. The set is closed.
type Kind int

const (
	Basic Kind = iota
	Dashboard
	GitLab
	Jira
	Kanban
	OfficeSpace
	Proctor
	Runbook
	Sandbox
	SourceGraph
	Workday
)

var kindNames = [...]string{
	Basic:       "basic",
	Dashboard:   "dashboard",
	GitLab:      "gitlab",
	Jira:        "jira",
	Kanban:      "kanban",
	OfficeSpace: "officespace",
	Proctor:     "proctor",
	Runbook:     "runbook",
	Sandbox:     "sandbox",
	SourceGraph: "sourcegraph",
	Workday:     "workday",
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a kind name to its Kind. Matching ignores case.
func ParseKind(name string) (Kind, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == lowered {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hop kind %q", name)
}

// UnmarshalYAML decodes a kind from its name.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("line %d: hop kind must be a string: %w", node.Line, err)
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a kind as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid hop kind %d", int(k))
	}
	return k.String(), nil
}
