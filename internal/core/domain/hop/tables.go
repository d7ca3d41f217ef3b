package hop

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// FlagSet is the set of recognized SourceGraph flag prefixes.
type FlagSet map[string]struct{}

// NewFlagSet builds a FlagSet from the given flags.
func NewFlagSet(flags ...string) FlagSet {
	set := make(FlagSet, len(flags))
	for _, f := range flags {
		set[f] = struct{}{}
	}
	return set
}

// Contains reports whether flag is in the set.
func (s FlagSet) Contains(flag string) bool {
	_, ok := s[flag]
	return ok
}

// Sorted returns the flags in lexical order.
func (s FlagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// UnmarshalYAML decodes a FlagSet from a sequence of strings.
func (s *FlagSet) UnmarshalYAML(node *yaml.Node) error {
	var flags []string
	if err := node.Decode(&flags); err != nil {
		return fmt.Errorf("line %d: sourcegraph flags must be a list of strings: %w", node.Line, err)
	}
	*s = NewFlagSet(flags...)
	return nil
}

// MarshalYAML encodes a FlagSet as a sorted sequence.
func (s FlagSet) MarshalYAML() (interface{}, error) {
	return s.Sorted(), nil
}

/*
Tables holds the fixed alias maps and flag set that some hops consult.
Dashboards and Runbooks map a short key to a path fragment appended to the
hop base; Boards maps a team key to a rapid board query.
*/
type Tables struct {
	Dashboards       map[string]string `yaml:"dashboards"`
	Boards           map[string]string `yaml:"boards"`
	Runbooks         map[string]string `yaml:"runbooks"`
	SourceGraphFlags FlagSet           `yaml:"sourcegraph_flags"`
}
