/*
Package shortcut defines the shortcut entries a user can type and the
read-only registry they are looked up in.
*/
package shortcut

import "github.com/AntonioJCosta/lolbunny/internal/core/domain/hop"

/*
Entry binds a shortcut token to the hop it resolves with and the help text
shown on the help page.
*/
type Entry struct {
	Token string  `yaml:"token"`
	Hop   hop.Hop `yaml:",inline"`
	Help  string  `yaml:"help"`
}

// Catalog is everything needed to build a registry: the ordered entries and
// the alias tables their hops consult.
type Catalog struct {
	Shortcuts []Entry    `yaml:"shortcuts"`
	Tables    hop.Tables `yaml:"tables"`
}

// Registry is an ordered, immutable set of entries indexed by token.
type Registry struct {
	entries []Entry
	index   map[string]int
}

/*
NewRegistry builds a registry from entries, keeping their order. Tokens are
matched exactly and case-sensitively. When a token appears more than once the
first entry wins lookups; every entry is still listed by Entries.
*/
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(r.entries, entries)
	for i, e := range r.entries {
		if _, exists := r.index[e.Token]; !exists {
			r.index[e.Token] = i
		}
	}
	return r
}

// Lookup finds the entry registered for token.
func (r *Registry) Lookup(token string) (Entry, bool) {
	i, ok := r.index[token]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of the entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports the number of registered entries, duplicates included.
func (r *Registry) Len() int {
	return len(r.entries)
}
