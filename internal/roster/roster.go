// Package roster maps human-readable names to the dense vertex ids used by
// core.Graph, and back.
//
// Ids are assigned sequentially on first sight, starting at 0, with no gaps,
// so an id can index a graph's vertex array directly once the graph has been
// grown to Len() vertices.
package roster

import (
	"slices"
	"strings"
)

// Index is a bidirectional name <-> id table.
// It is not safe for concurrent mutation.
type Index struct {
	ids   map[string]int
	names []string
}

// New returns an empty Index.
func New() *Index {
	return &Index{ids: make(map[string]int)}
}

// Intern returns the id of name, assigning the next sequential id if name
// has not been seen before. created reports whether a new id was assigned.
func (x *Index) Intern(name string) (id int, created bool) {
	if id, ok := x.ids[name]; ok {
		return id, false
	}
	id = len(x.names)
	x.ids[name] = id
	x.names = append(x.names, name)

	return id, true
}

// ID returns the id assigned to name.
func (x *Index) ID(name string) (int, bool) {
	id, ok := x.ids[name]
	return id, ok
}

// Name returns the name assigned to id.
func (x *Index) Name(id int) (string, bool) {
	if id < 0 || id >= len(x.names) {
		return "", false
	}

	return x.names[id], true
}

// Len returns the number of interned names; ids are 0..Len()-1.
func (x *Index) Len() int { return len(x.names) }

// Names returns every interned name in ascending order.
func (x *Index) Names() []string {
	out := slices.Clone(x.names)
	slices.Sort(out)

	return out
}

// Match returns the names that start with prefix, case-insensitively,
// in ascending order. An empty prefix matches every name.
func (x *Index) Match(prefix string) []string {
	p := strings.ToLower(prefix)
	var out []string
	for _, n := range x.names {
		if strings.HasPrefix(strings.ToLower(n), p) {
			out = append(out, n)
		}
	}
	slices.Sort(out)

	return out
}

// Translate maps a sequence of ids to names. It reports false if any id is
// unknown.
func (x *Index) Translate(ids []int) ([]string, bool) {
	out := make([]string, len(ids))
	for i, id := range ids {
		name, ok := x.Name(id)
		if !ok {
			return nil, false
		}
		out[i] = name
	}

	return out, true
}
