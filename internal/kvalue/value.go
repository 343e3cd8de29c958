package kvalue

import (
	"sort"
	"strings"
)

// Value is a knowledge value: either a base atom, or one non-empty
// knowledge set per player. Values are only ever handed out by an
// Interner, so pointer equality between two *Value obtained from the same
// Interner implies structural equality, and vice versa.
type Value struct {
	atom   Atom
	isAtom bool
	groups [][]*Value // one sorted, deduplicated slice per player; nil if isAtom
	key    string
}

// IsAtom reports whether this value is a base-game atom rather than an
// Info node.
func (v *Value) IsAtom() bool { return v.isAtom }

// Atom returns the underlying atom; valid only if IsAtom() is true.
func (v *Value) Atom() Atom { return v.atom }

// PlayerCount returns the number of knowledge groups carried by an Info
// value (0 for an atom).
func (v *Value) PlayerCount() int { return len(v.groups) }

// Group returns player i's knowledge set as a slice. Callers must not
// mutate the returned slice.
func (v *Value) Group(i int) []*Value { return v.groups[i] }

// Key returns the canonical structural key used for interning and
// equality checks across Interners (e.g. when comparing states produced
// by independent KBSC runs in tests).
func (v *Value) Key() string { return v.key }

// Equal reports structural equality. Two values from the same Interner
// are equal iff they are the same pointer; this also holds across
// Interners because the key is purely structural.
func (v *Value) Equal(other *Value) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	return v.key == other.key
}

func groupKey(group []*Value) string {
	keys := make([]string, len(group))
	for i, g := range group {
		keys[i] = g.key
	}
	sort.Strings(keys)
	return "{" + strings.Join(keys, ",") + "}"
}

func sortedDeduped(group []*Value) []*Value {
	seen := make(map[string]*Value, len(group))
	for _, g := range group {
		seen[g.key] = g
	}
	out := make([]*Value, 0, len(seen))
	for _, g := range seen {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}
