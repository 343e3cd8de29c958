package kvalue

import "github.com/HelmerNylen/mkbsc/internal/kerrors"

// ConsistentBase returns the base-game atoms compatible with this value:
// if the value is an Atom, that is its sole consistent base; if it is an
// Info node, the consistent base is the intersection of every candidate's
// group, over every player and every candidate — repeated until the
// frontier is made of atoms. This mirrors the original's
// State.consistent_base(), which repeatedly intersects
// set.intersection(*[set(state[player]) ...]) until the picked
// representative is no longer a set-of-sets.
//
// An ill-formed game can make this intersection run dry; that is an
// internal invariant violation (kerrors.EmptyConstructionError), not a
// user error, and is raised via kerrors.Panic rather than returned, since
// ConsistentBase is called from rendering code (Isocheck) that should
// never have to check for it on well-formed input.
func (v *Value) ConsistentBase() []*Value {
	frontier := []*Value{v}
	for {
		if len(frontier) == 0 {
			kerrors.Panic("ConsistentBase: empty frontier")
		}
		if frontier[0].isAtom {
			return dedupAtoms(frontier)
		}
		frontier = intersectFrontier(frontier)
	}
}

// intersectFrontier computes the next frontier: the intersection of every
// value's group, over every value in the frontier and every player of
// that value -- not a per-player union followed by a cross-player
// intersection, which gives a different (too permissive) result once the
// frontier holds more than one value.
func intersectFrontier(frontier []*Value) []*Value {
	var result map[string]*Value
	for _, v := range frontier {
		for player := 0; player < v.PlayerCount(); player++ {
			group := make(map[string]*Value, len(v.Group(player)))
			for _, s := range v.Group(player) {
				group[s.key] = s
			}
			if result == nil {
				result = group
				continue
			}
			for key := range result {
				if _, ok := group[key]; !ok {
					delete(result, key)
				}
			}
		}
	}
	if len(result) == 0 {
		kerrors.Panic("ConsistentBase: empty intersection across players")
	}
	out := make([]*Value, 0, len(result))
	for _, v := range result {
		out = append(out, v)
	}
	return out
}

func dedupAtoms(values []*Value) []*Value {
	seen := make(map[string]*Value, len(values))
	for _, v := range values {
		seen[v.key] = v
	}
	out := make([]*Value, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	return out
}

// IsConsistent reports whether this value's consistent base is non-empty.
// By construction ConsistentBase never returns an empty slice on
// well-formed input (it panics instead via kerrors), so this is really a
// defensive check for callers operating on a value of unknown provenance,
// e.g. one parsed from an untrusted game file.
func (v *Value) IsConsistent() bool {
	return len(v.ConsistentBase()) > 0
}
