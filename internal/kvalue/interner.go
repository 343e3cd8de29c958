package kvalue

import (
	"strconv"
	"strings"

	"github.com/HelmerNylen/mkbsc/internal/kerrors"
)

// Interner hands out deduplicated *Value pointers so that structural
// equality reduces to pointer equality. Each Game owns one Interner per
// iteration; values from a prior iteration are embedded by reference, not
// re-created, so nesting never re-walks already-built structure.
type Interner struct {
	table map[string]*Value
}

// NewInterner returns an empty interner.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]*Value)}
}

// Atom interns an atomic (base-game) value.
func (in *Interner) Atom(a Atom) *Value {
	key := "A" + a.key()
	if v, ok := in.table[key]; ok {
		return v
	}
	v := &Value{atom: a, isAtom: true, key: key}
	in.table[key] = v
	return v
}

// Info interns an Info value from one knowledge set per player. Each
// group must be non-empty, per the spec's invariant that a knowledge set
// is always a non-empty finite set; an empty group indicates the caller
// constructed an ill-formed game and triggers kerrors.Panic rather than
// silently producing a value nothing can observe.
func (in *Interner) Info(groups ...[]*Value) *Value {
	normalized := make([][]*Value, len(groups))
	keyParts := make([]string, len(groups))
	for i, g := range groups {
		if len(g) == 0 {
			kerrors.Panic("Info: player " + strconv.Itoa(i) + " knowledge group is empty")
		}
		normalized[i] = sortedDeduped(g)
		keyParts[i] = groupKey(normalized[i])
	}
	key := "I" + strings.Join(keyParts, "|")
	if v, ok := in.table[key]; ok {
		return v
	}
	v := &Value{groups: normalized, key: key}
	in.table[key] = v
	return v
}

// InfoSingleton is a convenience for the single-player KBSC case, where
// every produced state wraps exactly one player's knowledge set.
func (in *Interner) InfoSingleton(group []*Value) *Value {
	return in.Info(group)
}
