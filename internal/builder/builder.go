// Package builder provides a validating, programmatic surface for
// constructing a *kgraph.Game (§6.3): state atoms, an initial atom,
// per-player alphabets, transition triples (including a wildcard "every
// joint action" form), and per-player observation groupings (with an
// ellipsis catch-all placing any ungrouped state in its own singleton
// observation).
package builder

import (
	"sort"

	"github.com/HelmerNylen/mkbsc/internal/kerrors"
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

type explicitTransition struct {
	from, to kvalue.Atom
	action   []kvalue.Atom
}

type wildcardTransition struct {
	from, to kvalue.Atom
}

// Builder accumulates the pieces of a game before validating and
// constructing it in one call to Build.
type Builder struct {
	stateOrder []kvalue.Atom
	stateSet   map[kvalue.Atom]bool

	initial    kvalue.Atom
	hasInitial bool

	perPlayerAlphabet [][]kvalue.Atom

	explicit []explicitTransition
	wildcard []wildcardTransition

	groupOf    []map[kvalue.Atom]int
	groupCount []int
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{stateSet: map[kvalue.Atom]bool{}}
}

func (b *Builder) addState(a kvalue.Atom) {
	if !b.stateSet[a] {
		b.stateSet[a] = true
		b.stateOrder = append(b.stateOrder, a)
	}
}

// State registers a state atom. Transition and Initial also register
// their atoms, so this is only needed for states with no transitions of
// their own.
func (b *Builder) State(a kvalue.Atom) *Builder {
	b.addState(a)
	return b
}

// Initial sets the game's initial state, registering it if new.
func (b *Builder) Initial(a kvalue.Atom) *Builder {
	b.addState(a)
	b.initial = a
	b.hasInitial = true
	return b
}

// Alphabet sets player i's action list.
func (b *Builder) Alphabet(player int, actions ...kvalue.Atom) *Builder {
	for len(b.perPlayerAlphabet) <= player {
		b.perPlayerAlphabet = append(b.perPlayerAlphabet, nil)
	}
	b.perPlayerAlphabet[player] = append([]kvalue.Atom(nil), actions...)
	return b
}

// Transition adds a single labelled edge.
func (b *Builder) Transition(from kvalue.Atom, action []kvalue.Atom, to kvalue.Atom) *Builder {
	b.addState(from)
	b.addState(to)
	b.explicit = append(b.explicit, explicitTransition{from: from, to: to, action: append([]kvalue.Atom(nil), action...)})
	return b
}

// TransitionAll adds an edge for every joint action in the alphabet: the
// wildcard "all joint actions" form, equivalent to one Transition call
// per element of the eventual Alphabet().Permute().
func (b *Builder) TransitionAll(from, to kvalue.Atom) *Builder {
	b.addState(from)
	b.addState(to)
	b.wildcard = append(b.wildcard, wildcardTransition{from: from, to: to})
	return b
}

// Observe places states into the same observation block for player.
// States never passed to Observe for a given player each receive their
// own singleton observation once Build runs -- the ellipsis catch-all.
func (b *Builder) Observe(player int, states ...kvalue.Atom) *Builder {
	for len(b.groupOf) <= player {
		b.groupOf = append(b.groupOf, map[kvalue.Atom]int{})
		b.groupCount = append(b.groupCount, 0)
	}
	idx := b.groupCount[player]
	b.groupCount[player]++
	for _, s := range states {
		b.addState(s)
		b.groupOf[player][s] = idx
	}
	return b
}

// Build validates the accumulated pieces and constructs the game.
func (b *Builder) Build() (*kgraph.Game, error) {
	if !b.hasInitial {
		return nil, &kerrors.ValidationError{Reason: "builder: no initial state set"}
	}

	interner := kvalue.NewInterner()
	stateOf := make(map[kvalue.Atom]kgraph.State, len(b.stateOrder))
	states := make([]kgraph.State, len(b.stateOrder))
	for i, a := range b.stateOrder {
		v := interner.Atom(a)
		stateOf[a] = v
		states[i] = v
	}

	alphabet, err := kgraph.NewAlphabet(b.perPlayerAlphabet...)
	if err != nil {
		return nil, err
	}

	var transitions []*kgraph.Transition
	for _, t := range b.explicit {
		action := make(kgraph.JointAction, len(t.action))
		copy(action, t.action)
		transitions = append(transitions, kgraph.NewTransition(stateOf[t.from], action, stateOf[t.to]))
	}
	for _, t := range b.wildcard {
		for _, joint := range alphabet.Permute() {
			transitions = append(transitions, kgraph.NewTransition(stateOf[t.from], joint, stateOf[t.to]))
		}
	}

	partitionings := make([]*kgraph.Partitioning, alphabet.PlayerCount())
	for player := 0; player < alphabet.PlayerCount(); player++ {
		var groups map[kvalue.Atom]int
		if player < len(b.groupOf) {
			groups = b.groupOf[player]
		}

		buckets := map[int][]kgraph.State{}
		nextSingleton := -1
		for _, a := range b.stateOrder {
			if idx, ok := groups[a]; ok {
				buckets[idx] = append(buckets[idx], stateOf[a])
			} else {
				buckets[nextSingleton] = append(buckets[nextSingleton], stateOf[a])
				nextSingleton--
			}
		}
		keys := make([]int, 0, len(buckets))
		for k := range buckets {
			keys = append(keys, k)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(keys)))
		obsList := make([]*kgraph.Observation, 0, len(buckets))
		for _, k := range keys {
			obsList = append(obsList, kgraph.NewObservation(buckets[k]...))
		}
		partitionings[player] = kgraph.NewPartitioning(obsList...)
	}

	return kgraph.NewGame(states, stateOf[b.initial], alphabet, transitions, partitionings)
}
