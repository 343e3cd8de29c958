package kgraph

import "github.com/HelmerNylen/mkbsc/internal/kvalue"

// State identifies a node in a game graph by its knowledge value; identity
// is value equality, which for interned values is pointer equality.
type State = *kvalue.Value

// Observation represents a set of states indistinguishable to one player.
// It must be non-empty; NewObservation panics if given no states, mirroring
// the invariant that every partition block is inhabited.
type Observation struct {
	states []State
}

// NewObservation builds an observation from one or more states.
func NewObservation(states ...State) *Observation {
	if len(states) == 0 {
		panic("kgraph: observation must contain at least one state")
	}
	return &Observation{states: append([]State(nil), states...)}
}

// States returns the states in this observation.
func (o *Observation) States() []State { return o.states }

// Len returns the number of states in this observation.
func (o *Observation) Len() int { return len(o.states) }

// Contains reports whether s belongs to this observation.
func (o *Observation) Contains(s State) bool {
	for _, candidate := range o.states {
		if candidate.Equal(s) {
			return true
		}
	}
	return false
}
