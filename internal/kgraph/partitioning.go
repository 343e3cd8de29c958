package kgraph

// Partitioning represents one player's complete partition of the state
// set into observations: an ordered collection whose blocks are pairwise
// disjoint and whose union is the full state set.
type Partitioning struct {
	observations []*Observation
}

// NewPartitioning builds a partitioning from its observations, in the
// given order. It does not itself validate the partition property;
// callers that need the invariant checked (e.g. Game construction) call
// Valid explicitly.
func NewPartitioning(observations ...*Observation) *Partitioning {
	return &Partitioning{observations: append([]*Observation(nil), observations...)}
}

// Observations returns the partitioning's observations, in order.
func (p *Partitioning) Observations() []*Observation { return p.observations }

// Valid reports whether the partitioning's observations are pairwise
// disjoint and together cover exactly the given states.
func (p *Partitioning) Valid(states []State) bool {
	seen := make(map[string]bool)
	for _, obs := range p.observations {
		for _, s := range obs.States() {
			if seen[s.Key()] {
				return false
			}
			seen[s.Key()] = true
		}
	}
	if len(seen) != len(states) {
		return false
	}
	for _, s := range states {
		if !seen[s.Key()] {
			return false
		}
	}
	return true
}

// ObservationOf returns the observation containing s, or nil if none does.
func (p *Partitioning) ObservationOf(s State) *Observation {
	for _, obs := range p.observations {
		if obs.Contains(s) {
			return obs
		}
	}
	return nil
}
