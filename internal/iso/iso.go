// Package iso implements label-respecting multi-digraph isomorphism (§4.6):
// a bijection between two games' state sets that preserves the initial
// state, every labelled transition (with multiplicity), and, optionally,
// each player's observation equivalence.
package iso

import "github.com/HelmerNylen/mkbsc/internal/kgraph"

// Check reports whether g1 and g2 are isomorphic: there exists a bijection
// f between their state sets such that f(g1.Initial()) == g2.Initial(),
// and for every pair of states (x, y), the multiset of labels on edges
// x->y in g1 equals the multiset of labels on edges f(x)->f(y) in g2 (and
// symmetrically y->x / f(y)->f(x)).
//
// If considerObservations, f must additionally preserve, for every
// player, whether two states share an observation block -- the
// "observation-as-edge" requirement: treating each observation as a
// clique of undirected equivalence edges labelled by player turns this
// into exactly the same kind of edge-preservation check as the structural
// case, so it is folded into the same pairwise comparison rather than
// handled as a separate pass.
func Check(g1, g2 *kgraph.Game, considerObservations bool) bool {
	s1 := g1.States()
	s2 := g2.States()
	if len(s1) != len(s2) {
		return false
	}
	if g1.PlayerCount() != g2.PlayerCount() {
		return false
	}
	if len(g1.Transitions()) != len(g2.Transitions()) {
		return false
	}
	if considerObservations {
		for p := 0; p < g1.PlayerCount(); p++ {
			if len(g1.Partitioning(p).Observations()) != len(g2.Partitioning(p).Observations()) {
				return false
			}
		}
	}

	m := &matcher{
		g1: g1, g2: g2,
		s1: s1,
		considerObservations: considerObservations,
		mapping:              map[kgraph.State]kgraph.State{},
		used:                 map[kgraph.State]bool{},
		assigned:             make([]kgraph.State, 0, len(s1)),
	}

	m.mapping[g1.Initial()] = g2.Initial()
	m.used[g2.Initial()] = true
	m.assigned = append(m.assigned, g1.Initial())

	if !m.compatibleWithAssigned(g1.Initial(), g2.Initial(), m.assigned[:0]) {
		return false
	}

	return m.backtrack()
}

type matcher struct {
	g1, g2               *kgraph.Game
	s1                    []kgraph.State
	considerObservations  bool
	mapping               map[kgraph.State]kgraph.State
	used                  map[kgraph.State]bool
	assigned              []kgraph.State
}

func (m *matcher) backtrack() bool {
	if len(m.mapping) == len(m.s1) {
		return true
	}

	var next kgraph.State
	for _, s := range m.s1 {
		if _, ok := m.mapping[s]; !ok {
			next = s
			break
		}
	}

	for _, cand := range m.g2.States() {
		if m.used[cand] {
			continue
		}
		if !m.compatibleWithAssigned(next, cand, m.assigned) {
			continue
		}
		m.mapping[next] = cand
		m.used[cand] = true
		m.assigned = append(m.assigned, next)

		if m.backtrack() {
			return true
		}

		m.assigned = m.assigned[:len(m.assigned)-1]
		delete(m.mapping, next)
		delete(m.used, cand)
	}
	return false
}

// compatibleWithAssigned checks that mapping x -> y is consistent with
// every already-assigned pair, plus x and y's own self-loop structure.
func (m *matcher) compatibleWithAssigned(x, y kgraph.State, assigned []kgraph.State) bool {
	if !edgeCountsMatch(m.g1, x, x, m.g2, y, y) {
		return false
	}
	for _, x2 := range assigned {
		y2 := m.mapping[x2]
		if !edgeCountsMatch(m.g1, x, x2, m.g2, y, y2) {
			return false
		}
		if !edgeCountsMatch(m.g1, x2, x, m.g2, y2, y) {
			return false
		}
		if m.considerObservations {
			for p := 0; p < m.g1.PlayerCount(); p++ {
				same1 := m.g1.Partitioning(p).ObservationOf(x) == m.g1.Partitioning(p).ObservationOf(x2)
				same2 := m.g2.Partitioning(p).ObservationOf(y) == m.g2.Partitioning(p).ObservationOf(y2)
				if same1 != same2 {
					return false
				}
			}
		}
	}
	return true
}

func edgeCountsMatch(g1 *kgraph.Game, from1, to1 kgraph.State, g2 *kgraph.Game, from2, to2 kgraph.State) bool {
	c1 := countEdges(g1, from1, to1)
	c2 := countEdges(g2, from2, to2)
	if len(c1) != len(c2) {
		return false
	}
	for label, n := range c1 {
		if c2[label] != n {
			return false
		}
	}
	return true
}

func countEdges(g *kgraph.Game, from, to kgraph.State) map[string]int {
	counts := map[string]int{}
	for _, t := range g.Transitions() {
		if t.From == from && t.To == to {
			counts[t.Label()]++
		}
	}
	return counts
}
