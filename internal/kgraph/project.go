package kgraph

// Project derives a single-player game by dropping all but player i's
// action component (§4.1). States, the initial state, and player i's
// partitioning are carried over unchanged; duplicate projected
// transitions are retained as parallel multi-edges rather than
// deduplicated, since the multigraph structure is load-bearing for the
// synchronous product's witness-edge check.
func (g *Game) Project(player int) (*Game, error) {
	alphabet, err := NewAlphabet(g.alphabet.Actions(player))
	if err != nil {
		return nil, err
	}

	transitions := make([]*Transition, len(g.transitions))
	for i, t := range g.transitions {
		transitions[i] = NewTransition(t.From, JointAction{t.Action[player]}, t.To)
	}

	return NewGame(
		g.states,
		g.initial,
		alphabet,
		transitions,
		[]*Partitioning{g.partitionings[player]},
		WithAttributes(g.Attributes()),
	)
}
