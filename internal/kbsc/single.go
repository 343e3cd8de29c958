package kbsc

import (
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

// singlePlayerKBSC performs the subset construction of §4.3: starting from
// the singleton knowledge set containing the initial state, it repeatedly
// takes the post-image under each action and splits the result against the
// player's observation partitioning, discovering one successor knowledge
// state per non-empty intersection.
func singlePlayerKBSC(g *kgraph.Game) (*kgraph.Game, error) {
	interner := kvalue.NewInterner()

	initial := interner.InfoSingleton([]*kvalue.Value{g.Initial()})

	states := map[string]kgraph.State{initial.Key(): initial}
	visited := map[string]bool{}
	queue := []kgraph.State{initial}
	var transitions []*kgraph.Transition

	alphabet := g.Alphabet().Actions(0)
	observations := g.Partitioning(0).Observations()

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		if visited[q.Key()] {
			continue
		}
		visited[q.Key()] = true

		for _, action := range alphabet {
			post := g.Post(kgraph.JointAction{action}, q.Group(0))
			if len(post) == 0 {
				continue
			}
			for _, obs := range observations {
				knowledge := intersect(post, obs.States())
				if len(knowledge) == 0 {
					continue
				}
				next := interner.InfoSingleton(knowledge)
				if _, ok := states[next.Key()]; !ok {
					states[next.Key()] = next
					queue = append(queue, next)
				}
				transitions = append(transitions, kgraph.NewTransition(q, kgraph.JointAction{action}, next))
			}
		}
	}

	stateList := make([]kgraph.State, 0, len(states))
	for _, s := range states {
		stateList = append(stateList, s)
	}

	obsList := make([]*kgraph.Observation, len(stateList))
	for i, s := range stateList {
		obsList[i] = kgraph.NewObservation(s)
	}
	partitioning := kgraph.NewPartitioning(obsList...)

	newAlphabet, err := kgraph.NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}

	return kgraph.NewGame(
		stateList,
		initial,
		newAlphabet,
		transitions,
		[]*kgraph.Partitioning{partitioning},
		kgraph.WithAttributes(g.Attributes()),
	)
}
