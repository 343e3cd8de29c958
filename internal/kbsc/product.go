package kbsc

import (
	"strings"

	"github.com/HelmerNylen/mkbsc/internal/kgraph"
	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

// synchronousProduct combines the base game and each player's already
// single-player-KBSC'd projection into the multiplayer MKBSC result
// (§4.4). A product state is a tuple of per-player knowledge states; it is
// kept only while every player's current knowledge sets agree on at least
// one common base-game state (the consistency filter), and a transition
// between two product states is kept only if the base game itself offers
// a witness edge under the same joint action between the two states'
// common grounds (the witness-edge filter) -- without this second filter,
// the product can retain transitions no player coalition could actually
// observe happening (Scenario B).
func synchronousProduct(base *kgraph.Game, perPlayer []*kgraph.Game) (*kgraph.Game, error) {
	n := len(perPlayer)
	interner := kvalue.NewInterner()

	initialComponents := make([]kgraph.State, n)
	for i, pg := range perPlayer {
		initialComponents[i] = pg.Initial()
	}
	initialPossible := consistent(initialComponents)
	if len(initialPossible) == 0 {
		return nil, &productInconsistentError{}
	}

	productOf := map[string]kgraph.State{
		tupleKey(initialComponents): interner.Info(groupsOf(initialComponents)...),
	}
	componentsOf := map[string][]kgraph.State{
		tupleKey(initialComponents): initialComponents,
	}

	type frontierItem struct {
		components []kgraph.State
		possible   []kgraph.State
	}
	queue := []frontierItem{{components: initialComponents, possible: initialPossible}}
	visited := map[string]bool{}
	var transitions []*kgraph.Transition

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		k := tupleKey(item.components)
		if visited[k] {
			continue
		}
		visited[k] = true

		for _, jointAction := range base.Alphabet().Permute() {
			possiblePost := base.Post(jointAction, item.possible)
			if len(possiblePost) == 0 {
				continue
			}

			perPlayerPost := make([][]kgraph.State, n)
			for i := range perPlayer {
				raw := perPlayer[i].Post(kgraph.JointAction{jointAction[i]}, []kgraph.State{item.components[i]})
				perPlayerPost[i] = filterIntersecting(raw, possiblePost)
			}

			for _, combo := range cartesianProduct(perPlayerPost) {
				possiblePrime := consistent(combo)
				if len(possiblePrime) == 0 {
					continue
				}

				comboKey := tupleKey(combo)
				productTo, known := productOf[comboKey]
				if !known {
					productTo = interner.Info(groupsOf(combo)...)
					productOf[comboKey] = productTo
					componentsOf[comboKey] = combo
					queue = append(queue, frontierItem{components: combo, possible: possiblePrime})
				}

				if !intersectNonEmpty(possiblePost, possiblePrime) {
					continue
				}

				transitions = append(transitions, kgraph.NewTransition(productOf[k], jointAction, productTo))
			}
		}
	}

	stateList := make([]kgraph.State, 0, len(productOf))
	for _, s := range productOf {
		stateList = append(stateList, s)
	}

	partitionings := make([]*kgraph.Partitioning, n)
	for player := 0; player < n; player++ {
		buckets := map[string][]kgraph.State{}
		var order []string
		for _, s := range stateList {
			gk := groupSetKey(s.Group(player))
			if _, ok := buckets[gk]; !ok {
				order = append(order, gk)
			}
			buckets[gk] = append(buckets[gk], s)
		}
		obsList := make([]*kgraph.Observation, 0, len(buckets))
		for _, gk := range order {
			obsList = append(obsList, kgraph.NewObservation(buckets[gk]...))
		}
		partitionings[player] = kgraph.NewPartitioning(obsList...)
	}

	return kgraph.NewGame(
		stateList,
		productOf[tupleKey(initialComponents)],
		base.Alphabet(),
		transitions,
		partitionings,
		kgraph.WithAttributes(base.Attributes()),
	)
}

// consistent returns the base-game states every component's knowledge set
// agrees are possible: the intersection of components[i].Group(0) across
// all players.
func consistent(components []kgraph.State) []kgraph.State {
	if len(components) == 0 {
		return nil
	}
	result := components[0].Group(0)
	for i := 1; i < len(components); i++ {
		result = intersect(result, components[i].Group(0))
		if len(result) == 0 {
			return nil
		}
	}
	return result
}

func groupsOf(components []kgraph.State) [][]*kvalue.Value {
	groups := make([][]*kvalue.Value, len(components))
	for i, c := range components {
		groups[i] = c.Group(0)
	}
	return groups
}

func groupSetKey(group []*kvalue.Value) string {
	parts := make([]string, len(group))
	for i, v := range group {
		parts[i] = v.Key()
	}
	return strings.Join(parts, ",")
}

type productInconsistentError struct{}

func (e *productInconsistentError) Error() string {
	return "synchronous product: initial states of the per-player projections share no common ground state"
}
