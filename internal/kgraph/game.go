package kgraph

import (
	"strconv"

	"github.com/HelmerNylen/mkbsc/internal/kerrors"
)

// Game is a labelled multi-digraph with per-player observation
// partitionings: (States, s0, Sigma, T, Pi). Once constructed, a Game is
// immutable; KBSC and the synchronous product always build a fresh Game
// rather than mutating one in place.
type Game struct {
	states        []State
	initial       State
	alphabet      *Alphabet
	transitions   []*Transition
	partitionings []*Partitioning
	attributes    map[string]any

	adjacency map[State][]*Transition // outgoing transitions, built once at construction
}

type gameOptions struct {
	validate         bool
	removeUnreachable bool
	attributes       map[string]any
}

// GameOption configures NewGame.
type GameOption func(*gameOptions)

// WithValidation toggles invariant validation (on by default). Callers
// that already guarantee the invariants by construction can pass
// WithValidation(false) to skip the O(|T|+|S|) pass.
func WithValidation(validate bool) GameOption {
	return func(o *gameOptions) { o.validate = validate }
}

// WithRemoveUnreachable prunes states unreachable from the initial state
// (and their incident transitions) before the Game is finalized, matching
// the single-player KBSC's remove_unreachable=True behaviour.
func WithRemoveUnreachable() GameOption {
	return func(o *gameOptions) { o.removeUnreachable = true }
}

// WithAttributes attaches free-form graph attributes (surfaced verbatim
// in the game file's Attributes: line and in Graphviz export).
func WithAttributes(attrs map[string]any) GameOption {
	return func(o *gameOptions) { o.attributes = attrs }
}

// NewGame constructs a Game, validating its invariants by default: every
// transition's endpoints are in States, every action component is in the
// corresponding alphabet, every partitioning is a valid partition of
// States, and the initial state is in States.
func NewGame(states []State, initial State, alphabet *Alphabet, transitions []*Transition, partitionings []*Partitioning, opts ...GameOption) (*Game, error) {
	o := gameOptions{validate: true}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Game{
		states:        append([]State(nil), states...),
		initial:       initial,
		alphabet:      alphabet,
		transitions:   append([]*Transition(nil), transitions...),
		partitionings: append([]*Partitioning(nil), partitionings...),
		attributes:    o.attributes,
	}

	if o.removeUnreachable {
		g.pruneUnreachable()
	}

	g.buildAdjacency()

	if o.validate {
		if err := g.validate(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Game) buildAdjacency() {
	g.adjacency = make(map[State][]*Transition, len(g.states))
	for _, t := range g.transitions {
		g.adjacency[t.From] = append(g.adjacency[t.From], t)
	}
}

func (g *Game) validate() error {
	stateSet := make(map[State]bool, len(g.states))
	for _, s := range g.states {
		stateSet[s] = true
	}
	if !stateSet[g.initial] {
		return &kerrors.ValidationError{Reason: "initial state is not in the state set"}
	}
	for _, t := range g.transitions {
		if !stateSet[t.From] || !stateSet[t.To] {
			return &kerrors.ValidationError{Reason: "transition endpoint not in state set"}
		}
		if len(t.Action) != g.alphabet.PlayerCount() {
			return &kerrors.ValidationError{Reason: "transition joint action arity does not match player count"}
		}
		for player, action := range t.Action {
			if !g.alphabet.Contains(player, action) {
				return &kerrors.ValidationError{Reason: "transition action not in alphabet for player " + strconv.Itoa(player)}
			}
		}
	}
	if len(g.partitionings) != g.alphabet.PlayerCount() {
		return &kerrors.ValidationError{Reason: "number of partitionings does not match player count"}
	}
	for _, p := range g.partitionings {
		if !p.Valid(g.states) {
			return &kerrors.ValidationError{Reason: "partitioning is not a valid partition of the state set"}
		}
	}
	return nil
}

// States returns the game's state set.
func (g *Game) States() []State { return g.states }

// Initial returns the initial state.
func (g *Game) Initial() State { return g.initial }

// Alphabet returns the game's joint alphabet.
func (g *Game) Alphabet() *Alphabet { return g.alphabet }

// PlayerCount returns the number of players.
func (g *Game) PlayerCount() int { return g.alphabet.PlayerCount() }

// Transitions returns the game's transitions.
func (g *Game) Transitions() []*Transition { return g.transitions }

// Partitioning returns player i's partitioning.
func (g *Game) Partitioning(player int) *Partitioning { return g.partitionings[player] }

// Partitionings returns every player's partitioning, in player order.
func (g *Game) Partitionings() []*Partitioning { return g.partitionings }

// Attributes returns the game's free-form graph attributes (never nil).
func (g *Game) Attributes() map[string]any {
	if g.attributes == nil {
		return map[string]any{}
	}
	return g.attributes
}

// Post returns the states reachable from any state in from by taking
// action. For single-player games callers may pass a one-element action.
func (g *Game) Post(action JointAction, from []State) []State {
	seen := make(map[string]State)
	for _, s := range from {
		for _, t := range g.adjacency[s] {
			if t.Action.Equal(action) {
				seen[t.To.Key()] = t.To
			}
		}
	}
	out := make([]State, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	return out
}

// PostOne is a convenience for Post from a single state.
func (g *Game) PostOne(action JointAction, from State) []State {
	return g.Post(action, []State{from})
}

// Reachable returns every state reachable from the given state along any
// transition, not including the starting state itself.
func (g *Game) Reachable(from State) []State {
	visited := map[string]bool{from.Key(): true}
	queue := []State{from}
	var result []State
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range g.adjacency[cur] {
			if !visited[t.To.Key()] {
				visited[t.To.Key()] = true
				result = append(result, t.To)
				queue = append(queue, t.To)
			}
		}
	}
	return result
}

func (g *Game) pruneUnreachable() {
	reachable := map[string]bool{g.initial.Key(): true}
	queue := []State{g.initial}
	adjacency := make(map[State][]*Transition, len(g.states))
	for _, t := range g.transitions {
		adjacency[t.From] = append(adjacency[t.From], t)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range adjacency[cur] {
			if !reachable[t.To.Key()] {
				reachable[t.To.Key()] = true
				queue = append(queue, t.To)
			}
		}
	}

	keptStates := make([]State, 0, len(g.states))
	for _, s := range g.states {
		if reachable[s.Key()] {
			keptStates = append(keptStates, s)
		}
	}
	keptTransitions := make([]*Transition, 0, len(g.transitions))
	for _, t := range g.transitions {
		if reachable[t.From.Key()] && reachable[t.To.Key()] {
			keptTransitions = append(keptTransitions, t)
		}
	}
	g.states = keptStates
	g.transitions = keptTransitions

	for _, p := range g.partitionings {
		keptObs := make([]*Observation, 0, len(p.observations))
		for _, obs := range p.observations {
			var keptMembers []State
			for _, s := range obs.States() {
				if reachable[s.Key()] {
					keptMembers = append(keptMembers, s)
				}
			}
			if len(keptMembers) > 0 {
				keptObs = append(keptObs, NewObservation(keptMembers...))
			}
		}
		p.observations = keptObs
	}
}
