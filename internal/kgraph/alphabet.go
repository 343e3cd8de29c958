package kgraph

import (
	"strconv"

	"github.com/HelmerNylen/mkbsc/internal/kerrors"
	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

// JointAction is an n-tuple with one action per player, alphaᵢ ∈ Σᵢ.
type JointAction []kvalue.Atom

// Equal reports whether two joint actions carry the same action in every
// component; this is the edge-match contract used by isomorphism (§4.6)
// and by transition lookup during the synchronous product.
func (j JointAction) Equal(other JointAction) bool {
	if len(j) != len(other) {
		return false
	}
	for i := range j {
		if !j[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// String renders a joint action the way the original labels edges:
// bare for a single player, parenthesized-comma-joined otherwise.
func (j JointAction) String() string {
	if len(j) == 1 {
		return j[0].String()
	}
	s := "("
	for i, a := range j {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// Alphabet represents the possible joint actions of the player coalition:
// one finite, duplicate-free action list per player.
type Alphabet struct {
	perPlayer [][]kvalue.Atom
}

// NewAlphabet builds an alphabet from one action list per player,
// rejecting duplicate actions within any single player's list.
func NewAlphabet(perPlayer ...[]kvalue.Atom) (*Alphabet, error) {
	for player, actions := range perPlayer {
		seen := make(map[string]bool, len(actions))
		for _, a := range actions {
			k := a.String()
			if seen[k] {
				return nil, &kerrors.ValidationError{Reason: "player " + strconv.Itoa(player) + " alphabet contains duplicate action " + k}
			}
			seen[k] = true
		}
	}
	copied := make([][]kvalue.Atom, len(perPlayer))
	for i, actions := range perPlayer {
		copied[i] = append([]kvalue.Atom(nil), actions...)
	}
	return &Alphabet{perPlayer: copied}, nil
}

// PlayerCount returns the number of per-player alphabets.
func (a *Alphabet) PlayerCount() int { return len(a.perPlayer) }

// Actions returns player i's action list.
func (a *Alphabet) Actions(player int) []kvalue.Atom { return a.perPlayer[player] }

// Contains reports whether action is present in player i's alphabet.
func (a *Alphabet) Contains(player int, action kvalue.Atom) bool {
	for _, candidate := range a.perPlayer[player] {
		if candidate.Equal(action) {
			return true
		}
	}
	return false
}

// Permute generates every possible joint action: one element taken from
// each player's action list, in the product order.
func (a *Alphabet) Permute() []JointAction {
	if len(a.perPlayer) == 0 {
		return nil
	}
	for _, actions := range a.perPlayer {
		if len(actions) == 0 {
			return nil
		}
	}
	total := 1
	for _, actions := range a.perPlayer {
		total *= len(actions)
	}
	result := make([]JointAction, 0, total)
	indices := make([]int, len(a.perPlayer))
	for {
		joint := make(JointAction, len(a.perPlayer))
		for i, idx := range indices {
			joint[i] = a.perPlayer[i][idx]
		}
		result = append(result, joint)

		i := 0
		indices[i]++
		for i < len(indices) && indices[i] >= len(a.perPlayer[i]) {
			indices[i] = 0
			i++
			if i == len(indices) {
				return result
			}
			indices[i]++
		}
	}
}
