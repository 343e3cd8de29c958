// Package examples provides the seed fixtures referenced throughout the
// test suite (§8): the two-player wagon game (Scenario A) and the
// magiian22 game, whose synchronous product exercises witness-edge
// pruning (Scenario B).
package examples

import (
	"github.com/HelmerNylen/mkbsc/internal/builder"
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

// Wagon builds the two-player wagon game: three positions on a ring. The
// wagon stays put when both players wait or both push; it moves 0->1->2->0
// when only player 1 pushes and 0->2->1->0 when only player 0 pushes. Each
// player can tell only one of the three positions apart from the others.
func Wagon() (*kgraph.Game, error) {
	wait := kvalue.StringAtom("wait")
	push := kvalue.StringAtom("push")
	s0, s1, s2 := kvalue.IntAtom(0), kvalue.IntAtom(1), kvalue.IntAtom(2)

	b := builder.New().
		Initial(s0).
		State(s1).State(s2).
		Alphabet(0, wait, push).
		Alphabet(1, wait, push)

	type t struct {
		from   kvalue.Atom
		a0, a1 kvalue.Atom
		to     kvalue.Atom
	}
	for _, tr := range []t{
		{s0, push, push, s0}, {s0, wait, wait, s0}, {s0, wait, push, s1}, {s0, push, wait, s2},
		{s1, push, push, s1}, {s1, wait, wait, s1}, {s1, wait, push, s2}, {s1, push, wait, s0},
		{s2, push, push, s2}, {s2, wait, wait, s2}, {s2, wait, push, s0}, {s2, push, wait, s1},
	} {
		b.Transition(tr.from, []kvalue.Atom{tr.a0, tr.a1}, tr.to)
	}

	b.Observe(0, s0, s1).Observe(0, s2)
	b.Observe(1, s0, s2).Observe(1, s1)

	return b.Build()
}

// Magiian22 builds a three-state, two-player game with a single shared
// action, whose per-player knowledge never agrees about which of the two
// non-initial states was reached -- the synchronous product must discard
// the product states and transitions that only the (incorrect) unpruned
// construction would keep.
func Magiian22() (*kgraph.Game, error) {
	a := kvalue.StringAtom("a")
	s0, s1, s2 := kvalue.IntAtom(0), kvalue.IntAtom(1), kvalue.IntAtom(2)

	b := builder.New().
		Initial(s1).
		State(s0).State(s2).
		Alphabet(0, a).
		Alphabet(1, a)

	for _, tr := range [][2]kvalue.Atom{{s0, s1}, {s0, s2}, {s1, s0}, {s1, s2}, {s2, s0}, {s2, s1}} {
		b.Transition(tr[0], []kvalue.Atom{a, a}, tr[1])
	}

	b.Observe(0, s0, s1).Observe(0, s2)
	b.Observe(1, s0, s2).Observe(1, s1)

	return b.Build()
}
