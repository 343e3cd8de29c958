package kvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

func TestInterner_AtomIdentity(t *testing.T) {
	in := kvalue.NewInterner()

	a1 := in.Atom(kvalue.IntAtom(1))
	a2 := in.Atom(kvalue.IntAtom(1))
	a3 := in.Atom(kvalue.IntAtom(2))

	assert.Same(t, a1, a2, "interning the same atom twice must return the same pointer")
	assert.NotSame(t, a1, a3)
	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(a3))
}

func TestInterner_StringAndIntAtomsDontCollide(t *testing.T) {
	in := kvalue.NewInterner()

	a := in.Atom(kvalue.IntAtom(1))
	b := in.Atom(kvalue.StringAtom("1"))

	assert.False(t, a.Equal(b))
}

func TestInterner_InfoIdentityIgnoresGroupOrderAndDuplicates(t *testing.T) {
	in := kvalue.NewInterner()

	s0 := in.Atom(kvalue.IntAtom(0))
	s1 := in.Atom(kvalue.IntAtom(1))

	v1 := in.InfoSingleton([]*kvalue.Value{s0, s1})
	v2 := in.InfoSingleton([]*kvalue.Value{s1, s0, s1})

	assert.Same(t, v1, v2, "knowledge groups are sets: order and duplicates must not matter")
}

func TestInterner_InfoPanicsOnEmptyGroup(t *testing.T) {
	in := kvalue.NewInterner()
	assert.Panics(t, func() {
		in.Info([]*kvalue.Value{})
	})
}

func TestValue_GroupAndPlayerCount(t *testing.T) {
	in := kvalue.NewInterner()
	s0 := in.Atom(kvalue.IntAtom(0))
	s1 := in.Atom(kvalue.IntAtom(1))
	s2 := in.Atom(kvalue.IntAtom(2))

	v := in.Info([]*kvalue.Value{s0, s1}, []*kvalue.Value{s2})

	require.False(t, v.IsAtom())
	assert.Equal(t, 2, v.PlayerCount())
	assert.Len(t, v.Group(0), 2)
	assert.Len(t, v.Group(1), 1)
}

func TestValue_ConsistentBase_Atom(t *testing.T) {
	in := kvalue.NewInterner()
	s0 := in.Atom(kvalue.IntAtom(0))

	base := s0.ConsistentBase()

	require.Len(t, base, 1)
	assert.Same(t, s0, base[0])
}

func TestValue_ConsistentBase_InfoIntersectsAcrossPlayers(t *testing.T) {
	in := kvalue.NewInterner()
	s0 := in.Atom(kvalue.IntAtom(0))
	s1 := in.Atom(kvalue.IntAtom(1))
	s2 := in.Atom(kvalue.IntAtom(2))

	// Player 0 thinks {s0, s1, s2}; player 1 thinks {s0, s1}.
	v := in.Info([]*kvalue.Value{s0, s1, s2}, []*kvalue.Value{s0, s1})

	base := v.ConsistentBase()
	assert.Len(t, base, 2)
	assert.True(t, v.IsConsistent())
}

// Regression: at nesting depth >= 2 the frontier held by ConsistentBase can
// contain more than one candidate value, and intersecting "union per player
// across candidates, then across players" (wrong) diverges from
// "intersection across every (candidate, player) pair at once" (correct).
// Here A and B only agree on x once every one of their four groups is
// considered together; the buggy formula lets y survive because it unions
// A's and B's groups player by player before intersecting across players.
func TestValue_ConsistentBase_IntersectsAcrossCandidatesAndPlayersAtDepthTwo(t *testing.T) {
	in := kvalue.NewInterner()
	x := in.Atom(kvalue.IntAtom(100))
	y := in.Atom(kvalue.IntAtom(101))
	z := in.Atom(kvalue.IntAtom(102))
	w := in.Atom(kvalue.IntAtom(103))
	q := in.Atom(kvalue.IntAtom(104))

	a := in.Info([]*kvalue.Value{x, y, z}, []*kvalue.Value{x, y})
	b := in.Info([]*kvalue.Value{x, w}, []*kvalue.Value{x, y, q})
	v := in.Info([]*kvalue.Value{a, b})

	base := v.ConsistentBase()
	require.Len(t, base, 1, "union-then-intersect would wrongly let y survive alongside x")
	assert.Equal(t, x.Key(), base[0].Key())
}

func TestValue_Nice_AtomAndInfo(t *testing.T) {
	in := kvalue.NewInterner()
	s0 := in.Atom(kvalue.IntAtom(0))
	s1 := in.Atom(kvalue.IntAtom(1))

	assert.Equal(t, "0", s0.Nice())

	v := in.InfoSingleton([]*kvalue.Value{s0, s1})
	nice := v.Nice()
	assert.Contains(t, nice, "0")
	assert.Contains(t, nice, "1")
}

func TestValue_Isocheck_CollapsesStructurallyDifferentEquivalentBases(t *testing.T) {
	in1 := kvalue.NewInterner()
	in2 := kvalue.NewInterner()

	s0a := in1.Atom(kvalue.IntAtom(0))
	s1a := in1.Atom(kvalue.IntAtom(1))
	va := in1.InfoSingleton([]*kvalue.Value{s0a, s1a})

	s0b := in2.Atom(kvalue.IntAtom(0))
	s1b := in2.Atom(kvalue.IntAtom(1))
	s2b := in2.Atom(kvalue.IntAtom(2))
	vb := in2.Info([]*kvalue.Value{s0b, s1b, s2b}, []*kvalue.Value{s0b, s1b})

	assert.Equal(t, va.Isocheck(), vb.Isocheck())
}

func TestValue_EqualAcrossInterners(t *testing.T) {
	in1 := kvalue.NewInterner()
	in2 := kvalue.NewInterner()

	a := in1.Atom(kvalue.IntAtom(5))
	b := in2.Atom(kvalue.IntAtom(5))

	assert.NotSame(t, a, b)
	assert.True(t, a.Equal(b), "structural equality must hold across independent interners")
	assert.Equal(t, a.Key(), b.Key())
}
