package iso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HelmerNylen/mkbsc/internal/examples"
	"github.com/HelmerNylen/mkbsc/internal/iso"
	"github.com/HelmerNylen/mkbsc/internal/kbsc"
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

func TestCheck_GameIsIsomorphicToItself(t *testing.T) {
	g, err := examples.Wagon()
	require.NoError(t, err)

	assert.True(t, iso.Check(g, g, false))
	assert.True(t, iso.Check(g, g, true))
}

func TestCheck_DifferentPlayerCountsAreNotIsomorphic(t *testing.T) {
	g, err := examples.Wagon()
	require.NoError(t, err)

	proj0, err := g.Project(0)
	require.NoError(t, err)

	assert.False(t, iso.Check(g, proj0, false))
}

func TestCheck_StructurallySameButObservationsDiffer(t *testing.T) {
	// Two independently-interned copies of a two-state, one-action cycle,
	// with the single player's grouping {0,1} in one and {0}|{1} in the
	// other: structurally isomorphic (same edges under relabelling) but not
	// once observations are folded in.
	build := func(splitDifferently bool) *kgraph.Game {
		in := kvalue.NewInterner()
		s0 := in.Atom(kvalue.IntAtom(0))
		s1 := in.Atom(kvalue.IntAtom(1))
		wait := kvalue.StringAtom("wait")
		alphabet, err := kgraph.NewAlphabet([]kvalue.Atom{wait})
		require.NoError(t, err)
		transitions := []*kgraph.Transition{
			kgraph.NewTransition(s0, kgraph.JointAction{wait}, s1),
			kgraph.NewTransition(s1, kgraph.JointAction{wait}, s0),
		}
		var partitioning *kgraph.Partitioning
		if splitDifferently {
			partitioning = kgraph.NewPartitioning(kgraph.NewObservation(s0), kgraph.NewObservation(s1))
		} else {
			partitioning = kgraph.NewPartitioning(kgraph.NewObservation(s0, s1))
		}
		g, err := kgraph.NewGame([]kgraph.State{s0, s1}, s0, alphabet, transitions, []*kgraph.Partitioning{partitioning})
		require.NoError(t, err)
		return g
	}

	grouped := build(false)
	split := build(true)

	assert.True(t, iso.Check(grouped, split, false))
	assert.False(t, iso.Check(grouped, split, true))
}

func TestCheck_KBSCResultIsIsomorphicToItself(t *testing.T) {
	// The magiian22 product is a single KBSC application past the base
	// game; the produced game must be isomorphic to itself under both
	// notions of isomorphism.
	g, err := examples.Magiian22()
	require.NoError(t, err)

	once, err := kbsc.KBSC(g)
	require.NoError(t, err)

	assert.True(t, iso.Check(once, once, false))
	assert.True(t, iso.Check(once, once, true))
}
