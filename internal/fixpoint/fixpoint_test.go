package fixpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HelmerNylen/mkbsc/internal/examples"
	"github.com/HelmerNylen/mkbsc/internal/fixpoint"
)

// Scenario E: iterating magiian22's single-player projections must
// eventually stabilise, reporting how the fixpoint was reached.
func TestIterateUntilIsomorphic_Magiian22Stabilises(t *testing.T) {
	g, err := examples.Magiian22()
	require.NoError(t, err)

	proj0, err := g.Project(0)
	require.NoError(t, err)

	result, err := fixpoint.IterateUntilIsomorphic(proj0, 10)
	require.NoError(t, err)

	// The loop must not stop at a structure-only match: it keeps
	// iterating past StableStructureOnly until observations agree too.
	assert.Equal(t, fixpoint.StableWithObservations, result.Status)
	assert.Equal(t, len(result.Games), len(result.Sizes))
	assert.GreaterOrEqual(t, len(result.Games), 2)
}

// Regression: a status of StableStructureOnly recorded on some iteration
// must not terminate the loop early.
func TestIterateUntilIsomorphic_StructureOnlyStabilityDoesNotStopTheLoop(t *testing.T) {
	g, err := examples.Wagon()
	require.NoError(t, err)

	result, err := fixpoint.IterateUntilIsomorphic(g, 1000)
	require.NoError(t, err)

	assert.Equal(t, fixpoint.StableWithObservations, result.Status)
	// If the loop stopped at the first structure-only match it would
	// report far fewer iterations than it takes to reach true stability.
	assert.Greater(t, len(result.Games), 1)
}

func TestIterateUntilIsomorphic_RespectsIterationLimit(t *testing.T) {
	g, err := examples.Wagon()
	require.NoError(t, err)

	result, err := fixpoint.IterateUntilIsomorphic(g, 1)
	require.NoError(t, err)

	// One call to KBSC plus the seed iteration.
	assert.Len(t, result.Games, 2)
}

func TestIterateUntilIsomorphic_WithProgressReportsEveryIteration(t *testing.T) {
	g, err := examples.Wagon()
	require.NoError(t, err)

	var reported []int
	result, err := fixpoint.IterateUntilIsomorphic(g, 3, fixpoint.WithProgress(func(iteration, size int, status fixpoint.Status) {
		reported = append(reported, iteration)
	}))
	require.NoError(t, err)

	assert.Equal(t, len(result.Games), len(reported))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "NOT_STABLE", fixpoint.NotStable.String())
	assert.Equal(t, "STABLE_STRUCTURE_ONLY", fixpoint.StableStructureOnly.String())
	assert.Equal(t, "STABLE_WITH_OBSERVATIONS", fixpoint.StableWithObservations.String())
}
