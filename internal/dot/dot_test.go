package dot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HelmerNylen/mkbsc/internal/dot"
	"github.com/HelmerNylen/mkbsc/internal/examples"
	"github.com/HelmerNylen/mkbsc/internal/kbsc"
)

func TestWrite_ProducesValidDigraphSkeleton(t *testing.T) {
	g, err := examples.Wagon()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, g, dot.Nice))

	out := buf.String()
	assert.Contains(t, out, "digraph mkbsc {")
	assert.Contains(t, out, "__sentinel__")
	assert.Contains(t, out, "obs0")
	assert.Contains(t, out, "obs1")

	// One node line per state, plus one labelled edge line per transition.
	assert.Equal(t, len(g.States())+len(g.Transitions()), strings.Count(out, "[label="))
}

func TestWrite_RenderingsProduceDistinctLabels(t *testing.T) {
	base, err := examples.Magiian22()
	require.NoError(t, err)
	g, err := kbsc.KBSC(base)
	require.NoError(t, err)

	var nice, verbose, isocheck bytes.Buffer
	require.NoError(t, dot.Write(&nice, g, dot.Nice))
	require.NoError(t, dot.Write(&verbose, g, dot.Verbose))
	require.NoError(t, dot.Write(&isocheck, g, dot.Isocheck))

	assert.NotEqual(t, nice.String(), verbose.String())
	assert.NotEqual(t, nice.String(), isocheck.String())
}
