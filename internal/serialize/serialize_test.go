package serialize_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HelmerNylen/mkbsc/internal/examples"
	"github.com/HelmerNylen/mkbsc/internal/iso"
	"github.com/HelmerNylen/mkbsc/internal/kbsc"
	"github.com/HelmerNylen/mkbsc/internal/serialize"
)

// Scenario F: writing a game and reading it back must produce an
// isomorphic game, observations included, even once the game carries
// nested knowledge states rather than bare base atoms.
func TestWriteParse_RoundTripWagon(t *testing.T) {
	g, err := examples.Wagon()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.Write(&buf, g))

	parsed, err := serialize.Parse(&buf)
	require.NoError(t, err)

	assert.True(t, iso.Check(g, parsed, true))
	assert.Len(t, parsed.States(), len(g.States()))
	assert.Len(t, parsed.Transitions(), len(g.Transitions()))
}

func TestWriteParse_RoundTripWithNestedKnowledgeStates(t *testing.T) {
	g, err := examples.Magiian22()
	require.NoError(t, err)

	once, err := kbsc.KBSC(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.Write(&buf, once))

	parsed, err := serialize.Parse(&buf)
	require.NoError(t, err)

	assert.True(t, iso.Check(once, parsed, true))
}

func TestParse_RejectsMissingInitialState(t *testing.T) {
	const doc = "Alphabet:\na\n\nBase States:\n0=0\n\nKnowledge States:\n\nObservations:\n0\n\nTransitions:\n"
	_, err := serialize.Parse(bytes.NewBufferString(doc))
	assert.Error(t, err)
}

func TestParse_RejectsMalformedBaseStateLine(t *testing.T) {
	const doc = "Alphabet:\na\n\nBase States:\nnotanumber\n\nKnowledge States:\n\nInitial State: 0\n\nObservations:\n0\n\nTransitions:\n"
	_, err := serialize.Parse(bytes.NewBufferString(doc))
	assert.Error(t, err)
}

func TestWrite_PreservesAttributes(t *testing.T) {
	g, err := examples.Wagon()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.Write(&buf, g))
	assert.Contains(t, buf.String(), "Attributes:")
}
