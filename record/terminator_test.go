package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTerminator(t *testing.T, text string) *MessageTerminator {
	t.Helper()
	buf := append([]byte{0x02, '1'}, []byte(text)...)
	rec, err := Parse(buf)
	require.NoError(t, err)
	l, err := AsMessageTerminator(rec, DefaultDelimiters())
	require.NoError(t, err)
	return l
}

// TestMessageTerminatorEmptyCodeIsNormal covers "A MessageTerminator with
// empty termination code is semantically equivalent to N."
func TestMessageTerminatorEmptyCodeIsNormal(t *testing.T) {
	l := parseTerminator(t, "L|1|")
	assert.True(t, IsAbsent(l.TerminationCode()))
	assert.Equal(t, "N", string(l.NormalizedTerminationCode()))
}

func TestMessageTerminatorExplicitCode(t *testing.T) {
	l := parseTerminator(t, "L|1|T")
	assert.Equal(t, "T", string(l.NormalizedTerminationCode()))
}

func TestMessageTerminatorSequenceNumberDefaultsToOne(t *testing.T) {
	l := parseTerminator(t, "L")
	assert.Equal(t, "1", string(l.SequenceNumber()))
}
