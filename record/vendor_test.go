package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileGenericAcceptsAllStandardCodes(t *testing.T) {
	for _, code := range [][]byte{[]byte("N"), []byte("T"), []byte("R"), []byte("E"), []byte("Q"), []byte("I"), []byte("F")} {
		assert.True(t, ProfileGeneric.ValidateTerminator(code), "code %s", code)
	}
}

// TestProfileC111RestrictsToNormalAndError reflects the Roche c111's
// narrower termination code alphabet: it only ever emits N or E.
func TestProfileC111RestrictsToNormalAndError(t *testing.T) {
	assert.True(t, ProfileC111.ValidateTerminator([]byte("N")))
	assert.True(t, ProfileC111.ValidateTerminator([]byte("E")))
	assert.False(t, ProfileC111.ValidateTerminator([]byte("T")))
	assert.False(t, ProfileC111.ValidateTerminator([]byte("Q")))
}

func TestVendorProfileString(t *testing.T) {
	assert.Equal(t, "generic", ProfileGeneric.String())
	assert.Equal(t, "c111", ProfileC111.String())
}
