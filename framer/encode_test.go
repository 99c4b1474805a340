package framer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFitsExactlyAtMaxPayload(t *testing.T) {
	text := bytes.Repeat([]byte("x"), DefaultMaxPayload)
	frames := Split(text, DefaultMaxPayload)
	require.Len(t, frames, 1)
	assert.True(t, frames[0].Last)
	assert.Equal(t, text, frames[0].Payload)
}

func TestSplitOneByteOverMaxProducesTwoFramesFirstETB(t *testing.T) {
	text := bytes.Repeat([]byte("x"), DefaultMaxPayload+1)
	frames := Split(text, DefaultMaxPayload)
	require.Len(t, frames, 2)
	assert.False(t, frames[0].Last)
	assert.True(t, frames[1].Last)
}

func TestSplitPrefersRecordBoundary(t *testing.T) {
	// A CR falls inside the max-payload window; the split should land on
	// it rather than cutting mid-record.
	first := bytes.Repeat([]byte("a"), 10)
	second := bytes.Repeat([]byte("b"), 10)
	text := append(append(append([]byte{}, first...), '\r'), second...)

	frames := Split(text, 15)
	require.Len(t, frames, 2)
	assert.Equal(t, append(first, '\r'), frames[0].Payload)
	assert.Equal(t, second, frames[1].Payload)
}

func TestSplitFrameNumbersIncrementModEightStartingAtOne(t *testing.T) {
	text := bytes.Repeat([]byte("x"), DefaultMaxPayload*9)
	frames := Split(text, DefaultMaxPayload)
	want := "123456701"
	for i, f := range frames {
		assert.Equal(t, want[i], f.Number)
	}
}

func TestEncodeMessageRoundTripsThroughDecode(t *testing.T) {
	text := []byte("1H|\\^&|||sender\r2P|1\r3L|1|N\r")
	encoded := EncodeMessage(text, 10)
	require.True(t, len(encoded) > 1)

	var asm Assembler
	for _, buf := range encoded {
		f, err := Decode(buf)
		require.NoError(t, err)
		asm.Append(f)
		if asm.Done(f) {
			break
		}
	}
	assert.Equal(t, text, asm.Bytes())
}
