package framer

import (
	"testing"

	"github.com/labgw/astmgw/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDecodeMinimalBody(t *testing.T) {
	// A minimal frame: STX '1' "Test" ETX 'D' '4' CR LF.
	buf := []byte{0x02, '1', 'T', 'e', 's', 't', 0x03, 'D', '4', 0x0D, 0x0A}
	f, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, byte('1'), f.Number)
	assert.Equal(t, []byte("Test"), f.Payload)
	assert.True(t, f.Last)
}

func TestDecodeHeaderFrame(t *testing.T) {
	// A Header frame captured from a Roche c111, checksum 'F' 'D'.
	payload := "H|\\^&|||c111^Roche^c111^4.2.2.1730^1^13085|||||host|PCUPL^BATCH|P|1|20230525164933\r"
	buf := append([]byte{0x02, '1'}, payload...)
	buf = append(buf, 0x17, 'F', 'D', 0x0D, 0x0A)

	f, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, byte('1'), f.Number)
	assert.False(t, f.Last, "ETB frame is not the last frame")
	assert.Equal(t, []byte(payload), f.Payload)
}

func TestDecodeRejectsBadLeadingByte(t *testing.T) {
	buf := []byte{0x00, '1', 'x', 0x03, '0', '0', 0x0D, 0x0A}
	_, err := Decode(buf)
	assert.ErrorIs(t, err, ErrBadFrame)
}

func TestDecodeRejectsBadTrailer(t *testing.T) {
	buf := []byte{0x02, '1', 'x', 0x03, '0', '0', 0x0D, 'X'}
	_, err := Decode(buf)
	assert.ErrorIs(t, err, ErrBadFrame)
}

func TestDecodeRejectsBadFrameNumber(t *testing.T) {
	buf := []byte{0x02, '8', 'x', 0x03, '0', '0', 0x0D, 0x0A}
	_, err := Decode(buf)
	assert.ErrorIs(t, err, ErrBadFrame)
}

func TestDecodeRejectsBadTerminator(t *testing.T) {
	buf := []byte{0x02, '1', 'x', 'y', '0', '0', 0x0D, 0x0A}
	_, err := Decode(buf)
	assert.ErrorIs(t, err, ErrBadFrame)
}

func TestDecodeRejectsChecksumMismatch(t *testing.T) {
	buf := []byte{0x02, '1', 'T', 'e', 's', 't', 0x03, 'F', 'F', 0x0D, 0x0A}
	_, err := Decode(buf)
	assert.ErrorIs(t, err, ErrBadFrame)
}

func TestDecodeAcceptsChecksumCaseInsensitive(t *testing.T) {
	buf := []byte{0x02, '1', 'T', 'e', 's', 't', 0x03, 'd', '4', 0x0D, 0x0A}
	_, err := Decode(buf)
	assert.NoError(t, err)
}

func TestDecodeAcceptsPayloadWithoutCR(t *testing.T) {
	buf := []byte{0x02, '1', 'n', 'o', 'c', 'r', 0x03, '9', '1', 0x0D, 0x0A}
	f, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("nocr"), f.Payload)
}

func TestEncodeThenDecodeRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.ByteRange(0x20, 0x7e), 0, 64).Draw(t, "payload")
		number := rapid.SampledFrom([]byte("01234567")).Draw(t, "number")
		last := rapid.Bool().Draw(t, "last")

		encoded := Encode(Frame{Number: number, Payload: payload, Last: last})
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, number, decoded.Number)
		assert.Equal(t, payload, decoded.Payload)
		assert.Equal(t, last, decoded.Last)
	})
}

func TestEncodeChecksumAlwaysVerifies(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "payload")
		encoded := Encode(Frame{Number: '1', Payload: payload, Last: true})
		_, err := Decode(encoded)
		assert.NoError(t, err)
	})
}

func TestNextNumberWrapsModEight(t *testing.T) {
	assert.Equal(t, byte('2'), NextNumber('1'))
	assert.Equal(t, byte('0'), NextNumber('7'))
	assert.Equal(t, byte('1'), NextNumber(0))
}

func TestDecodeUsesETBForIntermediateFrame(t *testing.T) {
	buf := Encode(Frame{Number: '1', Payload: []byte("partial"), Last: false})
	assert.Equal(t, byte(control.ETB), buf[len(buf)-5])
}
