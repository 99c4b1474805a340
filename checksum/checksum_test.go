package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestComputeMinimalBody(t *testing.T) {
	// Checksummed region of a minimal frame: "1Test" + ETX.
	region := []byte{'1', 'T', 'e', 's', 't', 0x03}
	got := Compute(region)
	assert.Equal(t, [2]byte{'D', '4'}, got)
}

func TestComputeHeaderFrame(t *testing.T) {
	region := []byte("1H|\\^&|||c111^Roche^c111^4.2.2.1730^1^13085|||||host|PCUPL^BATCH|P|1|20230525164933\r")
	region = append(region, 0x17)
	got := Compute(region)
	assert.Equal(t, [2]byte{'F', 'D'}, got)
}

func TestComputeBoundaryValues(t *testing.T) {
	assert.Equal(t, [2]byte{'0', '0'}, Compute(make([]byte, 0)))
	assert.Equal(t, [2]byte{'0', 'A'}, Compute([]byte{10}))
	assert.Equal(t, [2]byte{'F', 'F'}, Compute([]byte{255}))
}

func TestComputeEmptyInputNeverFails(t *testing.T) {
	assert.Equal(t, [2]byte{'0', '0'}, Compute(nil))
}

func TestVerifyCaseInsensitive(t *testing.T) {
	region := []byte{'1', 'T', 'e', 's', 't', 0x03}
	assert.True(t, Verify(region, 'D', '4'))
	assert.True(t, Verify(region, 'd', '4'))
	assert.False(t, Verify(region, 'D', '5'))
}

// Property: Compute always emits exactly two uppercase hex digits, and is
// deterministic for a given input.
func TestComputeAlwaysTwoUppercaseHexDigits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		region := rapid.SliceOf(rapid.Byte()).Draw(t, "region")

		got := Compute(region)
		again := Compute(region)
		assert.Equal(t, got, again, "checksum must be deterministic")

		for _, d := range got {
			assert.Truef(t, (d >= '0' && d <= '9') || (d >= 'A' && d <= 'F'),
				"digit %q not uppercase hex", d)
		}
	})
}

// Property: summing mod 256 is invariant under byte reordering (checksum
// is a plain additive sum, not position-dependent).
func TestComputeInvariantUnderReorder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		region := rapid.SliceOfN(rapid.Byte(), 1, 64).Draw(t, "region")
		reversed := make([]byte, len(region))
		for i, b := range region {
			reversed[len(region)-1-i] = b
		}
		assert.Equal(t, Compute(region), Compute(reversed))
	})
}
