package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitRecordsFullMessageInOrder concatenates a Header, Patient,
// TestOrder, Result, Comment, and MessageTerminator into one frame
// payload; it must split into exactly six records in order, with the
// MessageTerminator's normalized termination code equal to N.
func TestSplitRecordsFullMessageInOrder(t *testing.T) {
	payload := []byte(
		"H|\\^&|||c111^Roche^c111^4.2.2.1730^1^13085|||||host|PCUPL^BATCH|P|1|20230525164933\r" +
			"P|1||||\r" +
			"O|1|SID001||^^^GLU|R||||||N||||||||||||O\r" +
			"R|1|^^^GLU|5.5|mmol/L|3.9-6.1|N|||F\r" +
			"C|1|I|looks hemolyzed\r" +
			"L|1|",
	)

	records, err := SplitRecords('1', payload)
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, KindHeader, records[0].Kind())
	assert.Equal(t, KindPatient, records[1].Kind())
	assert.Equal(t, KindTestOrder, records[2].Kind())
	assert.Equal(t, KindResult, records[3].Kind())
	assert.Equal(t, KindComment, records[4].Kind())
	assert.Equal(t, KindMessageTerminator, records[5].Kind())

	l, err := AsMessageTerminator(records[5], DefaultDelimiters())
	require.NoError(t, err)
	assert.Equal(t, "N", string(l.NormalizedTerminationCode()))
}

func TestSplitRecordsDropsTrailingEmptySegment(t *testing.T) {
	records, err := SplitRecords('1', []byte("H|\\^&\rL|1|N\r"))
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestSplitRecordsSingleRecordNoTrailingCR(t *testing.T) {
	records, err := SplitRecords('1', []byte("L|1|N"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, KindMessageTerminator, records[0].Kind())
}

func TestSplitRecordsPropagatesMalformedRecordError(t *testing.T) {
	_, err := SplitRecords('1', []byte("Z|bad\r"))
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
