package record

import "fmt"

// wrongKind reports a typed-accessor call against a Record of a different
// kind than expected, e.g. AsPatient on a Result record.
func wrongKind(want, got Kind) error {
	return fmt.Errorf("record: expected %s, got %s: %w", want, got, ErrMalformedRecord)
}
