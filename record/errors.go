package record

import "errors"

// Sentinel errors returned by Parse. Callers should compare with errors.Is.
var (
	// ErrInvalidInput is returned when a buffer cannot possibly be a
	// record: it is empty or shorter than 3 octets.
	ErrInvalidInput = errors.New("record: invalid input")

	// ErrMalformedRecord is returned when the byte at position 2 is not
	// one of the recognized record-type letters.
	ErrMalformedRecord = errors.New("record: malformed record")
)
