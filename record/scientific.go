package record

// Scientific wraps a Scientific record. The standard defines a large set
// of positional fields for this kind that this gateway does not interpret;
// Field exposes them opaquely by position.
type Scientific struct {
	raw    []byte
	delims Delimiters
}

// AsScientific views rec as a Scientific record using delims.
func AsScientific(rec Record, delims Delimiters) (*Scientific, error) {
	if rec.Kind() != KindScientific {
		return nil, wrongKind(KindScientific, rec.Kind())
	}
	return &Scientific{raw: rec.Raw(), delims: delims}, nil
}

func (s *Scientific) Delimiters() Delimiters { return s.delims }

func (s *Scientific) SequenceNumber() []byte { return s.Field(2) }

// Field returns the n-th field (1-indexed from the record-type letter),
// for callers that need a position this wrapper does not name.
func (s *Scientific) Field(n int) []byte {
	return fieldValue(s.raw, s.delims.Field, n)
}
