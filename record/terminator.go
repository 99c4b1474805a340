package record

// MessageTerminator wraps a MessageTerminator record, the record that
// closes every message.
type MessageTerminator struct {
	raw    []byte
	delims Delimiters
}

// AsMessageTerminator views rec as a MessageTerminator using delims.
func AsMessageTerminator(rec Record, delims Delimiters) (*MessageTerminator, error) {
	if rec.Kind() != KindMessageTerminator {
		return nil, wrongKind(KindMessageTerminator, rec.Kind())
	}
	return &MessageTerminator{raw: rec.Raw(), delims: delims}, nil
}

func (l *MessageTerminator) field(n int) []byte {
	return fieldValue(l.raw, l.delims.Field, n)
}

func (l *MessageTerminator) Delimiters() Delimiters { return l.delims }

// SequenceNumber defaults to 1 when absent.
func (l *MessageTerminator) SequenceNumber() []byte {
	if n := l.field(2); !IsAbsent(n) {
		return n
	}
	return []byte("1")
}

// TerminationCode returns the raw field 3 value: one of N, T, R, E, Q, I,
// F, or empty if absent. An absent code is semantically equivalent to N;
// use NormalizedTerminationCode for that collapse.
func (l *MessageTerminator) TerminationCode() []byte {
	return l.field(3)
}

// NormalizedTerminationCode returns the termination code with an absent
// value collapsed to "N", per the standard's equivalence.
func (l *MessageTerminator) NormalizedTerminationCode() []byte {
	if code := l.TerminationCode(); !IsAbsent(code) {
		return code
	}
	return []byte("N")
}
