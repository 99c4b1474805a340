package record

// RequestInformation wraps a RequestInformation record.
type RequestInformation struct {
	raw    []byte
	delims Delimiters
}

// AsRequestInformation views rec as a RequestInformation using delims.
func AsRequestInformation(rec Record, delims Delimiters) (*RequestInformation, error) {
	if rec.Kind() != KindRequestInformation {
		return nil, wrongKind(KindRequestInformation, rec.Kind())
	}
	return &RequestInformation{raw: rec.Raw(), delims: delims}, nil
}

func (q *RequestInformation) field(n int) []byte {
	return fieldValue(q.raw, q.delims.Field, n)
}

func (q *RequestInformation) Delimiters() Delimiters { return q.delims }

func (q *RequestInformation) SequenceNumber() []byte  { return q.field(2) }
func (q *RequestInformation) StartingRangeID() []byte { return q.field(3) }
func (q *RequestInformation) EndingRangeID() []byte   { return q.field(4) }

// UniversalTestID may also be the literal "ALL".
func (q *RequestInformation) UniversalTestID() []byte { return q.field(5) }

// NatureOfTimeLimits is one of S, R, or absent.
func (q *RequestInformation) NatureOfTimeLimits() []byte { return q.field(6) }
func (q *RequestInformation) BeginDateTime() []byte      { return q.field(7) }
func (q *RequestInformation) EndDateTime() []byte        { return q.field(8) }
func (q *RequestInformation) PhysicianName() []byte      { return q.field(9) }
func (q *RequestInformation) PhysicianPhone() []byte     { return q.field(10) }
func (q *RequestInformation) UserField(n int) []byte {
	if n != 11 && n != 12 {
		return nil
	}
	return q.field(n)
}
func (q *RequestInformation) StatusCodes() []byte { return q.field(13) }
