package record

// ManufacturerInformation wraps a ManufacturerInformation record, an
// extension point vendors use for instrument-specific fields. Like
// Scientific, its fields are exposed opaquely by position.
type ManufacturerInformation struct {
	raw    []byte
	delims Delimiters
}

// AsManufacturerInformation views rec as a ManufacturerInformation record
// using delims.
func AsManufacturerInformation(rec Record, delims Delimiters) (*ManufacturerInformation, error) {
	if rec.Kind() != KindManufacturerInformation {
		return nil, wrongKind(KindManufacturerInformation, rec.Kind())
	}
	return &ManufacturerInformation{raw: rec.Raw(), delims: delims}, nil
}

func (m *ManufacturerInformation) Delimiters() Delimiters { return m.delims }

func (m *ManufacturerInformation) SequenceNumber() []byte { return m.Field(2) }

// Field returns the n-th field (1-indexed from the record-type letter).
func (m *ManufacturerInformation) Field(n int) []byte {
	return fieldValue(m.raw, m.delims.Field, n)
}
