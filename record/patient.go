package record

// Patient wraps a Patient record. Its fields use the delimiter set
// declared by the message's Header.
type Patient struct {
	raw    []byte
	delims Delimiters
}

// AsPatient views rec as a Patient using delims, the delimiter set
// discovered from the message's Header.
func AsPatient(rec Record, delims Delimiters) (*Patient, error) {
	if rec.Kind() != KindPatient {
		return nil, wrongKind(KindPatient, rec.Kind())
	}
	return &Patient{raw: rec.Raw(), delims: delims}, nil
}

func (p *Patient) field(n int) []byte {
	return fieldValue(p.raw, p.delims.Field, n)
}

// Delimiters returns the delimiter set this Patient was constructed with.
func (p *Patient) Delimiters() Delimiters { return p.delims }

func (p *Patient) SequenceNumber() []byte { return p.field(2) }

// PracticeAssignedID is present on the wire but ignored on receive, per the
// record-kind contract.
func (p *Patient) PracticeAssignedID() []byte { return p.field(3) }
func (p *Patient) LabID() []byte              { return p.field(4) }
func (p *Patient) OtherID() []byte            { return p.field(5) }

// Name is component-structured (last^first^middle, typically); use
// Components to split it.
func (p *Patient) Name() []byte              { return p.field(6) }
func (p *Patient) MothersMaidenName() []byte { return p.field(7) }
func (p *Patient) Birthdate() []byte         { return p.field(8) }
func (p *Patient) Gender() []byte            { return p.field(9) }

// Demographics returns field n for n in 10..35, the remaining demographic
// fields the standard defines but this gateway does not name individually.
func (p *Patient) Demographics(n int) []byte {
	if n < 10 || n > 35 {
		return nil
	}
	return p.field(n)
}
