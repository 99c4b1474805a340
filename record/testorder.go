package record

// TestOrder wraps a TestOrder record. Its sequence number restarts at 1
// for each new Patient in the message.
type TestOrder struct {
	raw    []byte
	delims Delimiters
}

// AsTestOrder views rec as a TestOrder using delims.
func AsTestOrder(rec Record, delims Delimiters) (*TestOrder, error) {
	if rec.Kind() != KindTestOrder {
		return nil, wrongKind(KindTestOrder, rec.Kind())
	}
	return &TestOrder{raw: rec.Raw(), delims: delims}, nil
}

func (o *TestOrder) field(n int) []byte {
	return fieldValue(o.raw, o.delims.Field, n)
}

func (o *TestOrder) Delimiters() Delimiters { return o.delims }

func (o *TestOrder) SequenceNumber() []byte       { return o.field(2) }
func (o *TestOrder) SpecimenID() []byte           { return o.field(3) }
func (o *TestOrder) InstrumentSpecimenID() []byte { return o.field(4) }
func (o *TestOrder) UniversalTestID() []byte      { return o.field(5) }

// Priority is one of S, A, R, C, P.
func (o *TestOrder) Priority() []byte         { return o.field(6) }
func (o *TestOrder) RequestedAt() []byte      { return o.field(7) }
func (o *TestOrder) CollectionStart() []byte  { return o.field(8) }
func (o *TestOrder) CollectionEnd() []byte    { return o.field(9) }
func (o *TestOrder) CollectionVolume() []byte { return o.field(10) }
func (o *TestOrder) CollectorID() []byte      { return o.field(11) }

// ActionCode is one of C, A, N, P, L, X, Q.
func (o *TestOrder) ActionCode() []byte         { return o.field(12) }
func (o *TestOrder) DangerCode() []byte         { return o.field(13) }
func (o *TestOrder) ClinicalInfo() []byte       { return o.field(14) }
func (o *TestOrder) SpecimenReceivedAt() []byte { return o.field(15) }
func (o *TestOrder) SpecimenDescriptor() []byte { return o.field(16) }
func (o *TestOrder) OrderingPhysician() []byte  { return o.field(17) }
func (o *TestOrder) PhysicianContact() []byte   { return o.field(18) }
func (o *TestOrder) UserField(n int) []byte {
	if n != 19 && n != 20 {
		return nil
	}
	return o.field(n)
}
func (o *TestOrder) LabField(n int) []byte {
	if n != 21 && n != 22 {
		return nil
	}
	return o.field(n)
}
func (o *TestOrder) ResultsReportedOrModifiedAt() []byte { return o.field(23) }
func (o *TestOrder) InstrumentCharge() []byte            { return o.field(24) }
func (o *TestOrder) InstrumentSectionID() []byte         { return o.field(25) }

// ReportType is one of O, C, P, F, X, I, Y, Z, Q.
func (o *TestOrder) ReportType() []byte          { return o.field(26) }
func (o *TestOrder) Reserved() []byte            { return o.field(27) }
func (o *TestOrder) Location() []byte            { return o.field(28) }
func (o *TestOrder) NosocomialFlag() []byte      { return o.field(29) }
func (o *TestOrder) SpecimenService() []byte     { return o.field(30) }
func (o *TestOrder) SpecimenInstitution() []byte { return o.field(31) }
