package record

// Result wraps a Result record.
type Result struct {
	raw    []byte
	delims Delimiters
}

// AsResult views rec as a Result using delims.
func AsResult(rec Record, delims Delimiters) (*Result, error) {
	if rec.Kind() != KindResult {
		return nil, wrongKind(KindResult, rec.Kind())
	}
	return &Result{raw: rec.Raw(), delims: delims}, nil
}

func (r *Result) field(n int) []byte {
	return fieldValue(r.raw, r.delims.Field, n)
}

func (r *Result) Delimiters() Delimiters { return r.delims }

func (r *Result) SequenceNumber() []byte  { return r.field(2) }
func (r *Result) UniversalTestID() []byte { return r.field(3) }
func (r *Result) Value() []byte           { return r.field(4) }
func (r *Result) Units() []byte           { return r.field(5) }
func (r *Result) ReferenceRange() []byte  { return r.field(6) }

// AbnormalFlag is one of L, H, LL, HH, <, >, N, A, U, D, B, W.
func (r *Result) AbnormalFlag() []byte { return r.field(7) }

// NatureOfAbnormalityTesting is drawn from {A, S, R, N}.
func (r *Result) NatureOfAbnormalityTesting() []byte { return r.field(8) }

// Status is one of C, P, F, X, I, S, M, R, N, Q, V, W.
func (r *Result) Status() []byte                     { return r.field(9) }
func (r *Result) ChangeInNormativeValueDate() []byte { return r.field(10) }
func (r *Result) OperatorIdentification() []byte     { return r.field(11) }
func (r *Result) TestStartedAt() []byte              { return r.field(12) }
func (r *Result) TestCompletedAt() []byte            { return r.field(13) }
func (r *Result) InstrumentIdentification() []byte   { return r.field(14) }
