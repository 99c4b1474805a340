package record

// Header wraps a Header record. Unlike every other kind, a Header
// discovers its own delimiter set positionally rather than taking one from
// message context — it's the source of that context for the rest of the
// message.
type Header struct {
	raw []byte
}

// AsHeader views rec as a Header. It returns an error if rec is not a
// Header record.
func AsHeader(rec Record) (*Header, error) {
	if rec.Kind() != KindHeader {
		return nil, wrongKind(KindHeader, rec.Kind())
	}
	return &Header{raw: rec.Raw()}, nil
}

// Delimiters reads the four delimiter octets at positions 3 through 6 of
// the raw buffer (immediately after the type letter at position 2),
// falling back to the ASTM default for any position the buffer is too
// short to carry.
func (h *Header) Delimiters() Delimiters {
	d := DefaultDelimiters()
	if len(h.raw) > 3 {
		d.Field = h.raw[3]
	}
	if len(h.raw) > 4 {
		d.Repeat = h.raw[4]
	}
	if len(h.raw) > 5 {
		d.Component = h.raw[5]
	}
	if len(h.raw) > 6 {
		d.Escape = h.raw[6]
	}
	return d
}

func (h *Header) field(n int) []byte {
	return fieldValue(h.raw, h.Delimiters().Field, n)
}

func (h *Header) MessageControlID() []byte      { return h.field(3) }
func (h *Header) AccessPassword() []byte        { return h.field(4) }
func (h *Header) SenderID() []byte              { return h.field(5) }
func (h *Header) SenderStreetAddress() []byte   { return h.field(6) }
func (h *Header) Reserved() []byte              { return h.field(7) }
func (h *Header) SenderTelephone() []byte       { return h.field(8) }
func (h *Header) SenderCharacteristics() []byte { return h.field(9) }
func (h *Header) ReceiverID() []byte            { return h.field(10) }
func (h *Header) SpecialInstructions() []byte   { return h.field(11) }
func (h *Header) ProcessingID() []byte          { return h.field(12) }
func (h *Header) VersionNumber() []byte         { return h.field(13) }
func (h *Header) SentAt() []byte                { return h.field(14) }
