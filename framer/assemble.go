package framer

import "bytes"

// Assembler accumulates the payloads of a multi-frame message on the
// receive side. The link state machine owns one per in-flight transfer
// and resets it at the start of each TransferIn phase.
type Assembler struct {
	buf         []byte
	last        byte
	lastPayload []byte
	have        bool
}

// Append adds f's payload to the in-flight message. It reports whether f
// is a retransmission of the most recently appended frame (same frame
// number and byte-identical payload), in which case the payload is not
// appended again. A repeated frame number with different content is
// appended normally: only content equality makes the suppression
// idempotent.
func (a *Assembler) Append(f Frame) (retransmission bool) {
	if a.have && f.Number == a.last && bytes.Equal(f.Payload, a.lastPayload) {
		return true
	}
	a.buf = append(a.buf, f.Payload...)
	a.last = f.Number
	a.lastPayload = f.Payload
	a.have = true
	return false
}

// Done reports whether the message is complete: the last frame appended
// carried the ETX terminator.
func (a *Assembler) Done(f Frame) bool { return f.Last }

// Bytes returns the concatenated payload bytes accumulated so far.
func (a *Assembler) Bytes() []byte { return a.buf }

// Reset discards any in-flight message state, ready for a new transfer.
func (a *Assembler) Reset() {
	a.buf = nil
	a.last = 0
	a.lastPayload = nil
	a.have = false
}
