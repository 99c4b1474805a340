package session

import "errors"

// ErrNotCompliant is returned by Probe when a port does not answer ENQ
// with ACK within T2 — it is not an ASTM E1381 analyzer, or is powered
// off, or is mid-transfer with another host.
var ErrNotCompliant = errors.New("session: port did not answer compliance probe")

// ErrBusy is returned by Send when a prior message is still outstanding;
// the link carries at most one outstanding message per direction.
var ErrBusy = errors.New("session: a message is already outstanding")
