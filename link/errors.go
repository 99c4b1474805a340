package link

import "errors"

// Sentinel errors surfaced by Machine.Run. Callers should compare with
// errors.Is; Run wraps the underlying cause with %w where one exists.
var (
	// ErrLinkTimeout means T1, T2, or T3 was exceeded while awaiting a
	// response or incoming frame.
	ErrLinkTimeout = errors.New("link: timeout")

	// ErrProtocolViolation means an unexpected control byte arrived for
	// the current state.
	ErrProtocolViolation = errors.New("link: protocol violation")

	// ErrTransportError wraps an I/O error from the underlying transport.
	ErrTransportError = errors.New("link: transport error")

	// ErrEstablishFailed means establishment exhausted its retry budget
	// without receiving ACK.
	ErrEstablishFailed = errors.New("link: establish failed")

	// ErrTransferFailed means a frame exhausted its retransmission budget
	// without being acknowledged.
	ErrTransferFailed = errors.New("link: transfer failed")
)
