// Package serial defines the duplex byte-channel interface the gateway's
// core depends on, plus two default adapters: a real serial line
// (pkg/term) and a pseudo-terminal (creack/pty) for loopback testing and
// simulated analyzers. Port enumeration lives elsewhere; this package
// only opens and shuttles bytes over what it is given a device name for.
package serial

import (
	"io"
	"time"
)

// Port is the byte-oriented duplex channel link.Machine and session.Probe
// drive. Closing a Port while a Read is in flight is how a session is
// cancelled: the blocked Read must return an error.
type Port interface {
	io.Reader
	io.Writer
	io.Closer

	// SetReadDeadline bounds the next Read call; the zero time clears
	// the bound. session.Probe uses it to wait no longer than T2 for the
	// compliance-probe ACK, then clears it; the link state machine does
	// not use it, preferring select against its own timers.
	SetReadDeadline(time.Time) error
}

// LineConfig carries the serial line parameters a deployment can tune.
// The gateway ships the two adapters below so it runs out of the box; a
// deployment with different driver needs supplies its own Port.
type LineConfig struct {
	BaudRate    int
	Parity      Parity
	StopBits    int
	FlowControl FlowControl
	ReadTimeout time.Duration
}

// Parity is the serial line parity setting.
type Parity int

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

// FlowControl is the serial line flow-control setting.
type FlowControl int

const (
	FlowControlSoftware FlowControl = iota
	FlowControlHardware
	FlowControlNone
)

// DefaultLineConfig returns the default line parameters: 115200 8N1,
// software flow control, 30s read timeout.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		BaudRate:    115200,
		Parity:      ParityNone,
		StopBits:    1,
		FlowControl: FlowControlSoftware,
		ReadTimeout: 30 * time.Second,
	}
}
