package link

import "io"

// Transport is the byte-oriented duplex channel the link state machine
// drives. session wires in a serial.Port (or a test double) here; the
// state machine itself never knows it is talking to a serial line.
type Transport interface {
	io.Reader
	io.Writer
}
