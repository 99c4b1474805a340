package session

import (
	"fmt"
	"time"

	"github.com/labgw/astmgw/control"
	"github.com/labgw/astmgw/serial"
)

// Probe sends ENQ and waits up to t2 for a single ACK byte, the
// compliance check that decides whether a port speaks ASTM before the
// link loop starts. On success it clears the read deadline, sends EOT
// leaving the port in Neutral, and returns nil. On a non-ACK byte, a
// short read, or a timeout it returns ErrNotCompliant wrapping the
// underlying cause; the caller is expected to close the port.
func Probe(port serial.Port, t2 time.Duration) error {
	if _, err := port.Write([]byte{control.ENQ}); err != nil {
		return fmt.Errorf("session: probe write: %w", err)
	}

	if err := port.SetReadDeadline(time.Now().Add(t2)); err != nil {
		return fmt.Errorf("session: probe set deadline: %w", err)
	}

	buf := make([]byte, 1)
	n, err := port.Read(buf)
	if err != nil {
		return fmt.Errorf("session: probe read: %w: %w", ErrNotCompliant, err)
	}
	if n != 1 || buf[0] != control.ACK {
		return fmt.Errorf("session: probe got %v: %w", buf[:n], ErrNotCompliant)
	}

	// The deadline only bounds the probe. The link loop reads this same
	// port indefinitely, timing each wait with its own T2/T3 timers; a
	// deadline left armed here would expire mid-session and kill every
	// read after it.
	if err := port.SetReadDeadline(time.Time{}); err != nil {
		return fmt.Errorf("session: probe clear deadline: %w", err)
	}

	if _, err := port.Write([]byte{control.EOT}); err != nil {
		return fmt.Errorf("session: probe final EOT: %w", err)
	}
	return nil
}
