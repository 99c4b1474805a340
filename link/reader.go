package link

import (
	"bufio"
	"fmt"

	"github.com/labgw/astmgw/control"
	"github.com/labgw/astmgw/framer"
)

type eventKind int

const (
	evENQ eventKind = iota
	evACK
	evNAK
	evEOT
	evFrame
	evOther
	evReadErr
)

// rxEvent is one unit handed from the background reader goroutine to the
// state machine: either a recognized single control byte, a decoded (or
// rejected) frame, an unrecognized byte, or a transport read error.
type rxEvent struct {
	kind  eventKind
	frame framer.Frame
	err   error
	other byte
}

// runReader reads bytes from t until a read error occurs or stop is
// closed, recognizing single control bytes and accumulating STX-led byte
// runs into whole frames for framer.Decode. It never blocks the state
// machine's own goroutine; each recognized unit is sent on out.
func runReader(t Transport, out chan<- rxEvent, stop <-chan struct{}) {
	defer close(out)
	r := bufio.NewReader(t)

	send := func(ev rxEvent) bool {
		select {
		case out <- ev:
			return true
		case <-stop:
			return false
		}
	}

	for {
		b, err := r.ReadByte()
		if err != nil {
			send(rxEvent{kind: evReadErr, err: fmt.Errorf("link: %w", err)})
			return
		}

		switch b {
		case control.ENQ:
			if !send(rxEvent{kind: evENQ}) {
				return
			}
		case control.ACK:
			if !send(rxEvent{kind: evACK}) {
				return
			}
		case control.NAK:
			if !send(rxEvent{kind: evNAK}) {
				return
			}
		case control.EOT:
			if !send(rxEvent{kind: evEOT}) {
				return
			}
		case control.STX:
			buf, err := readFrame(r)
			if err != nil {
				send(rxEvent{kind: evReadErr, err: fmt.Errorf("link: %w", err)})
				return
			}
			f, decodeErr := framer.Decode(buf)
			if decodeErr != nil {
				if !send(rxEvent{kind: evFrame, err: decodeErr}) {
					return
				}
				continue
			}
			if !send(rxEvent{kind: evFrame, frame: f}) {
				return
			}
		default:
			if !send(rxEvent{kind: evOther, other: b}) {
				return
			}
		}
	}
}

// readFrame reads the remainder of a frame after its leading STX has
// already been consumed, stopping once CR LF is seen. It returns the
// complete frame including the leading STX, ready for framer.Decode.
func readFrame(r *bufio.Reader) ([]byte, error) {
	buf := []byte{control.STX}
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		buf = append(buf, b)
		if len(buf) >= 2 && buf[len(buf)-2] == control.CR && buf[len(buf)-1] == control.LF {
			return buf, nil
		}
	}
}
