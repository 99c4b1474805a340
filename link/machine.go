// Package link implements the ASTM E1381 link state machine:
// establishment, frame transfer with checksum and sequence discipline,
// contention, and termination, driven over a byte stream.
package link

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/labgw/astmgw/control"
	"github.com/labgw/astmgw/framer"
)

// Handlers are the callbacks Machine.Run invokes as the link progresses.
// All four are optional; a nil handler is simply not called.
type Handlers struct {
	// OnMessage is called with the concatenated, CR-joined record text of
	// a completely received message, after the frame that carried ETX.
	// Run never calls it with a partial message.
	OnMessage func(msg []byte)

	// OnState is called on every state transition.
	OnState func(State)

	// OnProtocolViolation is called when an unexpected control byte
	// arrives for the current state. Run does not stop running; it
	// returns to Neutral.
	OnProtocolViolation func(got byte, state State)

	// OnLinkError is called with the error from a recovered outcome:
	// EstablishFailed or TransferFailed (the retry budget was exhausted,
	// wrapping ErrLinkTimeout when a timer rather than a NAK was the
	// proximate cause), a receive-inactivity timeout, or a protocol
	// violation (wrapping ErrProtocolViolation, alongside the
	// OnProtocolViolation callback). None of these stop Run — the link
	// has already returned to Neutral and keeps running; only a
	// transport failure does that.
	OnLinkError func(error)
}

// Machine drives one ASTM E1381 link over a Transport. It holds no
// transport-specific state itself; a new Machine (or the same one, reset
// by a fresh Run) can be driven over a new Transport.
type Machine struct {
	cfg Config
}

// New returns a Machine configured by cfg.
func New(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// Run drives the link state machine over t until ctx is cancelled or a
// transport read error occurs (including the transport being closed,
// which is how a session is cancelled). It starts in Neutral, receiver-
// initiated: it answers an incoming ENQ by becoming the receiver, and
// sends ENQ to become the sender whenever a message arrives on outbox.
//
// Run returns nil only when ctx is cancelled. EstablishFailed and
// TransferFailed outcomes are recovered locally (the link returns to
// Neutral and keeps running); Run itself only returns a non-nil error for
// a transport failure, wrapped with ErrTransportError.
func (m *Machine) Run(ctx context.Context, t Transport, outbox <-chan []byte, h Handlers) error {
	rxCh := make(chan rxEvent)
	stop := make(chan struct{})
	go runReader(t, rxCh, stop)
	defer close(stop)

	state := StateNeutral
	frameNumber := byte('1')
	setState := func(s State) {
		state = s
		if h.OnState != nil {
			h.OnState(s)
		}
	}
	violation := func(got byte) error {
		if h.OnProtocolViolation != nil {
			h.OnProtocolViolation(got, state)
		}
		return fmt.Errorf("link: unexpected byte %#x in state %s: %w", got, state, ErrProtocolViolation)
	}

	var asm framer.Assembler
	var badFrames int

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		switch state {
		case StateNeutral:
			select {
			case <-ctx.Done():
				return nil

			case msg, ok := <-outbox:
				if !ok {
					outbox = nil
					continue
				}
				if err := writeByte(t, control.ENQ); err != nil {
					return wrapTransport(err)
				}
				setState(StateEstablish)
				if err := m.absorb(ignoreCancel(m.runEstablish(ctx, t, rxCh, setState, violation)), h); err != nil {
					return err
				}
				if state == StateTransferOut {
					// Frame numbers reset to 1 at each TransferOut
					// entry; MonotonicFrameNumbers opts into continuing
					// the mod-8 sequence across messages instead.
					start := byte('1')
					if m.cfg.MonotonicFrameNumbers {
						start = frameNumber
					}
					if err := m.absorb(ignoreCancel(m.runTransferOut(ctx, t, rxCh, msg, start, &frameNumber)), h); err != nil {
						return err
					}
					setState(StateNeutral)
				} else if state == StateTransferIn {
					// Yielded on contention: the peer is now the sender and
					// any residue from an earlier aborted receive is stale.
					asm.Reset()
					badFrames = 0
					if err := m.absorb(ignoreCancel(m.runTransferIn(ctx, t, rxCh, &asm, &badFrames, setState, h)), h); err != nil {
						return err
					}
				}

			case ev, ok := <-rxCh:
				if !ok {
					return wrapTransport(fmt.Errorf("link: reader closed"))
				}
				switch ev.kind {
				case evENQ:
					if err := writeByte(t, control.ACK); err != nil {
						return wrapTransport(err)
					}
					asm.Reset()
					badFrames = 0
					setState(StateTransferIn)
					if err := m.absorb(ignoreCancel(m.runTransferIn(ctx, t, rxCh, &asm, &badFrames, setState, h)), h); err != nil {
						return err
					}
				case evReadErr:
					return wrapTransport(ev.err)
				default:
					_ = m.absorb(violation(singleByte(ev)), h)
				}
			}

		default:
			// Any other state observed here means a sub-loop returned
			// without resolving back to Neutral; treat it defensively as
			// Neutral so Run always makes progress.
			setState(StateNeutral)
		}
	}
}

// runEstablish drives the Establish state: waiting for ACK, NAK, or
// contention (an incoming ENQ), retrying up to MaxRetransmissions times.
// On return, the machine's state is StateTransferOut (ACK received), StateTransferIn
// (yielded on contention), or StateNeutral (establishment failed).
func (m *Machine) runEstablish(
	ctx context.Context,
	t Transport,
	rxCh <-chan rxEvent,
	setState func(State),
	violation func(byte) error,
) error {
	retries := 0
	for {
		select {
		case <-ctx.Done():
			return context.Canceled

		case ev, ok := <-rxCh:
			if !ok {
				return wrapTransport(fmt.Errorf("link: reader closed"))
			}
			switch ev.kind {
			case evACK:
				setState(StateTransferOut)
				return nil

			case evNAK:
				retries++
				if retries >= m.cfg.MaxRetransmissions {
					setState(StateNeutral)
					return fmt.Errorf("link: establishment abandoned after %d attempts: %w", retries, ErrEstablishFailed)
				}
				if err := m.backoff(ctx); err != nil {
					return context.Canceled
				}
				if err := writeByte(t, control.ENQ); err != nil {
					return wrapTransport(err)
				}

			case evENQ:
				if !m.cfg.YieldOnContention {
					// Keep contending: treat the peer's bid like a lost
					// round and retry our own establishment instead of
					// yielding the sender role.
					retries++
					if retries >= m.cfg.MaxRetransmissions {
						setState(StateNeutral)
						return fmt.Errorf("link: establishment abandoned after %d attempts: %w", retries, ErrEstablishFailed)
					}
					if err := m.backoff(ctx); err != nil {
						return context.Canceled
					}
					if err := writeByte(t, control.ENQ); err != nil {
						return wrapTransport(err)
					}
					continue
				}

				// Contention: the host yields per YieldOnContention.
				if err := writeByte(t, control.ACK); err != nil {
					return wrapTransport(err)
				}
				setState(StateTransferIn)
				return nil

			case evReadErr:
				return wrapTransport(ev.err)

			default:
				err := violation(singleByte(ev))
				setState(StateNeutral)
				return err
			}

		case <-time.After(m.cfg.T2):
			// No response within the response-wait window; treat like a
			// NAK and retry the establishment.
			retries++
			if retries >= m.cfg.MaxRetransmissions {
				setState(StateNeutral)
				return fmt.Errorf("link: establishment abandoned after %d attempts: %w: %w", retries, ErrEstablishFailed, ErrLinkTimeout)
			}
			if err := writeByte(t, control.ENQ); err != nil {
				return wrapTransport(err)
			}
		}
	}
}

// runTransferOut drives the TransferOut state: transmitting msg as one or
// more frames, retrying each under NAK up to MaxRetransmissions, and
// sending EOT once the last frame is acknowledged.
func (m *Machine) runTransferOut(
	ctx context.Context,
	t Transport,
	rxCh <-chan rxEvent,
	msg []byte,
	startFrame byte,
	frameNumberOut *byte,
) error {
	frames := framer.SplitFrom(msg, m.cfg.MaxPayload, startFrame)

	for _, f := range frames {
		if err := m.sendFrame(ctx, t, rxCh, f); err != nil {
			return err
		}
		*frameNumberOut = framer.NextNumber(f.Number)
	}

	if err := writeByte(t, control.EOT); err != nil {
		return wrapTransport(err)
	}
	return nil
}

// sendFrame transmits f, retrying under NAK or T2 timeout up to
// MaxRetransmissions times, and returns once it is acknowledged.
func (m *Machine) sendFrame(ctx context.Context, t Transport, rxCh <-chan rxEvent, f framer.Frame) error {
	retries := 0
	for {
		if err := writeBytes(t, framer.Encode(f)); err != nil {
			return wrapTransport(err)
		}

		select {
		case <-ctx.Done():
			return context.Canceled

		case ev, ok := <-rxCh:
			if !ok {
				return wrapTransport(fmt.Errorf("link: reader closed"))
			}
			switch ev.kind {
			case evACK:
				return nil
			case evNAK:
				retries++
				if retries >= m.cfg.MaxRetransmissions {
					_ = writeByte(t, control.EOT)
					return fmt.Errorf("link: frame %c abandoned after %d attempts: %w", f.Number, retries, ErrTransferFailed)
				}
			case evReadErr:
				return wrapTransport(ev.err)
			default:
				// ignore stray bytes between frames and retry the wait
			}

		case <-time.After(m.cfg.T2):
			retries++
			if retries >= m.cfg.MaxRetransmissions {
				_ = writeByte(t, control.EOT)
				return fmt.Errorf("link: frame %c timed out after %d attempts: %w: %w", f.Number, retries, ErrTransferFailed, ErrLinkTimeout)
			}
		}
	}
}

// runTransferIn drives the TransferIn state: accepting frames into asm,
// ACKing good ones and NAKing bad ones, delivering the assembled message
// once the last frame arrives, and returning to Neutral on EOT or the
// T3 receive-inactivity timeout.
func (m *Machine) runTransferIn(
	ctx context.Context,
	t Transport,
	rxCh <-chan rxEvent,
	asm *framer.Assembler,
	badFrames *int,
	setState func(State),
	h Handlers,
) error {
	for {
		select {
		case <-ctx.Done():
			return context.Canceled

		case ev, ok := <-rxCh:
			if !ok {
				return wrapTransport(fmt.Errorf("link: reader closed"))
			}
			switch ev.kind {
			case evFrame:
				if ev.err != nil {
					*badFrames++
					if *badFrames >= m.cfg.MaxRetransmissions {
						asm.Reset()
						setState(StateNeutral)
						return nil
					}
					if err := writeByte(t, control.NAK); err != nil {
						return wrapTransport(err)
					}
					continue
				}

				*badFrames = 0
				asm.Append(ev.frame)
				if err := writeByte(t, control.ACK); err != nil {
					return wrapTransport(err)
				}
				if asm.Done(ev.frame) {
					msg := asm.Bytes()
					asm.Reset()
					if h.OnMessage != nil {
						h.OnMessage(msg)
					}
				}

			case evEOT:
				setState(StateNeutral)
				return nil

			case evReadErr:
				return wrapTransport(ev.err)

			default:
				// An unexpected control byte mid-transfer; stay in
				// TransferIn and keep waiting, per the receiver's
				// tolerance for a stray byte between frames.
			}

		case <-time.After(m.cfg.T3):
			asm.Reset()
			setState(StateNeutral)
			return fmt.Errorf("link: receive inactivity: %w", ErrLinkTimeout)
		}
	}
}

func (m *Machine) backoff(ctx context.Context) error {
	d := m.cfg.T1
	if d <= 0 {
		d = 2 * time.Second
	}
	jitter := time.Duration(rand.Int63n(int64(d) / 4))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d + jitter):
		return nil
	}
}

func writeByte(t Transport, b byte) error {
	_, err := t.Write([]byte{b})
	return err
}

func writeBytes(t Transport, b []byte) error {
	_, err := t.Write(b)
	return err
}

func wrapTransport(err error) error {
	return fmt.Errorf("link: %w: %w", ErrTransportError, err)
}

// absorb reports err to h.OnLinkError and returns nil, unless err is a
// transport failure, which Run propagates and exits on. EstablishFailed
// and TransferFailed are terminal outcomes for one attempt, not for the
// session: the link has already returned to Neutral by the time absorb
// sees them.
func (m *Machine) absorb(err error, h Handlers) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTransportError) {
		return err
	}
	if h.OnLinkError != nil {
		h.OnLinkError(err)
	}
	return nil
}

// ignoreCancel turns context.Canceled into nil: the caller's own top-level
// select on ctx.Done() is what actually ends Run, so a sub-loop unwinding
// because of cancellation is not itself a failure to report.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func singleByte(ev rxEvent) byte {
	switch ev.kind {
	case evOther:
		return ev.other
	default:
		return 0
	}
}
