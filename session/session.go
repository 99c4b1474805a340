// Package session drives one analyzer connection end to end: the
// compliance probe, the E1381 link loop, and translation between wire
// messages and typed records.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/labgw/astmgw/config"
	"github.com/labgw/astmgw/gwlog"
	"github.com/labgw/astmgw/link"
	"github.com/labgw/astmgw/record"
	"github.com/labgw/astmgw/serial"
)

// Handlers are the upward callbacks a Session invokes. All are optional.
// OnMessageError carries a received message whose record text failed to
// parse; the message is discarded, the session keeps running.
type Handlers struct {
	OnMessageReceived func(Delivery)
	OnMessageError    func(portName string, err error)
	OnSessionState    func(portName string, state State, reason error)
}

// Session owns one serial port exclusively for its lifetime and drives
// the ASTM E1381 link state machine over it.
type Session struct {
	portName string
	port     serial.Port
	cfg      config.Config
	log      *gwlog.Logger
	handlers Handlers

	mu        sync.Mutex
	seq       uint64
	outbox    chan []byte
	pending   bool
	lastState link.State
}

// New returns a Session ready to Run. The Session takes ownership of
// port: it is closed by cancelling the context passed to Run, never by a
// separate Close call.
func New(portName string, port serial.Port, cfg config.Config, log *gwlog.Logger, h Handlers) *Session {
	return &Session{
		portName: portName,
		port:     port,
		cfg:      cfg,
		log:      log.WithPort(portName),
		handlers: h,
		outbox:   make(chan []byte, 1),
	}
}

// Run probes the port for compliance and, if it passes, drives the link
// loop until ctx is cancelled or a transport error occurs. It always
// closes the port before returning.
func (s *Session) Run(ctx context.Context) error {
	defer s.port.Close()

	s.reportState(Open, nil)

	if err := Probe(s.port, s.cfg.T2); err != nil {
		s.log.Warn("compliance probe failed", "err", err)
		s.reportState(ProbeFailed, err)
		return err
	}

	s.log.Info("compliance probe passed")
	s.reportState(Running, nil)

	m := link.New(link.Config{
		T1:                    s.cfg.T1,
		T2:                    s.cfg.T2,
		T3:                    s.cfg.T3,
		MaxRetransmissions:    s.cfg.MaxRetransmissions,
		MaxPayload:            s.cfg.MaxFramePayload,
		YieldOnContention:     s.cfg.YieldOnContention,
		MonotonicFrameNumbers: s.cfg.MonotonicFrameNumbers,
	})

	linkHandlers := link.Handlers{
		OnMessage: func(msg []byte) {
			s.deliver(msg)
		},
		OnState: func(st link.State) {
			s.log.Debug("link state", "state", st.String())
			s.noteStateTransition(st)
		},
		OnProtocolViolation: func(got byte, st link.State) {
			s.log.Warn("protocol violation", "byte", got, "state", st.String())
		},
		OnLinkError: func(err error) {
			s.log.Warn("link error", "err", err)
		},
	}

	err := m.Run(ctx, s.port, s.outbox, linkHandlers)
	s.reportState(Closed, err)
	return err
}

// Send enqueues records as the next outgoing message. It returns
// ErrBusy if a prior message is still outstanding; the link carries at
// most one outstanding message per direction. Pending is cleared
// once the send attempt concludes, whether the message was transmitted,
// establishment was abandoned, or the host yielded the sender role on
// contention and the message was dropped.
func (s *Session) Send(records []record.Record) error {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrBusy
	}
	s.pending = true
	s.mu.Unlock()

	msg := buildMessage(records)

	select {
	case s.outbox <- msg:
		return nil
	default:
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
		return ErrBusy
	}
}

// noteStateTransition clears the outstanding-send flag once a send
// attempt concludes, however it concluded: a TransferOut returning to
// Neutral (sent or abandoned), or an Establish that never reached
// TransferOut at all (the retry budget ran out, or the host yielded on
// contention and the queued message was dropped).
func (s *Session) noteStateTransition(st link.State) {
	s.mu.Lock()
	concluded := (s.lastState == link.StateTransferOut && st == link.StateNeutral) ||
		(s.lastState == link.StateEstablish && st != link.StateTransferOut)
	if concluded {
		s.pending = false
	}
	s.lastState = st
	s.mu.Unlock()
}

func (s *Session) deliver(msg []byte) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	delivery, err := splitDelivery(s.portName, seq, msg)
	if err != nil {
		s.log.Error("malformed delivered message", "err", err)
		if s.handlers.OnMessageError != nil {
			s.handlers.OnMessageError(s.portName, err)
		}
		return
	}
	if s.handlers.OnMessageReceived != nil {
		s.handlers.OnMessageReceived(delivery)
	}
}

func (s *Session) reportState(st State, reason error) {
	if s.handlers.OnSessionState != nil {
		s.handlers.OnSessionState(s.portName, st, reason)
	}
	if reason != nil {
		s.log.Info("session state", "state", st.String(), "reason", fmt.Sprint(reason))
	} else {
		s.log.Info("session state", "state", st.String())
	}
}
