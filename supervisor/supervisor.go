// Package supervisor discovers serial ports, probes each for ASTM E1381
// compliance, and owns one session per compliant port. Each discovered
// device is opened independently and never shared across sessions.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/labgw/astmgw/config"
	"github.com/labgw/astmgw/discover"
	"github.com/labgw/astmgw/gwlog"
	"github.com/labgw/astmgw/record"
	"github.com/labgw/astmgw/serial"
	"github.com/labgw/astmgw/session"
)

// ErrUnknownPort is returned by SendMessage when no running session owns
// the named port.
var ErrUnknownPort = errors.New("supervisor: no session for port")

// Opener opens a named device as a serial.Port. Production code supplies
// serial.OpenTermPort; tests supply a fake that hands back an already
// connected pipe or pty master.
type Opener func(device string, line serial.LineConfig) (serial.Port, error)

// Supervisor discovers ports, probes them, and runs one session per
// compliant port. It does not retry a port that failed to open or probe;
// a caller that wants rediscovery re-invokes Discover.
type Supervisor struct {
	lister   discover.Lister
	open     Opener
	cfg      config.Config
	log      *gwlog.Logger
	handlers session.Handlers

	mu       sync.Mutex
	sessions map[string]*session.Session
	cancels  map[string]context.CancelFunc
}

// New returns a Supervisor. handlers is shared by every session it spawns.
func New(lister discover.Lister, open Opener, cfg config.Config, log *gwlog.Logger, handlers session.Handlers) *Supervisor {
	return &Supervisor{
		lister:   lister,
		open:     open,
		cfg:      cfg,
		log:      log,
		handlers: handlers,
		sessions: make(map[string]*session.Session),
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Discover lists candidate ports and spawns a session for every one that
// is not already owned and opens successfully. It returns the names of
// ports it newly spawned a session for; the compliance probe runs later,
// inside each session, so a returned name does not mean the port passed it.
func (sup *Supervisor) Discover(ctx context.Context) ([]string, error) {
	names, err := sup.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("supervisor: list ports: %w", err)
	}

	var spawned []string
	for _, name := range names {
		if sup.owns(name) {
			continue
		}
		if sup.spawn(ctx, name) {
			spawned = append(spawned, name)
		}
	}
	return spawned, nil
}

func (sup *Supervisor) owns(name string) bool {
	sup.mu.Lock()
	defer sup.mu.Unlock()
	_, ok := sup.sessions[name]
	return ok
}

// spawn opens name, registers a session for it, and starts the session
// goroutine, whose Run performs the compliance probe. An unopenable port is
// logged and skipped; a port that fails the probe is dropped from the map
// when its session ends. The supervisor never retries either itself.
func (sup *Supervisor) spawn(ctx context.Context, name string) bool {
	port, err := sup.open(name, sup.cfg.LineConfig())
	if err != nil {
		sup.log.Warn("failed to open port", "port", name, "err", err)
		return false
	}

	sessCtx, cancel := context.WithCancel(ctx)
	s := session.New(name, port, sup.cfg, sup.log, sup.handlers)

	sup.mu.Lock()
	sup.sessions[name] = s
	sup.cancels[name] = cancel
	sup.mu.Unlock()

	go func() {
		err := s.Run(sessCtx)
		sup.log.Info("session ended", "port", name, "err", err)

		sup.mu.Lock()
		delete(sup.sessions, name)
		delete(sup.cancels, name)
		sup.mu.Unlock()

		cancel()
	}()

	return true
}

// Ports returns the names of ports currently owned by a running session.
func (sup *Supervisor) Ports() []string {
	sup.mu.Lock()
	defer sup.mu.Unlock()
	names := make([]string, 0, len(sup.sessions))
	for name := range sup.sessions {
		names = append(names, name)
	}
	return names
}

// Session returns the session for name, if one is currently running.
func (sup *Supervisor) Session(name string) (*session.Session, bool) {
	sup.mu.Lock()
	defer sup.mu.Unlock()
	s, ok := sup.sessions[name]
	return s, ok
}

// SendMessage enqueues records as the next outgoing message on name's
// session, the upward send interface. It returns ErrUnknownPort if no
// running session owns name, and session.ErrBusy if a prior message on
// that port is still outstanding.
func (sup *Supervisor) SendMessage(name string, records []record.Record) error {
	s, ok := sup.Session(name)
	if !ok {
		return fmt.Errorf("%w %s", ErrUnknownPort, name)
	}
	return s.Send(records)
}

// Close cancels every session the supervisor currently owns.
func (sup *Supervisor) Close() {
	sup.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(sup.cancels))
	for _, c := range sup.cancels {
		cancels = append(cancels, c)
	}
	sup.mu.Unlock()

	for _, c := range cancels {
		c()
	}
}
