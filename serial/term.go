package serial

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pkg/term"
)

// TermPort opens a real serial device via github.com/pkg/term, raw mode
// with a configurable line speed.
//
// pkg/term has no native per-read deadline, so TermPort runs one
// persistent reader goroutine for the life of the port: it alone blocks
// in term.Read, handing chunks over a channel that Read drains. A Read
// whose deadline elapses returns os.ErrDeadlineExceeded without touching
// the caller's buffer; the in-flight chunk stays queued for the next
// Read. Read is not safe for concurrent callers.
type TermPort struct {
	t    *term.Term
	ch   chan termChunk
	done chan struct{}

	// pending holds bytes received ahead of what callers have consumed,
	// and the terminal read error once one arrives.
	pending    []byte
	pendingErr error

	mu       sync.Mutex
	deadline time.Time

	closeOnce sync.Once
}

type termChunk struct {
	data []byte
	err  error
}

// OpenTermPort opens device (e.g. "/dev/ttyUSB0") in raw mode at cfg's
// baud rate. Parity and flow control are accepted for
// configuration-surface completeness but pkg/term does not expose a knob
// for them beyond RawMode; callers that need non-default parity or
// hardware flow control should supply their own Port implementation.
func OpenTermPort(device string, cfg LineConfig) (*TermPort, error) {
	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", device, err)
	}

	switch cfg.BaudRate {
	case 0:
		// Leave it alone.
	case 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200:
		if err := t.SetSpeed(cfg.BaudRate); err != nil {
			t.Close()
			return nil, fmt.Errorf("serial: set speed %d on %s: %w", cfg.BaudRate, device, err)
		}
	default:
		t.Close()
		return nil, fmt.Errorf("serial: unsupported baud rate %d", cfg.BaudRate)
	}

	p := &TermPort{
		t:    t,
		ch:   make(chan termChunk),
		done: make(chan struct{}),
	}
	go p.readLoop()
	return p, nil
}

// readLoop is the single goroutine that blocks in term.Read. It owns its
// buffers outright; nothing it reads into is ever a caller's slice, so an
// abandoned deadline wait cannot race a later Read.
func (p *TermPort) readLoop() {
	for {
		buf := make([]byte, 256)
		n, err := p.t.Read(buf)

		select {
		case p.ch <- termChunk{data: buf[:n], err: err}:
		case <-p.done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (p *TermPort) Write(b []byte) (int, error) { return p.t.Write(b) }

// Close stops the reader goroutine and closes the device. A readLoop
// blocked in term.Read observes the closed descriptor and exits.
func (p *TermPort) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return p.t.Close()
}

func (p *TermPort) SetReadDeadline(d time.Time) error {
	p.mu.Lock()
	p.deadline = d
	p.mu.Unlock()
	return nil
}

// Read returns buffered bytes if any are pending, otherwise waits for
// the reader goroutine's next chunk, bounded by the deadline when one is
// set. Expiry returns os.ErrDeadlineExceeded and leaves the port usable;
// whatever the reader produces afterwards is delivered by the next Read.
func (p *TermPort) Read(b []byte) (int, error) {
	if len(p.pending) > 0 {
		n := copy(b, p.pending)
		p.pending = p.pending[n:]
		return n, nil
	}
	if p.pendingErr != nil {
		return 0, p.pendingErr
	}

	p.mu.Lock()
	deadline := p.deadline
	p.mu.Unlock()

	var expired <-chan time.Time
	if !deadline.IsZero() {
		wait := time.Until(deadline)
		if wait <= 0 {
			return 0, os.ErrDeadlineExceeded
		}
		timer := time.NewTimer(wait)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case chunk := <-p.ch:
		if chunk.err != nil {
			p.pendingErr = chunk.err
		}
		if len(chunk.data) == 0 {
			return 0, chunk.err
		}
		n := copy(b, chunk.data)
		p.pending = chunk.data[n:]
		return n, nil
	case <-expired:
		return 0, os.ErrDeadlineExceeded
	case <-p.done:
		return 0, os.ErrClosed
	}
}
