package serial

import (
	"os"
	"time"

	"github.com/creack/pty"
)

// PTYPort wraps the master side of a pseudo-terminal pair. It is used by
// supervisor tests to stand in for a physical serial port,
// and is available as a loopback adapter for a simulated analyzer process
// attached to the slave side.
type PTYPort struct {
	master *os.File
	slave  *os.File
}

// OpenPTYPort opens a new pseudo-terminal pair. The returned PTYPort's
// Read/Write/Close/SetReadDeadline operate on the master side; Slave
// returns the device a simulated analyzer should open.
func OpenPTYPort() (*PTYPort, error) {
	ptmx, pts, err := pty.Open()
	if err != nil {
		return nil, err
	}
	return &PTYPort{master: ptmx, slave: pts}, nil
}

// Slave returns the *os.File a test harness or simulated analyzer uses as
// the other end of the pair.
func (p *PTYPort) Slave() *os.File { return p.slave }

// SlaveName returns the pathname of the slave device, e.g. /dev/pts/4.
func (p *PTYPort) SlaveName() string { return p.slave.Name() }

func (p *PTYPort) Read(b []byte) (int, error)  { return p.master.Read(b) }
func (p *PTYPort) Write(b []byte) (int, error) { return p.master.Write(b) }

func (p *PTYPort) SetReadDeadline(d time.Time) error {
	return p.master.SetReadDeadline(d)
}

// Close closes both ends of the pair.
func (p *PTYPort) Close() error {
	slaveErr := p.slave.Close()
	masterErr := p.master.Close()
	if masterErr != nil {
		return masterErr
	}
	return slaveErr
}
