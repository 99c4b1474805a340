// Package discover defines the port-enumeration interface
// supervisor.Supervisor depends on, plus a Linux udev-backed
// implementation and a static test double.
package discover

import "context"

// Lister discovers the current set of candidate serial port device
// names. The supervisor never opens a port itself beyond what Lister
// names, so a deployment can swap in its own enumeration.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// Static is a Lister that always returns a fixed set of device names. It
// stands in for real port enumeration in supervisor tests.
type Static struct {
	Devices []string
	Err     error
}

func (s Static) List(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Devices, nil
}
