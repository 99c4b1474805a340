//go:build !linux

package discover

import (
	"context"
	"runtime"

	"fmt"
)

// UdevLister is a stub on non-Linux platforms, where udev does not exist.
// NewUdevLister still compiles so supervisor wiring can select a Lister by
// platform without build-tagged call sites of its own; List always fails.
type UdevLister struct{}

func NewUdevLister() *UdevLister { return &UdevLister{} }

func (l *UdevLister) List(ctx context.Context) ([]string, error) {
	return nil, fmt.Errorf("discover: udev port enumeration is not available on %s", runtime.GOOS)
}
