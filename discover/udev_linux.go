//go:build linux

package discover

import (
	"context"
	"fmt"

	"github.com/jochenvg/go-udev"
)

// UdevLister enumerates tty subsystem devices via udev. It is the
// default Lister on Linux.
type UdevLister struct {
	u udev.Udev
}

// NewUdevLister returns a ready-to-use UdevLister.
func NewUdevLister() *UdevLister {
	return &UdevLister{u: udev.Udev{}}
}

// List enumerates /dev device nodes in the tty subsystem.
func (l *UdevLister) List(ctx context.Context) ([]string, error) {
	e := l.u.NewEnumerate()
	if err := e.AddMatchSubsystem("tty"); err != nil {
		return nil, fmt.Errorf("discover: match tty subsystem: %w", err)
	}

	devices, err := e.Devices()
	if err != nil {
		return nil, fmt.Errorf("discover: enumerate devices: %w", err)
	}

	var names []string
	for _, d := range devices {
		if node := d.Devnode(); node != "" {
			names = append(names, node)
		}
	}
	return names, nil
}
