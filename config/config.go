// Package config holds the gateway's runtime configuration surface:
// serial line parameters, link timers, and retry limits. Values load
// from an optional YAML file and then from command-line flags, so flags
// win over the file and the file wins over built-in defaults.
package config

import (
	"time"

	"github.com/labgw/astmgw/serial"
)

// Config is the fully resolved configuration for one gateway instance.
type Config struct {
	BaudRate    int
	Parity      serial.Parity
	StopBits    int
	FlowControl serial.FlowControl
	ReadTimeout time.Duration

	T1 time.Duration
	T2 time.Duration
	T3 time.Duration

	MaxFramePayload    int
	MaxRetransmissions int

	// YieldOnContention selects the "host always yields" behavior when an
	// incoming ENQ collides with our own establishment; on by default.
	YieldOnContention bool

	// MonotonicFrameNumbers continues the mod-8 frame number sequence
	// across messages within one session instead of resetting to 1 at
	// each transfer; off by default.
	MonotonicFrameNumbers bool
}

// Default returns the gateway's built-in defaults.
func Default() Config {
	line := serial.DefaultLineConfig()
	return Config{
		BaudRate:    line.BaudRate,
		Parity:      line.Parity,
		StopBits:    line.StopBits,
		FlowControl: line.FlowControl,
		ReadTimeout: line.ReadTimeout,

		T1: 2 * time.Second,
		T2: 15 * time.Second,
		T3: 30 * time.Second,

		MaxFramePayload:    240,
		MaxRetransmissions: 6,

		YieldOnContention:     true,
		MonotonicFrameNumbers: false,
	}
}

// LineConfig extracts the serial.LineConfig portion of c.
func (c Config) LineConfig() serial.LineConfig {
	return serial.LineConfig{
		BaudRate:    c.BaudRate,
		Parity:      c.Parity,
		StopBits:    c.StopBits,
		FlowControl: c.FlowControl,
		ReadTimeout: c.ReadTimeout,
	}
}
