package config

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/labgw/astmgw/serial"
)

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// FromFlags registers the configuration surface's options on fs, with
// defaults drawn from Default(), and returns a function that, once
// fs.Parse has run, layers only the flags the caller explicitly set over
// base. Resolution takes base as an argument rather than capturing it so
// a config file read after flag registration still loses to flags but
// wins over built-in defaults.
func FromFlags(fs *pflag.FlagSet) func(base Config) Config {
	def := Default()
	baudRate := fs.Int("baud-rate", def.BaudRate, "Serial line baud rate.")
	parity := fs.String("parity", parityString(def.Parity), "Serial line parity: none, even, or odd.")
	stopBits := fs.Int("stop-bits", def.StopBits, "Serial line stop bits.")
	flowControl := fs.String("flow-control", flowControlString(def.FlowControl), "Serial line flow control: software, hardware, or none.")
	readTimeoutMs := fs.Int("read-timeout-ms", int(def.ReadTimeout/time.Millisecond), "Serial read timeout in milliseconds.")
	t1Ms := fs.Int("t1-backoff-ms", int(def.T1/time.Millisecond), "E1381 T1 retry-backoff in milliseconds.")
	t2Ms := fs.Int("t2-response-ms", int(def.T2/time.Millisecond), "E1381 T2 response timeout in milliseconds.")
	t3Ms := fs.Int("t3-inactivity-ms", int(def.T3/time.Millisecond), "E1381 T3 inactivity timeout in milliseconds.")
	maxPayload := fs.Int("max-frame-payload", def.MaxFramePayload, "Maximum E1381 frame payload size.")
	maxRetrans := fs.Int("max-retransmissions", def.MaxRetransmissions, "Maximum retransmissions before a phase is abandoned.")

	return func(base Config) Config {
		cfg := base
		if fs.Changed("baud-rate") {
			cfg.BaudRate = *baudRate
		}
		if fs.Changed("parity") {
			if p, err := parseParity(*parity); err == nil {
				cfg.Parity = p
			}
		}
		if fs.Changed("stop-bits") {
			cfg.StopBits = *stopBits
		}
		if fs.Changed("flow-control") {
			if fl, err := parseFlowControl(*flowControl); err == nil {
				cfg.FlowControl = fl
			}
		}
		if fs.Changed("read-timeout-ms") {
			cfg.ReadTimeout = msToDuration(*readTimeoutMs)
		}
		if fs.Changed("t1-backoff-ms") {
			cfg.T1 = msToDuration(*t1Ms)
		}
		if fs.Changed("t2-response-ms") {
			cfg.T2 = msToDuration(*t2Ms)
		}
		if fs.Changed("t3-inactivity-ms") {
			cfg.T3 = msToDuration(*t3Ms)
		}
		if fs.Changed("max-frame-payload") {
			cfg.MaxFramePayload = *maxPayload
		}
		if fs.Changed("max-retransmissions") {
			cfg.MaxRetransmissions = *maxRetrans
		}
		return cfg
	}
}

func parityString(p serial.Parity) string {
	switch p {
	case serial.ParityEven:
		return "even"
	case serial.ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

func flowControlString(f serial.FlowControl) string {
	switch f {
	case serial.FlowControlHardware:
		return "hardware"
	case serial.FlowControlNone:
		return "none"
	default:
		return "software"
	}
}
