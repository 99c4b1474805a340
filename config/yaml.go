package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/labgw/astmgw/serial"
)

// fileConfig mirrors the YAML document shape. Fields are pointers so
// FromFile can tell "absent" from "explicitly zero" and only override the
// corresponding Default() field when present; missing keys leave
// built-in defaults alone.
type fileConfig struct {
	BaudRate           *int    `yaml:"baud_rate"`
	Parity             *string `yaml:"parity"`
	StopBits           *int    `yaml:"stop_bits"`
	FlowControl        *string `yaml:"flow_control"`
	ReadTimeoutMs      *int    `yaml:"read_timeout_ms"`
	T1BackoffMs        *int    `yaml:"t1_backoff_ms"`
	T2ResponseMs       *int    `yaml:"t2_response_ms"`
	T3InactivityMs     *int    `yaml:"t3_inactivity_ms"`
	MaxFramePayload    *int    `yaml:"max_frame_payload"`
	MaxRetransmissions *int    `yaml:"max_retransmissions"`

	YieldOnContention     *bool `yaml:"yield_on_contention"`
	MonotonicFrameNumbers *bool `yaml:"monotonic_frame_numbers"`
}

// FromFile reads path and layers its values over Default(). A missing
// file is not an error; it returns Default() unchanged.
func FromFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.BaudRate != nil {
		cfg.BaudRate = *fc.BaudRate
	}
	if fc.Parity != nil {
		p, err := parseParity(*fc.Parity)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		cfg.Parity = p
	}
	if fc.StopBits != nil {
		cfg.StopBits = *fc.StopBits
	}
	if fc.FlowControl != nil {
		fl, err := parseFlowControl(*fc.FlowControl)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		cfg.FlowControl = fl
	}
	if fc.ReadTimeoutMs != nil {
		cfg.ReadTimeout = msToDuration(*fc.ReadTimeoutMs)
	}
	if fc.T1BackoffMs != nil {
		cfg.T1 = msToDuration(*fc.T1BackoffMs)
	}
	if fc.T2ResponseMs != nil {
		cfg.T2 = msToDuration(*fc.T2ResponseMs)
	}
	if fc.T3InactivityMs != nil {
		cfg.T3 = msToDuration(*fc.T3InactivityMs)
	}
	if fc.MaxFramePayload != nil {
		cfg.MaxFramePayload = *fc.MaxFramePayload
	}
	if fc.MaxRetransmissions != nil {
		cfg.MaxRetransmissions = *fc.MaxRetransmissions
	}
	if fc.YieldOnContention != nil {
		cfg.YieldOnContention = *fc.YieldOnContention
	}
	if fc.MonotonicFrameNumbers != nil {
		cfg.MonotonicFrameNumbers = *fc.MonotonicFrameNumbers
	}

	return cfg, nil
}

func parseParity(s string) (serial.Parity, error) {
	switch s {
	case "none", "":
		return serial.ParityNone, nil
	case "even":
		return serial.ParityEven, nil
	case "odd":
		return serial.ParityOdd, nil
	default:
		return 0, fmt.Errorf("unknown parity %q", s)
	}
}

func parseFlowControl(s string) (serial.FlowControl, error) {
	switch s {
	case "software", "":
		return serial.FlowControlSoftware, nil
	case "hardware":
		return serial.FlowControlHardware, nil
	case "none":
		return serial.FlowControlNone, nil
	default:
		return 0, fmt.Errorf("unknown flow_control %q", s)
	}
}
