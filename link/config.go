package link

import "time"

// Config carries the tunables the ASTM E1381 state machine needs: the
// three link timers, the retry budgets, and two behaviors deployments
// occasionally need inverted from their defaults.
type Config struct {
	// T1 bounds the backoff before re-sending ENQ after a NAK during
	// establishment. The standard requires 1s <= T1 < 10s.
	T1 time.Duration

	// T2 bounds how long the sender waits for ACK/NAK during
	// establishment and transfer-out.
	T2 time.Duration

	// T3 bounds receive inactivity during transfer-in before the
	// in-flight message is discarded.
	T3 time.Duration

	// MaxRetransmissions caps consecutive NAKs (sending) or bad frames
	// (receiving) for a single frame before the transfer aborts.
	MaxRetransmissions int

	// MaxPayload is the maximum octets of record text per frame on
	// encode.
	MaxPayload int

	// YieldOnContention selects the "host always yields" default: when
	// RxENQ arrives while this side has an establishment pending, it
	// answers ACK and becomes the receiver rather than continuing to
	// contend for the sender role. When false, an incoming ENQ during
	// establishment is treated like a lost round: the host backs off and
	// re-sends its own ENQ, still bound by MaxRetransmissions.
	YieldOnContention bool

	// MonotonicFrameNumbers, when true, continues the mod-8 frame number
	// sequence across messages within one session instead of resetting
	// to 1 at each TransferOut entry. Off by default; some vendor
	// profiles require the continuation.
	MonotonicFrameNumbers bool
}

// DefaultConfig returns the standard timer and retry defaults.
func DefaultConfig() Config {
	return Config{
		T1:                    2 * time.Second,
		T2:                    15 * time.Second,
		T3:                    30 * time.Second,
		MaxRetransmissions:    6,
		MaxPayload:            240,
		YieldOnContention:     true,
		MonotonicFrameNumbers: false,
	}
}
