// Package framer implements the ASTM E1381 framing layer: decoding one
// numbered, checksummed frame out of a byte buffer, and encoding a run of
// record text into one or more such frames.
//
// The framer never looks inside a payload for record boundaries on
// decode — splitting a payload into records is the record package's job.
// On encode it does split on record boundaries (CR) when it needs to, so
// it does not sever a record across two frames unless a single record is
// itself too long to fit.
package framer

import (
	"fmt"

	"github.com/labgw/astmgw/checksum"
	"github.com/labgw/astmgw/control"
)

// Frame is one decoded STX...CRLF transmission unit.
type Frame struct {
	// Number is the frame's mod-8 sequence digit, '0'..'7'.
	Number byte

	// Payload is the frame's CR-terminated record text, excluding the
	// leading STX/frame-number and the trailing terminator/checksum/CRLF.
	Payload []byte

	// Last reports whether this frame ended the message (ETX) as opposed
	// to being an intermediate frame of a multi-frame message (ETB).
	Last bool
}

// Decode parses buf as a single ASTM E1381 frame:
// STX FN payload (ETX|ETB) C1 C2 CR LF.
//
// It rejects buf as ErrBadFrame if the leading byte is not STX, the
// trailing two bytes are not CR LF, the terminator is neither ETX nor ETB,
// the frame number is not an ASCII digit '0'..'7', or the checksum does
// not verify. Decode does not require Payload to contain a CR; it never
// parses records.
func Decode(buf []byte) (Frame, error) {
	const minLen = 1 /*STX*/ + 1 /*FN*/ + 1 /*terminator*/ + 2 /*checksum*/ + 2 /*CRLF*/
	if len(buf) < minLen {
		return Frame{}, fmt.Errorf("framer: buffer of length %d: %w", len(buf), ErrBadFrame)
	}
	if buf[0] != control.STX {
		return Frame{}, fmt.Errorf("framer: leading byte %#x is not STX: %w", buf[0], ErrBadFrame)
	}
	if buf[len(buf)-2] != control.CR || buf[len(buf)-1] != control.LF {
		return Frame{}, fmt.Errorf("framer: missing trailing CRLF: %w", ErrBadFrame)
	}

	fn := buf[1]
	if !control.IsFrameNumber(fn) {
		return Frame{}, fmt.Errorf("framer: frame number %q out of range: %w", fn, ErrBadFrame)
	}

	term := buf[len(buf)-5]
	if !control.IsFrameTerminator(term) {
		return Frame{}, fmt.Errorf("framer: terminator %#x is neither ETX nor ETB: %w", term, ErrBadFrame)
	}

	c1, c2 := buf[len(buf)-4], buf[len(buf)-3]
	region := buf[1 : len(buf)-4] // FN through terminator, inclusive
	if !checksum.Verify(region, c1, c2) {
		return Frame{}, fmt.Errorf("framer: checksum mismatch: %w", ErrBadFrame)
	}

	return Frame{
		Number:  fn,
		Payload: buf[2 : len(buf)-5],
		Last:    term == control.ETX,
	}, nil
}

// Encode renders f as the wire bytes STX FN payload (ETX|ETB) C1 C2 CR LF.
func Encode(f Frame) []byte {
	term := control.ETB
	if f.Last {
		term = control.ETX
	}

	out := make([]byte, 0, len(f.Payload)+8)
	out = append(out, control.STX, f.Number)
	out = append(out, f.Payload...)
	out = append(out, term)

	region := out[1:] // FN through terminator, inclusive
	sum := checksum.Compute(region)

	out = append(out, sum[0], sum[1], control.CR, control.LF)
	return out
}

// NextNumber advances a mod-8 frame number the way a transfer phase does:
// frame numbers start at 1 and wrap from 7 back to 0.
func NextNumber(fn byte) byte {
	if fn < '0' || fn > '7' {
		return '1'
	}
	if fn == '7' {
		return '0'
	}
	return fn + 1
}
