package session

import "github.com/labgw/astmgw/record"

// Delivery is one complete message received from a port, tagged with the
// port it arrived on and its position in that port's receive sequence.
// The two metadata fields let callers correlate an OnMessageReceived
// delivery with the OnSessionState events surrounding it.
type Delivery struct {
	PortName string
	Seq      uint64
	Records  []record.Record
}

// messageFrameMarker is the placeholder frame-number digit record.Parse's
// 2-byte marker convention requires. A fully assembled message's payload
// has already been stripped of its per-frame STX/frame-number bytes by
// framer.Assembler; the marker value itself is never read by any field
// accessor, only its presence at position 1 is required for the type
// letter to land at position 2 (record.Parse).
const messageFrameMarker = '0'

func splitDelivery(portName string, seq uint64, msg []byte) (Delivery, error) {
	records, err := record.SplitRecords(messageFrameMarker, msg)
	if err != nil {
		return Delivery{}, err
	}
	return Delivery{PortName: portName, Seq: seq, Records: records}, nil
}

// buildMessage renders records back into CR-joined wire text, stripping
// the 2-byte frame marker each Record carries internally. It is the
// inverse of splitDelivery, used by Session.Send to turn an outgoing
// record list into the byte string link.Machine's outbox expects.
func buildMessage(records []record.Record) []byte {
	var out []byte
	for i, r := range records {
		if i > 0 {
			out = append(out, '\r')
		}
		raw := r.Raw()
		if len(raw) > 2 {
			out = append(out, raw[2:]...)
		}
	}
	return out
}
