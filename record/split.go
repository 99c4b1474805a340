package record

import "github.com/labgw/astmgw/control"

// SplitRecords splits a decoded frame's payload into its constituent
// records and parses each one. A frame payload may carry more than one
// record, separated by CR; SplitRecords consumes the CR that terminates
// each one and drops a final empty segment left by a trailing CR.
//
// Every record gets the 2-byte frame marker Parse expects prepended
// uniformly (the frame's leading STX and frameNumber digit), not just the
// first: classification and field-position math must land correctly
// regardless of where a record falls within the frame. The CR itself is
// not retained in the parsed record's raw bytes.
func SplitRecords(frameNumber byte, payload []byte) ([]Record, error) {
	var records []Record

	start := 0
	for i := 0; i < len(payload); i++ {
		if payload[i] != control.CR {
			continue
		}
		segment := payload[start:i]
		start = i + 1

		rec, err := parseSegment(frameNumber, segment)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if start < len(payload) {
		rec, err := parseSegment(frameNumber, payload[start:])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseSegment(frameNumber byte, segment []byte) (Record, error) {
	buf := make([]byte, 0, len(segment)+2)
	buf = append(buf, control.STX, frameNumber)
	buf = append(buf, segment...)
	return Parse(buf)
}
