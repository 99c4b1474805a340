package record

import (
	"time"

	"github.com/lestrrat-go/strftime"
)

// timestampLayout is the ASTM YYYYMMDDHHMMSS form used by sent_at,
// collection times, and every other timestamp field in the record-kind
// contracts.
const timestampLayout = "%Y%m%d%H%M%S"

var timestampFormatter = mustNewStrftime(timestampLayout)

func mustNewStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// FormatTimestamp renders t in the ASTM wire format. This gateway never
// parses timestamps out of received fields — those are surfaced as raw
// bytes to the upward handler — but it uses this when building outgoing
// records that carry a generated timestamp, such as a Header's sent_at.
func FormatTimestamp(t time.Time) string {
	return timestampFormatter.FormatString(t)
}
