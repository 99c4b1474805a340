package gwlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/strftime"
)

// dailyFileLayout produces one file per calendar day, its date rendered
// the same YYYYMMDD way ASTM timestamps are.
const dailyFileLayout = "%Y%m%d.log"

var dailyFileFormatter = mustNewStrftime(dailyFileLayout)

func mustNewStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// OpenDailyFile opens (creating if needed) dir/YYYYMMDD.log for append,
// rolling to a new file the next time it is called on a new day.
func OpenDailyFile(dir string, now time.Time) (*os.File, error) {
	name := dailyFileFormatter.FormatString(now)
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("gwlog: open %s: %w", path, err)
	}
	return f, nil
}
