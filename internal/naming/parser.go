package naming

import (
	"regexp"
	"strconv"
	"time"
)

// targetPattern matches basenames produced by TargetName.
var targetPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) - Phone (Photos|Videos) \((\d+)\)\.[A-Za-z0-9]+$`)

// ParsedName is the result of parsing a basename that already follows the
// target scheme. Used for diagnostics on re-runs; the date carries no time
// component.
type ParsedName struct {
	Date     time.Time
	Category Category
	Index    int
}

// ParseTargetName parses a basename previously produced by TargetName.
// Returns false for any name outside the scheme, including malformed dates
// like 2023-13-40.
func ParseTargetName(base string) (ParsedName, bool) {
	m := targetPattern.FindStringSubmatch(base)
	if m == nil {
		return ParsedName{}, false
	}
	date, err := time.ParseInLocation("2006-01-02", m[1], time.Local)
	if err != nil {
		return ParsedName{}, false
	}
	index, err := strconv.Atoi(m[3])
	if err != nil || index < 1 {
		return ParsedName{}, false
	}
	cat := Photo
	if m[2] == "Videos" {
		cat = Video
	}
	return ParsedName{Date: date, Category: cat, Index: index}, true
}
