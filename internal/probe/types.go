package probe

import (
	"strings"
	"time"
)

// Result holds the metadata tags from a single ffprobe JSON call, with tag
// keys normalized to lowercase. Only tags are kept; the renamer reads
// nothing else from the container.
type Result struct {
	FormatTags map[string]string
	StreamTags []map[string]string // one map per stream that carries tags
}

// Candidate creation-date tag names, in trust order. The format section is
// scanned first with the full list; stream tags with the short list.
// Different phone and camera vendors populate different fields.
var (
	formatDateTags = []string{"creation_time", "date", "creation_date", "com.apple.quicktime.creationdate"}
	streamDateTags = []string{"creation_time", "date"}
)

// CreationTime returns the container-level capture timestamp: the first
// present, well-formed value in the fixed candidate order. False when no
// usable date tag exists anywhere in the file.
func (r *Result) CreationTime() (time.Time, bool) {
	for _, name := range formatDateTags {
		if v, ok := r.FormatTags[name]; ok {
			if t, ok := ParseTagTime(v); ok {
				return t, true
			}
		}
	}
	for _, tags := range r.StreamTags {
		for _, name := range streamDateTags {
			if v, ok := tags[name]; ok {
				if t, ok := ParseTagTime(v); ok {
					return t, true
				}
			}
		}
	}
	return time.Time{}, false
}

// ParseTagTime parses a metadata date value as naive local wall-clock time.
// ISO 8601 values ("2023-01-15T14:30:45.000000Z") have fractional seconds
// and the offset stripped rather than converted: grouping by calendar date
// wants the recorded wall clock, not a shifted UTC instant.
func ParseTagTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.ContainsRune(s, 'T') {
		if i := strings.IndexByte(s, '.'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSuffix(s, "Z")
		// Strip a trailing +hh:mm / -hh:mm offset. The search starts past
		// the date portion so the date's own dashes are not mistaken for it.
		if i := strings.LastIndexAny(s, "+-"); i >= len("2006-01-02T") {
			s = s[:i]
		}
		t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range []string{"2006-01-02 15:04:05", "2006:01:02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
