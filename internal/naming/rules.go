// Package naming owns the target filename scheme: media categories,
// extension tables, name construction, parse-back of already-renamed files,
// and in-batch collision resolution.
package naming

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Category classifies a media file by its extension.
type Category int

const (
	Photo Category = iota
	Video
)

// String returns the lowercase short name ("photo" / "video").
func (c Category) String() string {
	if c == Video {
		return "video"
	}
	return "photo"
}

// Label returns the pluralized filename label ("Phone Photos" / "Phone Videos").
func (c Category) Label() string {
	if c == Video {
		return "Phone Videos"
	}
	return "Phone Photos"
}

// Supported photo extensions (lowercase, with leading dot). HEIC/HEIF and
// DNG are discovered like any other photo; when their metadata cannot be
// read the resolver falls back to filesystem timestamps.
var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".tif":  true,
	".bmp":  true,
	".heic": true,
	".heif": true,
	".dng":  true,
}

// Supported video extensions (lowercase, with leading dot).
var videoExtensions = map[string]bool{
	".mov": true,
	".mp4": true,
	".avi": true,
	".mkv": true,
	".m4v": true,
	".3gp": true,
	".wmv": true,
}

// CategoryForExt maps a file extension (any case, with leading dot) to its
// category. The second result is false for non-media extensions.
func CategoryForExt(ext string) (Category, bool) {
	ext = strings.ToLower(ext)
	if photoExtensions[ext] {
		return Photo, true
	}
	if videoExtensions[ext] {
		return Video, true
	}
	return Photo, false
}

// PhotoExtensions returns the supported photo extensions, sorted.
func PhotoExtensions() []string { return sortedKeys(photoExtensions) }

// VideoExtensions returns the supported video extensions, sorted.
func VideoExtensions() []string { return sortedKeys(videoExtensions) }

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsMediaPath reports whether path has a supported photo or video extension.
func IsMediaPath(path string) bool {
	_, ok := CategoryForExt(filepath.Ext(path))
	return ok
}

// TargetName builds the normalized basename for a file captured on date,
// with the given in-day sequence index. The original extension is kept but
// lowercased.
func TargetName(date time.Time, cat Category, index int, ext string) string {
	return fmt.Sprintf("%s - %s (%d)%s",
		date.Format("2006-01-02"), cat.Label(), index, strings.ToLower(ext))
}
