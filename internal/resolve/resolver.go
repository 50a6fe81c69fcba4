// Package resolve produces a best-effort capture timestamp for every media
// file. The fallback chain is fixed: type-specific metadata (EXIF for
// photos, container tags for videos) over filesystem timestamps, because
// filesystem dates drift when files are copied between devices.
//
// Resolve is total: any extraction failure falls through to the next chain
// step, and the filesystem step always yields a value.
package resolve

import (
	"context"
	"time"

	"github.com/backmassage/snapdate/internal/exifdate"
	"github.com/backmassage/snapdate/internal/naming"
	"github.com/backmassage/snapdate/internal/probe"
)

// Source tags where a resolved timestamp came from. Kept on the file for
// dry-run and verbose diagnostics.
type Source int

const (
	SourceExif Source = iota
	SourceVideoMetadata
	SourceFilesystem
)

// String returns the diagnostic label.
func (s Source) String() string {
	switch s {
	case SourceExif:
		return "exif"
	case SourceVideoMetadata:
		return "video metadata"
	default:
		return "filesystem"
	}
}

// Resolver resolves capture timestamps. ProbeAvailable is determined once
// per run; when false, videos skip straight to the filesystem step instead
// of spawning a doomed ffprobe per file.
type Resolver struct {
	ProbeAvailable bool
	ProbeTimeout   time.Duration
}

// New creates a Resolver. probeTimeout bounds each ffprobe invocation; an
// indefinitely hung probe degrades to the filesystem fallback.
func New(probeAvailable bool, probeTimeout time.Duration) *Resolver {
	return &Resolver{ProbeAvailable: probeAvailable, ProbeTimeout: probeTimeout}
}

// Resolve returns the capture timestamp for path and the source it came
// from. It never fails: metadata errors of any kind (unsupported format,
// missing tags, probe failure) fall through the chain.
func (r *Resolver) Resolve(ctx context.Context, path string, cat naming.Category) (time.Time, Source) {
	switch cat {
	case naming.Photo:
		if t, err := exifdate.DateTaken(path); err == nil {
			return t, SourceExif
		}
	case naming.Video:
		if r.ProbeAvailable {
			if t, ok := r.probeCreationTime(ctx, path); ok {
				return t, SourceVideoMetadata
			}
		}
	}
	return fsTimestamp(path), SourceFilesystem
}

func (r *Resolver) probeCreationTime(ctx context.Context, path string) (time.Time, bool) {
	if r.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.ProbeTimeout)
		defer cancel()
	}
	pr, err := probe.Probe(ctx, path)
	if err != nil {
		return time.Time{}, false
	}
	return pr.CreationTime()
}
