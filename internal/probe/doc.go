// Package probe provides ffprobe-based container metadata inspection for
// video files. A single JSON call per file returns the format and stream
// tags; CreationTime scans a fixed candidate list of date tags and parses
// the first usable value.
//
// ffprobe availability is a run-level capability (see Available); every
// failure mode here is recoverable — callers fall back to filesystem
// timestamps.
package probe
