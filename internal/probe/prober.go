package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Available reports whether ffprobe is on PATH. Checked once per run and
// threaded through as configuration so videos don't spawn doomed
// subprocesses when the tool is missing.
func Available() bool {
	_, err := exec.LookPath("ffprobe")
	return err == nil
}

// Probe runs a single ffprobe JSON call against path and returns the parsed
// result. The caller bounds runtime via ctx; a hung probe is treated the
// same as a failed one.
func Probe(ctx context.Context, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---
// Only the tag maps are kept; everything else ffprobe reports (codecs,
// durations, dispositions) is irrelevant to renaming.

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Tags map[string]string `json:"tags"`
}

type ffprobeStream struct {
	Tags map[string]string `json:"tags"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *Result {
	r := &Result{FormatTags: lowerKeys(raw.Format.Tags)}
	for i := range raw.Streams {
		if tags := lowerKeys(raw.Streams[i].Tags); tags != nil {
			r.StreamTags = append(r.StreamTags, tags)
		}
	}
	return r
}

// lowerKeys normalizes tag keys to lowercase. Matroska tags come back
// uppercased while MP4/MOV tags are lowercase; the candidate scan should
// not have to care.
func lowerKeys(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[strings.ToLower(k)] = v
	}
	return out
}
