package probe

import (
	"testing"
	"time"
)

// Realistic ffprobe JSON for an iPhone MOV with creation dates in both the
// format section and the video stream.
const sampleMOV = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "hevc",
      "codec_type": "video",
      "tags": { "creation_time": "2023-01-15T10:05:12.000000Z", "language": "und" }
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_type": "audio",
      "tags": { "creation_time": "2023-01-15T10:05:12.000000Z" }
    }
  ],
  "format": {
    "filename": "/photos/VID_001.mov",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "12.480000",
    "tags": {
      "creation_time": "2023-01-15T10:05:00.000000Z",
      "com.apple.quicktime.creationdate": "2023-01-15T11:05:00+0100"
    }
  }
}`

// Matroska file: uppercase tag keys, date only in a stream.
const sampleMKV = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "tags": { "CREATION_TIME": "2022-08-03 19:22:41" }
    }
  ],
  "format": {
    "filename": "/photos/clip.mkv",
    "format_name": "matroska,webm",
    "duration": "31.000000",
    "tags": { "ENCODER": "libebml" }
  }
}`

// No date tags anywhere.
const sampleBare = `{
  "streams": [
    { "index": 0, "codec_name": "mpeg4", "codec_type": "video" }
  ],
  "format": {
    "filename": "/photos/old.avi",
    "format_name": "avi",
    "duration": "8.2"
  }
}`

func TestParseJSON_MOV(t *testing.T) {
	r, err := ParseJSON([]byte(sampleMOV))
	if err != nil {
		t.Fatal(err)
	}
	if r.FormatTags["creation_time"] != "2023-01-15T10:05:00.000000Z" {
		t.Errorf("format tags: got %v", r.FormatTags)
	}
	if len(r.StreamTags) != 2 {
		t.Fatalf("stream tag maps: got %d, want 2", len(r.StreamTags))
	}
	if r.StreamTags[0]["creation_time"] != "2023-01-15T10:05:12.000000Z" {
		t.Errorf("stream 0 tags: got %v", r.StreamTags[0])
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestCreationTime_FormatTagWins(t *testing.T) {
	r, err := ParseJSON([]byte(sampleMOV))
	if err != nil {
		t.Fatal(err)
	}
	got, ok := r.CreationTime()
	if !ok {
		t.Fatal("expected a creation time")
	}
	// The format-level creation_time (10:05:00) outranks both the Apple
	// vendor tag and the stream tag (10:05:12).
	want := time.Date(2023, 1, 15, 10, 5, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("creation time: got %v, want %v", got, want)
	}
}

func TestCreationTime_StreamFallback(t *testing.T) {
	r, err := ParseJSON([]byte(sampleMKV))
	if err != nil {
		t.Fatal(err)
	}
	got, ok := r.CreationTime()
	if !ok {
		t.Fatal("expected a creation time from the uppercase stream tag")
	}
	want := time.Date(2022, 8, 3, 19, 22, 41, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("creation time: got %v, want %v", got, want)
	}
}

func TestCreationTime_Absent(t *testing.T) {
	r, err := ParseJSON([]byte(sampleBare))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.CreationTime(); ok {
		t.Fatal("expected no creation time")
	}
}

func TestParseTagTime(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"iso with fraction and Z", "2023-01-15T14:30:45.000000Z", time.Date(2023, 1, 15, 14, 30, 45, 0, time.Local), true},
		{"iso plain", "2023-01-15T14:30:45", time.Date(2023, 1, 15, 14, 30, 45, 0, time.Local), true},
		{"iso with offset", "2023-01-15T14:30:45+01:00", time.Date(2023, 1, 15, 14, 30, 45, 0, time.Local), true},
		{"iso with negative offset", "2023-01-15T14:30:45-0800", time.Date(2023, 1, 15, 14, 30, 45, 0, time.Local), true},
		{"space separated", "2023-01-15 14:30:45", time.Date(2023, 1, 15, 14, 30, 45, 0, time.Local), true},
		{"exif colons", "2023:01:15 14:30:45", time.Date(2023, 1, 15, 14, 30, 45, 0, time.Local), true},
		{"surrounding whitespace", "  2023-01-15 14:30:45 ", time.Date(2023, 1, 15, 14, 30, 45, 0, time.Local), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "last tuesday", time.Time{}, false},
		{"date only", "2023-01-15", time.Time{}, false},
		{"malformed iso", "2023-01-15Tnoon", time.Time{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseTagTime(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok: got %v, want %v", ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("time: got %v, want %v", got, tc.want)
			}
		})
	}
}
