// Package exifdate extracts capture timestamps from photo EXIF metadata.
//
// Decoding is delegated to goexif, which reads the EXIF block of JPEG and
// TIFF-family files (including DNG). Formats without a readable EXIF block
// (PNG, BMP, HEIC) return an error and the caller falls back to filesystem
// timestamps; absence of metadata is never fatal to a batch.
package exifdate

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// DateTaken returns the embedded capture timestamp of the photo at path.
// goexif's DateTime prefers DateTimeOriginal and falls back to the plain
// DateTime tag, parsed as naive local time.
func DateTaken(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	return x.DateTime()
}
