// Package check provides system diagnostics (--check mode) and the
// once-per-run ffprobe capability lookup.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/snapdate/internal/naming"
)

// ErrFfprobeNotFound is returned by ProbeVersion when the tool is missing.
// Its absence is never fatal: videos degrade to filesystem timestamps.
var ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: ffprobe availability and
// version, the built-in photo metadata reader, and the extension tables.
// Informational only; nothing here stops a later run.
func RunCheck(log Logger) {
	log.Info("=== System Check ===")

	checkFfprobe(log)
	log.Success("Photo metadata: built-in EXIF reader (JPEG/TIFF/DNG)")
	log.Info("PNG/BMP/HEIC photos fall back to filesystem timestamps")
	log.Info("Photo extensions: %s", strings.Join(naming.PhotoExtensions(), " "))
	log.Info("Video extensions: %s", strings.Join(naming.VideoExtensions(), " "))
}

// checkFfprobe verifies ffprobe is on PATH and logs its version string.
func checkFfprobe(log Logger) {
	version, err := ProbeVersion()
	if err != nil {
		log.Warn("ffprobe not found; video files will use filesystem timestamps")
		log.Warn("Install FFmpeg to read video capture dates: https://ffmpeg.org/download.html")
		return
	}
	log.Success("ffprobe: %s", version)
}

// ProbeVersion returns ffprobe's first version line, or ErrFfprobeNotFound.
func ProbeVersion() (string, error) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return "", ErrFfprobeNotFound
	}
	out, err := exec.Command("ffprobe", "-version").Output()
	if err != nil {
		return "", ErrFfprobeNotFound
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	return firstLine, nil
}
