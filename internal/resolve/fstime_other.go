//go:build !linux

package resolve

import (
	"os"
	"time"
)

// fsTimestamp returns the file's modification time. Platforms without a
// portable stat ctime get mtime only; it survives copies on most
// filesystems and is the closest stable signal to the capture date.
func fsTimestamp(path string) time.Time {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Now()
	}
	return fi.ModTime()
}
