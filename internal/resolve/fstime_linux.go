//go:build linux

package resolve

import (
	"os"
	"syscall"
	"time"
)

// fsTimestamp returns the filesystem timestamp for path: the earlier of
// status-change time and modification time. A file copied from a phone gets
// a fresh ctime but keeps its mtime, so the earlier of the two is closer to
// the capture date. Unix exposes no true creation time through stat.
//
// A failed stat yields the current time; the file will surface its real
// problem when the rename is attempted.
func fsTimestamp(path string) time.Time {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Now()
	}
	mtime := fi.ModTime()
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return mtime
	}
	ctime := time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	if ctime.Before(mtime) {
		return ctime
	}
	return mtime
}
