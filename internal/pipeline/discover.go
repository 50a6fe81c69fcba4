package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/backmassage/snapdate/internal/naming"
)

// ListMedia returns the media files that are direct children of dir,
// sorted by name. Filesystem enumeration order is not assumed stable; the
// sort plus the sequencer's stable timestamp sort make runs deterministic.
func ListMedia(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if naming.IsMediaPath(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// DiscoverDirs walks root and returns every directory that directly
// contains at least one media file, sorted. Each returned directory is an
// independent batch: grouping, sequencing, and collision checks never span
// directories, since separate folders are assumed to be separate exports.
func DiscoverDirs(root string) ([]string, error) {
	seen := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && naming.IsMediaPath(path) {
			seen[filepath.Dir(path)] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}
