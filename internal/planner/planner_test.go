package planner

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/snapdate/internal/naming"
	"github.com/backmassage/snapdate/internal/resolve"
)

func neverExists(string) bool { return false }

func mf(path string, cat naming.Category, taken time.Time) MediaFile {
	return MediaFile{Path: path, Category: cat, Taken: taken, Source: resolve.SourceFilesystem}
}

func at(hour, min int) time.Time {
	return time.Date(2023, 1, 15, hour, min, 0, 0, time.Local)
}

func TestBuildPlans_InterleavesPhotosAndVideos(t *testing.T) {
	files := []MediaFile{
		mf("/p/IMG_001.jpg", naming.Photo, at(10, 0)),
		mf("/p/IMG_002.jpg", naming.Photo, at(10, 10)),
		mf("/p/VID_001.mov", naming.Video, at(10, 5)),
	}

	plans := BuildPlans(files, neverExists)
	require.Len(t, plans, 3)

	assert.Equal(t, "/p/2023-01-15 - Phone Photos (1).jpg", plans[0].TargetPath)
	assert.Equal(t, "/p/2023-01-15 - Phone Videos (2).mov", plans[1].TargetPath)
	assert.Equal(t, "/p/2023-01-15 - Phone Photos (3).jpg", plans[2].TargetPath)

	assert.Equal(t, "/p/IMG_001.jpg", plans[0].SourcePath)
	assert.Equal(t, "/p/VID_001.mov", plans[1].SourcePath)
	assert.Equal(t, "/p/IMG_002.jpg", plans[2].SourcePath)
}

func TestBuildPlans_IndicesAreGapFree(t *testing.T) {
	var files []MediaFile
	for i := 0; i < 12; i++ {
		files = append(files, mf(filepath.Join("/p", string(rune('a'+i))+".jpg"), naming.Photo, at(9, i)))
	}

	plans := BuildPlans(files, neverExists)
	require.Len(t, plans, 12)
	for i, p := range plans {
		assert.Equal(t, i+1, p.Index)
	}
}

func TestBuildPlans_GroupsProcessedInDateOrder(t *testing.T) {
	day := func(d, hour int) time.Time {
		return time.Date(2023, 3, d, hour, 0, 0, 0, time.Local)
	}
	files := []MediaFile{
		mf("/p/late.jpg", naming.Photo, day(20, 9)),
		mf("/p/early.jpg", naming.Photo, day(5, 9)),
		mf("/p/mid.jpg", naming.Photo, day(12, 9)),
	}

	plans := BuildPlans(files, neverExists)
	require.Len(t, plans, 3)
	assert.Equal(t, "/p/2023-03-05 - Phone Photos (1).jpg", plans[0].TargetPath)
	assert.Equal(t, "/p/2023-03-12 - Phone Photos (1).jpg", plans[1].TargetPath)
	assert.Equal(t, "/p/2023-03-20 - Phone Photos (1).jpg", plans[2].TargetPath)

	// Sequencing restarts per date group.
	for _, p := range plans {
		assert.Equal(t, 1, p.Index)
	}
}

func TestBuildPlans_CollisionWithUnrelatedFileOnDisk(t *testing.T) {
	occupied := "/p/2023-01-15 - Phone Photos (1).jpg"
	exists := func(path string) bool { return path == occupied }

	plans := BuildPlans([]MediaFile{mf("/p/IMG_001.jpg", naming.Photo, at(10, 0))}, exists)
	require.Len(t, plans, 1)
	assert.Equal(t, "/p/2023-01-15 - Phone Photos (2).jpg", plans[0].TargetPath)
	assert.Equal(t, 2, plans[0].Index)
}

func TestBuildPlans_AlreadyNamedFileIsNoOp(t *testing.T) {
	source := "/p/2023-01-15 - Phone Photos (1).jpg"
	// The source itself is on disk; that must not count as a collision.
	exists := func(path string) bool { return path == source }

	plans := BuildPlans([]MediaFile{mf(source, naming.Photo, at(10, 0))}, exists)
	require.Len(t, plans, 1)
	assert.True(t, plans[0].NoOp)
	assert.Equal(t, source, plans[0].TargetPath)
	assert.Equal(t, 1, plans[0].Index)
}

func TestBuildPlans_ClaimedTargetForcesBump(t *testing.T) {
	// First file already owns "(2)"; second file's natural index is 2 and
	// must bump past the claim even though nothing is on disk there.
	alreadyNamed := "/p/2023-01-15 - Phone Photos (2).jpg"
	exists := func(path string) bool { return path == alreadyNamed }

	files := []MediaFile{
		mf(alreadyNamed, naming.Photo, at(10, 0)), // natural index 1, name says 2
		mf("/p/IMG_009.jpg", naming.Photo, at(10, 5)),
	}

	plans := BuildPlans(files, exists)
	require.Len(t, plans, 2)

	// The already-named file is renamed down to its chronological slot.
	assert.Equal(t, "/p/2023-01-15 - Phone Photos (1).jpg", plans[0].TargetPath)
	assert.False(t, plans[0].NoOp)

	// "(2)" is still occupied on disk by plans[0]'s source, so the second
	// file bumps to "(3)".
	assert.Equal(t, "/p/2023-01-15 - Phone Photos (3).jpg", plans[1].TargetPath)
	assert.Equal(t, 3, plans[1].Index)
}

func TestBuildPlans_TiedTimestampsKeepInputOrder(t *testing.T) {
	tied := at(12, 0)
	files := []MediaFile{
		mf("/p/a.jpg", naming.Photo, tied),
		mf("/p/b.jpg", naming.Photo, tied),
		mf("/p/c.jpg", naming.Photo, tied),
	}

	plans := BuildPlans(files, neverExists)
	require.Len(t, plans, 3)
	assert.Equal(t, "/p/a.jpg", plans[0].SourcePath)
	assert.Equal(t, "/p/b.jpg", plans[1].SourcePath)
	assert.Equal(t, "/p/c.jpg", plans[2].SourcePath)
}

func TestBuildPlans_Deterministic(t *testing.T) {
	files := []MediaFile{
		mf("/p/x.jpg", naming.Photo, at(11, 0)),
		mf("/p/y.mov", naming.Video, at(11, 0)),
		mf("/p/z.jpg", naming.Photo, at(9, 30)),
	}

	first := BuildPlans(files, neverExists)
	second := BuildPlans(files, neverExists)
	assert.Equal(t, first, second)
}

func TestBuildPlans_Empty(t *testing.T) {
	assert.Empty(t, BuildPlans(nil, neverExists))
}

func TestBuildPlans_LowercasesExtension(t *testing.T) {
	plans := BuildPlans([]MediaFile{mf("/p/IMG_001.JPG", naming.Photo, at(10, 0))}, neverExists)
	require.Len(t, plans, 1)
	assert.Equal(t, "/p/2023-01-15 - Phone Photos (1).jpg", plans[0].TargetPath)
}

func TestGroupByDate(t *testing.T) {
	files := []MediaFile{
		mf("/p/b.jpg", naming.Photo, time.Date(2023, 1, 16, 8, 0, 0, 0, time.Local)),
		mf("/p/a.jpg", naming.Photo, time.Date(2023, 1, 15, 23, 59, 59, 0, time.Local)),
		mf("/p/c.jpg", naming.Photo, time.Date(2023, 1, 16, 7, 0, 0, 0, time.Local)),
	}

	groups := GroupByDate(files)
	require.Len(t, groups, 2)

	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.Local), groups[0].Date)
	require.Len(t, groups[0].Members, 1)

	assert.Equal(t, time.Date(2023, 1, 16, 0, 0, 0, 0, time.Local), groups[1].Date)
	require.Len(t, groups[1].Members, 2)
	assert.Equal(t, "/p/c.jpg", groups[1].Members[0].Path)
	assert.Equal(t, "/p/b.jpg", groups[1].Members[1].Path)
}
