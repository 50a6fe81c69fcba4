// Package planner holds the grouping-and-sequencing core: it partitions one
// directory's files into calendar-date groups, orders each group
// chronologically, and assigns collision-free sequential target names.
//
// The planner is pure apart from the injected existence check; it performs
// no renames and operates on a single directory batch at a time.
package planner

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/backmassage/snapdate/internal/naming"
)

// GroupByDate partitions files into DateGroups keyed by the calendar date
// of the capture timestamp, with groups in ascending date order and each
// group's members stable-sorted by timestamp. Discovery hands files over
// sorted by name, so ties on the same second keep filename order — two runs
// on identical input always produce identical groups.
func GroupByDate(files []MediaFile) []DateGroup {
	byDate := make(map[string][]MediaFile)
	for _, f := range files {
		key := f.Taken.Format("2006-01-02")
		byDate[key] = append(byDate[key], f)
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]DateGroup, 0, len(keys))
	for _, k := range keys {
		members := byDate[k]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Taken.Before(members[j].Taken)
		})
		y, m, d := members[0].Taken.Date()
		groups = append(groups, DateGroup{
			Date:    time.Date(y, m, d, 0, 0, 0, 0, members[0].Taken.Location()),
			Members: members,
		})
	}
	return groups
}

// BuildPlans sequences one directory's files into rename plans. Photos and
// videos on the same date share a single numbering sequence, interleaved by
// timestamp. exists reports whether a path is currently on disk; it feeds
// the collision resolver, which bumps an index until the target is neither
// on disk (source excepted) nor claimed by an earlier plan in this batch.
// Plans come back in ascending date order, chronological within each date.
func BuildPlans(files []MediaFile, exists func(string) bool) []RenamePlan {
	if len(files) == 0 {
		return nil
	}

	resolver := naming.NewCollisionResolver(exists)
	var plans []RenamePlan

	for _, g := range GroupByDate(files) {
		for seq, f := range g.Members {
			plans = append(plans, planOne(f, seq+1, resolver))
		}
	}
	return plans
}

// planOne computes the target for one file, starting at its natural
// sequence index and incrementing past occupied names. A file already
// carrying the computed name claims it and becomes a no-op. Only the bumped
// file records the higher index; later files resume from their natural
// position.
func planOne(f MediaFile, start int, resolver *naming.CollisionResolver) RenamePlan {
	dir := filepath.Dir(f.Path)
	base := filepath.Base(f.Path)
	ext := filepath.Ext(f.Path)

	for index := start; ; index++ {
		name := naming.TargetName(f.Taken, f.Category, index, ext)
		target := filepath.Join(dir, name)

		if base != name && !resolver.Free(f.Path, target) {
			continue
		}

		resolver.Claim(f.Path, target)
		return RenamePlan{
			SourcePath: f.Path,
			TargetPath: target,
			Index:      index,
			Category:   f.Category,
			Taken:      f.Taken,
			Source:     f.Source,
			NoOp:       base == name,
		}
	}
}
