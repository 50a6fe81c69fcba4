package planner

import (
	"time"

	"github.com/backmassage/snapdate/internal/naming"
	"github.com/backmassage/snapdate/internal/resolve"
)

// MediaFile is one discovered file with its resolved capture timestamp.
// Created by discovery, enriched by the resolver, and read-only from the
// sequencer onward.
type MediaFile struct {
	Path     string
	Category naming.Category
	Taken    time.Time
	Source   resolve.Source
}

// DateGroup is all files whose capture timestamp falls on one calendar
// date, sorted chronologically.
type DateGroup struct {
	Date    time.Time // midnight local; no time component
	Members []MediaFile
}

// RenamePlan is one proposed rename. Index is 1-based and unique within the
// file's date group; NoOp marks files already carrying their target name.
type RenamePlan struct {
	SourcePath string
	TargetPath string
	Index      int
	Category   naming.Category
	Taken      time.Time
	Source     resolve.Source
	NoOp       bool
}
