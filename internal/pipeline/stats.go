package pipeline

// RunStats tracks aggregate counters across a batch run. In recursive mode
// the counters span all processed directories; Dirs records how many
// directories actually contained media.
type RunStats struct {
	Dirs      int
	Total     int
	Renamed   int
	Unchanged int
	Skipped   int
	Failed    int
}
