package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int // candidates discovered
	Current   int // 1-based index of the item being processed
	Renamed   int
	Skipped   int // conflicts skipped by choice, policy, or timeout
	Conflicts int // plans whose target already existed
	Failed    int // rename attempts that errored; item left untouched
}
