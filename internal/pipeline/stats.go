package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int // Material folders found.
	Current   int // 1-based index of the material being converted.
	Converted int
	Skipped   int // Materials carrying the skip marker.
	Failed    int

	MasterImages  int   // Images copied into master buckets.
	DerivedImages int   // Images written into derived buckets.
	BytesWritten  int64 // Encoded size of all derived images.
}

// add folds one material's result into the totals.
func (s *RunStats) add(r MaterialResult) {
	s.MasterImages += r.MasterImages
	s.DerivedImages += r.DerivedImages
	s.BytesWritten += r.BytesWritten
}
