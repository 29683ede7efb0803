package pipeline

// RunStats tracks aggregate counters across a run. Every eligible file ends
// in exactly one of: Renamed, Errors, or one of the skip counters.
type RunStats struct {
	Scanned  int // visible directory entries seen
	Eligible int // regular files with an allow-listed extension
	Renamed  int

	SkippedCorrectStamp       int // starts with the correct stamp, no force
	SkippedContainsDate       int // target date elsewhere in name, no force
	SkippedInvalidAfterStrip  int // stripping left nothing usable
	SkippedNoChange           int // candidate equals the current name
	SkippedCollisionExhausted int // no free name within the probe bound

	Errors              int // ctime unreadable or rename failed
	PermissionsAdjusted int // execute bits actually cleared
}

// Skipped returns the total number of skip classifications.
func (s *RunStats) Skipped() int {
	return s.SkippedCorrectStamp +
		s.SkippedContainsDate +
		s.SkippedInvalidAfterStrip +
		s.SkippedNoChange +
		s.SkippedCollisionExhausted
}
