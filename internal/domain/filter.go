package domain

// FilterSummary records what the optional region filter did to the set.
type FilterSummary struct {
	FilterApplied bool
	Region        string // the selected region, verbatim as entered
	RecordsBefore int
	RecordsAfter  int
}
