package diario

type ImportFailure struct {
	RowIndex int64
	Reason   string
}

type ImportSummary struct {
	ProcessedCount    int64
	GeneratedCount    int64
	DuplicateCount    int64
	EmptyItemIDCount  int64
	InvalidDateCount  int64
	ShortRecordCount  int64
	MigratedItemCount int64
	Failures          []ImportFailure
}

func (s ImportSummary) SkippedCount() int64 {
	return s.DuplicateCount + s.EmptyItemIDCount + s.InvalidDateCount + s.ShortRecordCount
}
