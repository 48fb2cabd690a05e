package attendance

// SkippedRow records why one spreadsheet row was dropped during ingestion.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarizes one ingestion pass. Skips are silent toward the
// end user but stay countable and attributable here.
type ImportResult struct {
	RowsProcessed int          `json:"rows_processed"`
	RowsSkipped   int          `json:"rows_skipped"`
	Skipped       []SkippedRow `json:"skipped,omitempty"`
}
