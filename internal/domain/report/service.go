package report

import "context"

// ReportService derives monthly statistics from the full attendance record
// set. Everything is recomputed on each call; nothing is cached.
type ReportService interface {
	// MonthlyReport builds the summary and daily breakdown for the month
	// containing the newest record.
	MonthlyReport(ctx context.Context) (MonthlyReport, error)

	// SummaryCSV renders the summary table as a CSV attachment body.
	SummaryCSV(ctx context.Context) ([]byte, error)

	// SummaryWorkbook renders the summary table as an xlsx attachment body.
	SummaryWorkbook(ctx context.Context) ([]byte, error)
}
