package attendance

import "context"

// AttendanceService ingests spreadsheet uploads into attendance records.
type AttendanceService interface {
	// ImportSpreadsheet processes every row of the uploaded file
	// independently and idempotently. Unreadable bytes fail the whole call
	// with ErrUnreadableWorkbook; individual bad rows are skipped and
	// counted in the result.
	ImportSpreadsheet(ctx context.Context, data []byte, filename string) (ImportResult, error)
}
