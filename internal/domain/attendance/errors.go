package attendance

import "errors"

// Attendance domain errors
var (
	ErrUnreadableWorkbook = errors.New("uploaded file is not a readable spreadsheet")
)
