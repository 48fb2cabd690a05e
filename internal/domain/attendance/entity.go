package attendance

import "time"

// Attendance is one day's record for one employee. At most one row exists per
// (EmployeeID, Date); re-ingesting the same pair overwrites in place.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	InTime      string
	OutTime     string
	WorkedHours float64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}
