package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert inserts the record or, when one already exists for the same
	// (EmployeeID, Date), overwrites its in/out times and worked hours.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)

	// ListAllWithEmployee retrieves every record joined with its employee
	// name, ordered by date descending with ties in insertion order.
	ListAllWithEmployee(ctx context.Context) ([]Attendance, error)
}
