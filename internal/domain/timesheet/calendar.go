package timesheet

import "time"

const (
	weekdayExpectedHours  = 8.5
	saturdayExpectedHours = 4
)

// MonthStats describes the expected workload of one calendar month.
type MonthStats struct {
	ExpectedHours    float64
	TotalWorkingDays int
}

// MonthDetails walks every day of the given month (month0 is zero-based) and
// totals expected hours and working days. Sundays are excluded entirely,
// Saturdays count as half days, Monday through Friday as full days. The
// policy is fixed; changing the business rule means changing this function.
func MonthDetails(year, month0 int) MonthStats {
	month := time.Month(month0 + 1)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var stats MonthStats
	for day := 1; day <= daysInMonth; day++ {
		switch time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() {
		case time.Sunday:
			continue
		case time.Saturday:
			stats.ExpectedHours += saturdayExpectedHours
			stats.TotalWorkingDays++
		default:
			stats.ExpectedHours += weekdayExpectedHours
			stats.TotalWorkingDays++
		}
	}
	return stats
}
