package report

// MonthSummary is one employee's row in the monthly report. Hours fields are
// preformatted one-decimal strings for table display; Productivity stays
// numeric (one decimal) for charting alongside its display twin.
type MonthSummary struct {
	Name                string  `json:"name"`
	TotalExpectedHours  string  `json:"totalExpectedHours"`
	TotalActualHours    string  `json:"totalActualHours"`
	LeavesTaken         int     `json:"leavesTaken"`
	Productivity        float64 `json:"productivity"`
	ProductivityDisplay string  `json:"productivityDisplay"`
}

// DailyRow is one attendance record flattened for the daily breakdown table.
type DailyRow struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Employee    string  `json:"employee"`
	InTime      string  `json:"inTime"`
	OutTime     string  `json:"outTime"`
	WorkedHours float64 `json:"workedHours"`
	Status      string  `json:"status"`
}

// MonthlyReport is the full read-side payload. Both slices are empty, never
// nil, when no records exist.
type MonthlyReport struct {
	Summary []MonthSummary `json:"summary"`
	Daily   []DailyRow     `json:"daily"`
}

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent/Leave"
)
