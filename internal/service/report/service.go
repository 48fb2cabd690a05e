package report

import (
	"context"
	"fmt"
	"math"

	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/timesheet"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{attendanceRepo: attendanceRepo}
}

type employeeTotals struct {
	name        string
	actualHours float64
	daysPresent int
}

// MonthlyReport implements report.ReportService.
//
// The reporting month is the one containing the newest record; a single call
// never spans months. Everything is recomputed from the full record set, so
// the report can never serve stale aggregates.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context) (report.MonthlyReport, error) {
	records, err := s.attendanceRepo.ListAllWithEmployee(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	monthly := report.MonthlyReport{
		Summary: []report.MonthSummary{},
		Daily:   []report.DailyRow{},
	}
	if len(records) == 0 {
		return monthly, nil
	}

	newest := records[0].Date
	details := timesheet.MonthDetails(newest.Year(), int(newest.Month())-1)

	// Group by employee name in first-seen order.
	totals := make(map[string]*employeeTotals)
	var order []string
	for _, record := range records {
		name := ""
		if record.EmployeeName != nil {
			name = *record.EmployeeName
		}
		t, ok := totals[name]
		if !ok {
			t = &employeeTotals{name: name}
			totals[name] = t
			order = append(order, name)
		}
		// Zero-hour records count toward neither presence nor hours.
		if record.WorkedHours > 0 {
			t.actualHours += record.WorkedHours
			t.daysPresent++
		}

		monthly.Daily = append(monthly.Daily, report.DailyRow{
			ID:          record.ID,
			Date:        record.Date.Format("2006-01-02"),
			Employee:    name,
			InTime:      displayTime(record.InTime),
			OutTime:     displayTime(record.OutTime),
			WorkedHours: record.WorkedHours,
			Status:      status(record.WorkedHours),
		})
	}

	for _, name := range order {
		monthly.Summary = append(monthly.Summary, summarize(totals[name], details))
	}

	return monthly, nil
}

// summarize folds one employee's monthly totals into a summary row. Leaves
// can never go negative, and a month with no expected hours reports zero
// productivity instead of dividing by zero.
func summarize(t *employeeTotals, details timesheet.MonthStats) report.MonthSummary {
	leavesTaken := details.TotalWorkingDays - t.daysPresent
	if leavesTaken < 0 {
		leavesTaken = 0
	}

	productivity := 0.0
	if details.ExpectedHours > 0 {
		productivity = t.actualHours / details.ExpectedHours * 100
	}

	return report.MonthSummary{
		Name:                t.name,
		TotalExpectedHours:  fmt.Sprintf("%.1f", details.ExpectedHours),
		TotalActualHours:    fmt.Sprintf("%.1f", t.actualHours),
		LeavesTaken:         leavesTaken,
		Productivity:        math.Round(productivity*10) / 10,
		ProductivityDisplay: fmt.Sprintf("%.1f%%", productivity),
	}
}

func displayTime(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func status(workedHours float64) string {
	if workedHours > 0 {
		return report.StatusPresent
	}
	return report.StatusAbsent
}
