package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/worklog-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worklog-backend-go/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/worklog-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// Column headers expected in the uploaded sheet, after normalization.
const (
	colEmployeeName = "employee name"
	colDate         = "date"
	colInTime       = "in-time"
	colOutTime      = "out-time"
)

type AttendanceServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendance.AttendanceRepository
}

func NewAttendanceService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
	}
}

// ImportSpreadsheet implements attendance.AttendanceService.
//
// Rows are processed strictly in sheet order, each one independently: a bad
// row is skipped and counted, never fatal. Later rows for the same
// (employee, date) pair overwrite earlier ones, which also makes re-uploads
// of the same file idempotent.
func (s *AttendanceServiceImpl) ImportSpreadsheet(ctx context.Context, data []byte, filename string) (attendance.ImportResult, error) {
	rows, err := spreadsheet.ReadRows(data, filename)
	if err != nil {
		return attendance.ImportResult{}, fmt.Errorf("%w: %v", attendance.ErrUnreadableWorkbook, err)
	}

	var result attendance.ImportResult
	// Employees already resolved in this pass, by name.
	seen := make(map[string]string)

	for _, row := range rows {
		nameCell := row.Cell(colEmployeeName)
		if nameCell.Kind == spreadsheet.CellEmpty {
			s.skip(&result, row.Number, "missing employee name")
			continue
		}
		name := nameCell.Text

		date, err := timesheet.NormalizeDate(row.Cell(colDate))
		if err != nil {
			if row.Cell(colDate).Kind == spreadsheet.CellEmpty {
				s.skip(&result, row.Number, "missing date")
			} else {
				s.skip(&result, row.Number, "unparseable date")
			}
			continue
		}

		in := timesheet.ParseTimeValue(row.Cell(colInTime))
		out := timesheet.ParseTimeValue(row.Cell(colOutTime))

		// Wrap employee resolution and record upsert in one per-row transaction
		// so a row never commits a new employee without its record.
		err = s.withRowTx(ctx, func(ctx context.Context) error {
			employeeID, ok := seen[name]
			if !ok {
				resolved, err := s.resolveEmployee(ctx, name)
				if err != nil {
					return err
				}
				employeeID = resolved
			}

			_, err := s.AttendanceRepository.Upsert(ctx, attendance.Attendance{
				EmployeeID:  employeeID,
				Date:        date,
				InTime:      in.Display,
				OutTime:     out.Display,
				WorkedHours: timesheet.WorkedHours(in, out),
			})
			if err != nil {
				return fmt.Errorf("failed to upsert attendance for %q on %s: %w", name, date.Format("2006-01-02"), err)
			}

			seen[name] = employeeID
			return nil
		})
		if err != nil {
			return result, err
		}
		result.RowsProcessed++
	}

	return result, nil
}

// withRowTx runs one row's writes inside a database transaction. Without a
// database handle (the in-memory store) the row runs directly; that store is
// atomic per call on its own.
func (s *AttendanceServiceImpl) withRowTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}

// resolveEmployee finds the employee by exact name, creating one on first
// sighting. Only the name is set on creation.
func (s *AttendanceServiceImpl) resolveEmployee(ctx context.Context, name string) (string, error) {
	emp, err := s.EmployeeRepository.GetByName(ctx, name)
	if err == nil {
		return emp.ID, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return "", fmt.Errorf("failed to resolve employee %q: %w", name, err)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to create employee %q: %w", name, err)
	}
	return created.ID, nil
}

func (s *AttendanceServiceImpl) skip(result *attendance.ImportResult, row int, reason string) {
	result.RowsSkipped++
	result.Skipped = append(result.Skipped, attendance.SkippedRow{Row: row, Reason: reason})
	slog.Debug("skipped spreadsheet row", "row", row, "reason", reason)
}
