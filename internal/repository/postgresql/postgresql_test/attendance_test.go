package postgresql_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worklog-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worklog-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// newTestDB connects to the test database, skipping the test when no
// TEST_DATABASE_URL is configured.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB != nil {
		return testDB
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	ctx := context.Background()
	schema := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendances (
			id UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES employees(id),
			date DATE NOT NULL,
			in_time TEXT NOT NULL DEFAULT '',
			out_time TEXT NOT NULL DEFAULT '',
			worked_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (employee_id, date)
		)`,
	}
	for _, stmt := range schema {
		_, err := testDB.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	for _, table := range []string{"attendances", "employees"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func TestWithTransaction_CommitsEmployeeAndRecordTogether(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	truncateTables(t, ctx, db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	err := postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := employeeRepo.Create(txCtx, employee.Employee{Name: "Alice"})
		if err != nil {
			return err
		}

		_, err = attendanceRepo.Upsert(txCtx, attendance.Attendance{
			EmployeeID:  created.ID,
			Date:        date,
			InTime:      "09:00",
			OutTime:     "17:30",
			WorkedHours: 8.5,
		})
		return err
	})
	require.NoError(t, err)

	records, err := attendanceRepo.ListAllWithEmployee(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].EmployeeName)
	assert.Equal(t, "Alice", *records[0].EmployeeName)
	assert.Equal(t, 8.5, records[0].WorkedHours)
}

func TestWithTransaction_RollsBackEmployeeWhenRowFails(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	truncateTables(t, ctx, db)

	employeeRepo := postgresql.NewEmployeeRepository(db)

	rowErr := errors.New("row failed")
	err := postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := employeeRepo.Create(txCtx, employee.Employee{Name: "Bob"}); err != nil {
			return err
		}
		return rowErr
	})
	require.ErrorIs(t, err, rowErr)

	// The employee created inside the failed transaction must not survive.
	_, err = employeeRepo.GetByName(ctx, "Bob")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpsert_SecondWriteOverwritesInPlace(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	truncateTables(t, ctx, db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	created, err := employeeRepo.Create(ctx, employee.Employee{Name: "Carol"})
	require.NoError(t, err)

	date := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	first, err := attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID: created.ID, Date: date, InTime: "09:00", OutTime: "12:00", WorkedHours: 3,
	})
	require.NoError(t, err)

	second, err := attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmployeeID: created.ID, Date: date, InTime: "09:00", OutTime: "17:00", WorkedHours: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	records, err := attendanceRepo.ListAllWithEmployee(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "17:00", records[0].OutTime)
	assert.Equal(t, 8.0, records[0].WorkedHours)
}
