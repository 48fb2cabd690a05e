// Package memory is an in-memory implementation of the repository
// interfaces. It backs service tests and any deployment that does not need
// durable storage; the store handle is injected explicitly, never global.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type Store struct {
	mu        sync.Mutex
	employees map[string]employee.Employee // keyed by name
	records   []attendance.Attendance      // insertion order
	index     map[string]int               // employeeID+date -> position in records
}

func NewStore() *Store {
	return &Store{
		employees: make(map[string]employee.Employee),
		index:     make(map[string]int),
	}
}

func (s *Store) EmployeeRepository() employee.EmployeeRepository {
	return (*employeeStore)(s)
}

func (s *Store) AttendanceRepository() attendance.AttendanceRepository {
	return (*attendanceStore)(s)
}

type employeeStore Store

// GetByName implements employee.EmployeeRepository.
func (s *employeeStore) GetByName(_ context.Context, name string) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[name]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (s *employeeStore) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.employees[newEmployee.Name]; ok {
		return existing, nil
	}

	now := time.Now().UTC()
	newEmployee.ID = uuid.NewString()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	s.employees[newEmployee.Name] = newEmployee
	return newEmployee, nil
}

type attendanceStore Store

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

// Upsert implements attendance.AttendanceRepository.
func (s *attendanceStore) Upsert(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	key := recordKey(record.EmployeeID, record.Date)
	if pos, ok := s.index[key]; ok {
		existing := s.records[pos]
		existing.InTime = record.InTime
		existing.OutTime = record.OutTime
		existing.WorkedHours = record.WorkedHours
		existing.UpdatedAt = now
		s.records[pos] = existing
		return existing, nil
	}

	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now
	s.records = append(s.records, record)
	s.index[key] = len(s.records) - 1
	return record, nil
}

// ListAllWithEmployee implements attendance.AttendanceRepository.
func (s *attendanceStore) ListAllWithEmployee(_ context.Context) ([]attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make(map[string]string, len(s.employees))
	for name, emp := range s.employees {
		names[emp.ID] = name
	}

	out := make([]attendance.Attendance, len(s.records))
	copy(out, s.records)
	for i := range out {
		name := names[out[i].EmployeeID]
		out[i].EmployeeName = &name
	}

	// Date descending; the stable sort keeps insertion order within a date.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
