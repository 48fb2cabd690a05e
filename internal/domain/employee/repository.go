package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// GetByName retrieves an employee by exact name match.
	// Returns ErrEmployeeNotFound when no such employee exists.
	GetByName(ctx context.Context, name string) (Employee, error)

	// Create inserts a new employee; only Name is caller-supplied.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
