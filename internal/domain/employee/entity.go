package employee

import "time"

// Employee is created lazily the first time a name appears in an upload.
// Name is the sole natural key; matching is exact and case-sensitive.
type Employee struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
