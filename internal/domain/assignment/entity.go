package assignment

import "time"

// Assignment links a worker to a project. A nil EndDate means the assignment is active.
type Assignment struct {
	ID         string
	WorkerID   string
	ProjectID  string
	AssignDate time.Time
	EndDate    *time.Time
	AssignedBy *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined
	WorkerCode  *string
	WorkerName  *string
	ProjectName *string
}

func (a Assignment) IsActive() bool {
	return a.EndDate == nil
}
