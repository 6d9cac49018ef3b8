package project

import "time"

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPaused    = "paused"
)

type Project struct {
	ID          string
	Name        string
	Location    *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
