package department

import "time"

type Department struct {
	ID          string
	Name        string
	Code        *string
	Manager     *string
	Phone       *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// WorkerCount is filled by List only.
	WorkerCount int64
}
