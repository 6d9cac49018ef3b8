package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID returns the record joined with worker code/name and project name
	GetByID(ctx context.Context, id string) (Attendance, error)

	// Update overwrites every mutable column of an existing record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves records with filters and pagination, plus the unpaginated total
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	Delete(ctx context.Context, id string) error
}
