package assignment

import "context"

type AssignmentRepository interface {
	Create(ctx context.Context, assignment Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]Assignment, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) error
	Delete(ctx context.Context, id string) error
}
