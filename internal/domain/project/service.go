package project

import "context"

type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	List(ctx context.Context, filter ProjectFilter) ([]ProjectResponse, error)
	Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}
