package project

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
}

func NewProjectService(projectRepository project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{
		ProjectRepository: projectRepository,
	}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	startDate, _ := utils.ParseDate(req.StartDate)
	endDate, _ := utils.ParseDate(req.EndDate)

	status := project.StatusActive
	if req.Status != nil {
		status = strings.TrimSpace(*req.Status)
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:        strings.TrimSpace(req.Name),
		Location:    utils.TrimPtr(req.Location),
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
		Description: utils.TrimPtr(req.Description),
	})
	if err != nil {
		return project.ProjectResponse{}, translateError(err)
	}

	return project.NewProjectResponse(created), nil
}

// GetByID implements project.ProjectService.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	if !validator.IsValidUUID(id) {
		return project.ProjectResponse{}, project.ErrProjectNotFound
	}

	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.NewProjectResponse(p), nil
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context, filter project.ProjectFilter) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.NewProjectResponse(p))
	}
	return responses, nil
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return project.ProjectResponse{}, project.ErrProjectNotFound
	}
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	existing, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	// A single changed date must still respect the stored one
	start := utils.FormatDate(existing.StartDate)
	if req.StartDate != nil {
		start = req.StartDate
	}
	end := utils.FormatDate(existing.EndDate)
	if req.EndDate != nil {
		end = req.EndDate
	}
	merged := project.UpdateProjectRequest{ID: req.ID, StartDate: start, EndDate: end}
	if err := merged.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if err := s.ProjectRepository.Update(ctx, req); err != nil {
		return project.ProjectResponse{}, translateError(err)
	}

	updated, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.NewProjectResponse(updated), nil
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return project.ErrProjectNotFound
	}
	return s.ProjectRepository.Delete(ctx, id)
}

func translateError(err error) error {
	switch postgresql.PgErrorCode(err) {
	case postgresql.CodeUniqueViolation, postgresql.CodeCheckViolation:
		return project.ErrProjectConflict
	}
	return err
}
