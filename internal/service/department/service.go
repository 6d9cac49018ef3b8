package department

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepository department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepository,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:        strings.TrimSpace(req.Name),
		Code:        utils.TrimPtr(req.Code),
		Manager:     utils.TrimPtr(req.Manager),
		Phone:       utils.TrimPtr(req.Phone),
		Description: utils.TrimPtr(req.Description),
	})
	if err != nil {
		return department.DepartmentResponse{}, translateError(err)
	}

	return department.NewDepartmentResponse(created), nil
}

// GetByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	if !validator.IsValidUUID(id) {
		return department.DepartmentResponse{}, department.ErrDepartmentNotFound
	}

	d, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(d), nil
}

// List implements department.DepartmentService. Each entry carries its worker count.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		resp := department.NewDepartmentResponse(d)
		count := d.WorkerCount
		resp.WorkerCount = &count
		responses = append(responses, resp)
	}
	return responses, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return department.DepartmentResponse{}, department.ErrDepartmentNotFound
	}
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.DepartmentRepository.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, translateError(err)
	}

	updated, err := s.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(updated), nil
}

// Delete implements department.DepartmentService. Workers of the department keep
// existing with a null department.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return department.ErrDepartmentNotFound
	}
	return s.DepartmentRepository.Delete(ctx, id)
}

func translateError(err error) error {
	if postgresql.PgErrorCode(err) == postgresql.CodeUniqueViolation {
		return department.ErrDepartmentCodeExists
	}
	return err
}
