package worker

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
}

func NewWorkerService(workerRepository worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository: workerRepository,
	}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	dob, _ := utils.ParseDate(req.DateOfBirth)
	hireDate, _ := utils.ParseDate(req.HireDate)

	status := worker.StatusActive
	if req.Status != nil {
		status = *req.Status
	}

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		Code:         strings.TrimSpace(req.Code),
		FullName:     strings.TrimSpace(req.FullName),
		IDCard:       utils.TrimPtr(req.IDCard),
		Phone:        utils.TrimPtr(req.Phone),
		Email:        utils.TrimPtr(req.Email),
		Address:      utils.TrimPtr(req.Address),
		DateOfBirth:  dob,
		Gender:       utils.TrimPtr(req.Gender),
		DepartmentID: utils.TrimPtr(req.DepartmentID),
		Position:     utils.TrimPtr(req.Position),
		HireDate:     hireDate,
		Salary:       req.Salary,
		Status:       status,
		Notes:        utils.TrimPtr(req.Notes),
	})
	if err != nil {
		return worker.WorkerResponse{}, translateError(err)
	}

	return worker.NewWorkerResponse(created), nil
}

// GetByID implements worker.WorkerService.
func (s *WorkerServiceImpl) GetByID(ctx context.Context, id string) (worker.WorkerResponse, error) {
	if !validator.IsValidUUID(id) {
		return worker.WorkerResponse{}, worker.ErrWorkerNotFound
	}

	w, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	workers, err := s.WorkerRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.NewWorkerResponse(w))
	}
	return responses, nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return worker.WorkerResponse{}, worker.ErrWorkerNotFound
	}
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if err := s.WorkerRepository.Update(ctx, req); err != nil {
		return worker.WorkerResponse{}, translateError(err)
	}

	updated, err := s.WorkerRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(updated), nil
}

// Delete implements worker.WorkerService. The worker's assignments and attendance go with it.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return worker.ErrWorkerNotFound
	}
	return s.WorkerRepository.Delete(ctx, id)
}

func translateError(err error) error {
	switch postgresql.PgErrorCode(err) {
	case postgresql.CodeUniqueViolation:
		return worker.ErrWorkerCodeExists
	case postgresql.CodeForeignKeyViolation:
		return department.ErrDepartmentNotFound
	}
	return err
}
