package assignment

import (
	"context"
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/assignment"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
)

type AssignmentServiceImpl struct {
	assignment.AssignmentRepository
	workerRepo  worker.WorkerRepository
	projectRepo project.ProjectRepository
	tx          postgresql.Transactor
	now         func() time.Time
}

func NewAssignmentService(
	assignmentRepository assignment.AssignmentRepository,
	workerRepository worker.WorkerRepository,
	projectRepository project.ProjectRepository,
	tx postgresql.Transactor,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		AssignmentRepository: assignmentRepository,
		workerRepo:           workerRepository,
		projectRepo:          projectRepository,
		tx:                   tx,
		now:                  time.Now,
	}
}

// Create implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	assignDate := today(s.now())
	if parsed, _ := utils.ParseDate(req.AssignDate); parsed != nil {
		assignDate = *parsed
	}
	endDate, _ := utils.ParseDate(req.EndDate)
	if endDate != nil && endDate.Before(assignDate) {
		var errs validator.ValidationErrors
		errs.Add("end_date", "end_date must not be before assign_date")
		return assignment.AssignmentResponse{}, errs
	}

	var created assignment.Assignment
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.checkReferences(txCtx, &req.WorkerID, &req.ProjectID); err != nil {
			return err
		}

		var err error
		created, err = s.AssignmentRepository.Create(txCtx, assignment.Assignment{
			WorkerID:   req.WorkerID,
			ProjectID:  req.ProjectID,
			AssignDate: assignDate,
			EndDate:    endDate,
			AssignedBy: utils.TrimPtr(req.AssignedBy),
			Notes:      utils.TrimPtr(req.Notes),
		})
		return err
	})
	if err != nil {
		return assignment.AssignmentResponse{}, translateError(err)
	}

	return assignment.NewAssignmentResponse(created), nil
}

// GetByID implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) GetByID(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	if !validator.IsValidUUID(id) {
		return assignment.AssignmentResponse{}, assignment.ErrAssignmentNotFound
	}

	a, err := s.AssignmentRepository.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	return assignment.NewAssignmentResponse(a), nil
}

// List implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.AssignmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	assignments, err := s.AssignmentRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, assignment.NewAssignmentResponse(a))
	}
	return responses, nil
}

// Update implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return assignment.AssignmentResponse{}, assignment.ErrAssignmentNotFound
	}
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	var updated assignment.Assignment
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.AssignmentRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		// Validate the dates the row will end up with
		assignDate := existing.AssignDate.Format(validator.DateLayout)
		if req.AssignDate != nil {
			assignDate = *req.AssignDate
		}
		endDate := utils.FormatDate(existing.EndDate)
		if req.EndDate != nil {
			endDate = req.EndDate
		}
		var errs validator.ValidationErrors
		assignment.ValidateDates(&errs, &assignDate, endDate)
		if err := errs.Err(); err != nil {
			return err
		}

		if err := s.checkReferences(txCtx, req.WorkerID, req.ProjectID); err != nil {
			return err
		}

		if err := s.AssignmentRepository.Update(txCtx, req); err != nil {
			return err
		}

		updated, err = s.AssignmentRepository.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return assignment.AssignmentResponse{}, translateError(err)
	}

	return assignment.NewAssignmentResponse(updated), nil
}

// Delete implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return assignment.ErrAssignmentNotFound
	}
	return s.AssignmentRepository.Delete(ctx, id)
}

// checkReferences resolves the worker and project ids that are set.
func (s *AssignmentServiceImpl) checkReferences(ctx context.Context, workerID, projectID *string) error {
	if workerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *workerID); err != nil {
			return err
		}
	}
	if projectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *projectID); err != nil {
			return err
		}
	}
	return nil
}

func translateError(err error) error {
	switch postgresql.PgErrorCode(err) {
	case postgresql.CodeForeignKeyViolation:
		if strings.Contains(postgresql.PgConstraint(err), "worker") {
			return worker.ErrWorkerNotFound
		}
		return project.ErrProjectNotFound
	case postgresql.CodeUniqueViolation, postgresql.CodeCheckViolation:
		return assignment.ErrAssignmentConflict
	}
	return err
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
