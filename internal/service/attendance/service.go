package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	workerRepo  worker.WorkerRepository
	projectRepo project.ProjectRepository
	tx          postgresql.Transactor
	now         func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	workerRepository worker.WorkerRepository,
	projectRepository project.ProjectRepository,
	tx postgresql.Transactor,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		workerRepo:           workerRepository,
		projectRepo:          projectRepository,
		tx:                   tx,
		now:                  time.Now,
	}
}

// RecordAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	record := attendance.Attendance{
		WorkerID:       req.WorkerID,
		ProjectID:      utils.TrimPtr(req.ProjectID),
		AttendanceDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CheckInTime:    utils.TrimPtr(req.CheckInTime),
		CheckOutTime:   utils.TrimPtr(req.CheckOutTime),
		WorkHours:      req.WorkHours,
		Status:         attendance.StatusPresent,
		Notes:          utils.TrimPtr(req.Notes),
		CreatedBy:      utils.TrimPtr(req.CreatedBy),
	}
	if date, _ := utils.ParseDate(req.AttendanceDate); date != nil {
		record.AttendanceDate = *date
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if record.CreatedBy == nil {
		record.CreatedBy = creatorFromClaims(ctx)
	}

	// Explicit hours win; a lone check-in or check-out leaves hours unset
	if record.WorkHours == nil && record.CheckInTime != nil && record.CheckOutTime != nil {
		if err := record.DeriveWorkHours(); err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	if err := record.Check(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var created attendance.Attendance
	err := a.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := a.checkReferences(txCtx, &record.WorkerID, record.ProjectID); err != nil {
			return err
		}

		var err error
		created, err = a.AttendanceRepository.Create(txCtx, record)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, translateError(err)
	}

	return attendance.NewAttendanceResponse(created), nil
}

// GetByID implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(id) {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(record), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var updated attendance.Attendance
	err := a.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		record, err := a.AttendanceRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := applyUpdate(&record, req); err != nil {
			return err
		}
		if err := record.Check(); err != nil {
			return err
		}

		var projectID *string
		if req.ProjectID != nil {
			projectID = record.ProjectID
		}
		if err := a.checkReferences(txCtx, req.WorkerID, projectID); err != nil {
			return err
		}

		if err := a.AttendanceRepository.Update(txCtx, record); err != nil {
			return err
		}

		updated, err = a.AttendanceRepository.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, translateError(err)
	}

	return attendance.NewAttendanceResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService. Deleting a missing
// record reports ErrAttendanceNotFound every time.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return attendance.ErrAttendanceNotFound
	}
	return a.AttendanceRepository.Delete(ctx, id)
}

// applyUpdate merges the set fields of req into record and re-derives work hours
// when the times changed without explicit hours.
func applyUpdate(record *attendance.Attendance, req attendance.UpdateAttendanceRequest) error {
	if req.WorkerID != nil {
		record.WorkerID = *req.WorkerID
	}
	if req.ProjectID != nil {
		record.ProjectID = utils.TrimPtr(req.ProjectID)
	}
	if req.AttendanceDate != nil {
		date, err := utils.ParseDate(req.AttendanceDate)
		if err != nil {
			return err
		}
		record.AttendanceDate = *date
	}
	if req.CheckInTime != nil {
		record.CheckInTime = utils.TrimPtr(req.CheckInTime)
	}
	if req.CheckOutTime != nil {
		record.CheckOutTime = utils.TrimPtr(req.CheckOutTime)
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Notes != nil {
		record.Notes = utils.TrimPtr(req.Notes)
	}

	if req.WorkHours != nil {
		record.WorkHours = req.WorkHours
		return nil
	}
	if req.TouchesTimes() {
		return record.DeriveWorkHours()
	}
	return nil
}

func (a *AttendanceServiceImpl) checkReferences(ctx context.Context, workerID, projectID *string) error {
	if workerID != nil {
		if _, err := a.workerRepo.GetByID(ctx, *workerID); err != nil {
			return err
		}
	}
	if projectID != nil {
		if _, err := a.projectRepo.GetByID(ctx, *projectID); err != nil {
			return err
		}
	}
	return nil
}

// creatorFromClaims returns the email of the authenticated user, if any.
func creatorFromClaims(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return nil
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil
	}
	return &email
}

func translateError(err error) error {
	switch postgresql.PgErrorCode(err) {
	case postgresql.CodeForeignKeyViolation:
		if strings.Contains(postgresql.PgConstraint(err), "project") {
			return project.ErrProjectNotFound
		}
		return worker.ErrWorkerNotFound
	case postgresql.CodeUniqueViolation, postgresql.CodeCheckViolation:
		return attendance.ErrAttendanceConflict
	}
	return err
}
