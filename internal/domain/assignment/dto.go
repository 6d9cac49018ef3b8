package assignment

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type AssignmentResponse struct {
	ID          string    `json:"id"`
	WorkerID    string    `json:"worker_id"`
	WorkerCode  *string   `json:"worker_code"`
	WorkerName  *string   `json:"worker_name"`
	ProjectID   string    `json:"project_id"`
	ProjectName *string   `json:"project_name"`
	AssignDate  string    `json:"assign_date"`
	EndDate     *string   `json:"end_date"`
	AssignedBy  *string   `json:"assigned_by"`
	Notes       *string   `json:"notes"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewAssignmentResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		WorkerCode:  a.WorkerCode,
		WorkerName:  a.WorkerName,
		ProjectID:   a.ProjectID,
		ProjectName: a.ProjectName,
		AssignDate:  a.AssignDate.Format(validator.DateLayout),
		EndDate:     utils.FormatDate(a.EndDate),
		AssignedBy:  a.AssignedBy,
		Notes:       a.Notes,
		Active:      a.IsActive(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type AssignmentFilter struct {
	WorkerID  string
	ProjectID string
	// Active: nil lists everything, true only open assignments, false only ended ones.
	Active *bool
}

func (f AssignmentFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.WorkerID != "" && !validator.IsValidUUID(f.WorkerID) {
		errs.Add("worker_id", "worker_id must be a valid UUID")
	}
	if f.ProjectID != "" && !validator.IsValidUUID(f.ProjectID) {
		errs.Add("project_id", "project_id must be a valid UUID")
	}
	return errs.Err()
}

type CreateAssignmentRequest struct {
	WorkerID   string  `json:"worker_id"`
	ProjectID  string  `json:"project_id"`
	AssignDate *string `json:"assign_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	AssignedBy *string `json:"assigned_by,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs.Add("worker_id", "worker_id is required")
	} else if !validator.IsValidUUID(r.WorkerID) {
		errs.Add("worker_id", "worker_id must be a valid UUID")
	}

	if validator.IsEmpty(r.ProjectID) {
		errs.Add("project_id", "project_id is required")
	} else if !validator.IsValidUUID(r.ProjectID) {
		errs.Add("project_id", "project_id must be a valid UUID")
	}

	if r.AssignedBy != nil && len(*r.AssignedBy) > 255 {
		errs.Add("assigned_by", "assigned_by must not exceed 255 characters")
	}

	ValidateDates(&errs, r.AssignDate, r.EndDate)

	return errs.Err()
}

// UpdateAssignmentRequest is a partial update. end_date "" re-opens the assignment.
type UpdateAssignmentRequest struct {
	ID         string  `json:"-"`
	WorkerID   *string `json:"worker_id,omitempty"`
	ProjectID  *string `json:"project_id,omitempty"`
	AssignDate *string `json:"assign_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	AssignedBy *string `json:"assigned_by,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}
	if r.WorkerID != nil && !validator.IsValidUUID(*r.WorkerID) {
		errs.Add("worker_id", "worker_id must be a valid UUID")
	}
	if r.ProjectID != nil && !validator.IsValidUUID(*r.ProjectID) {
		errs.Add("project_id", "project_id must be a valid UUID")
	}
	if r.AssignDate != nil && *r.AssignDate == "" {
		errs.Add("assign_date", "assign_date must not be empty")
	}
	if r.AssignedBy != nil && len(*r.AssignedBy) > 255 {
		errs.Add("assigned_by", "assigned_by must not exceed 255 characters")
	}

	ValidateDates(&errs, r.AssignDate, r.EndDate)

	return errs.Err()
}

// ValidateDates checks formats and that end_date does not precede assign_date when both are given.
func ValidateDates(errs *validator.ValidationErrors, assignDate, endDate *string) {
	var start, end time.Time
	var hasStart, hasEnd bool

	if assignDate != nil && *assignDate != "" {
		if start, hasStart = validator.IsValidDate(*assignDate); !hasStart {
			errs.Add("assign_date", "assign_date must be in YYYY-MM-DD format")
		}
	}
	if endDate != nil && *endDate != "" {
		if end, hasEnd = validator.IsValidDate(*endDate); !hasEnd {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if hasStart && hasEnd && end.Before(start) {
		errs.Add("end_date", "end_date must not be before assign_date")
	}
}
