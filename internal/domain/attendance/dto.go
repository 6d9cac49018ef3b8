package attendance

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

type AttendanceResponse struct {
	ID             string           `json:"id"`
	WorkerID       string           `json:"worker_id"`
	WorkerCode     *string          `json:"worker_code"`
	WorkerName     *string          `json:"worker_name"`
	ProjectID      *string          `json:"project_id"`
	ProjectName    *string          `json:"project_name"`
	AttendanceDate string           `json:"attendance_date"`
	CheckInTime    *string          `json:"check_in_time"`
	CheckOutTime   *string          `json:"check_out_time"`
	WorkHours      *decimal.Decimal `json:"work_hours"`
	Status         string           `json:"status"`
	Notes          *string          `json:"notes"`
	CreatedBy      *string          `json:"created_by"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		WorkerID:       a.WorkerID,
		WorkerCode:     a.WorkerCode,
		WorkerName:     a.WorkerName,
		ProjectID:      a.ProjectID,
		ProjectName:    a.ProjectName,
		AttendanceDate: a.AttendanceDate.Format(validator.DateLayout),
		CheckInTime:    a.CheckInTime,
		CheckOutTime:   a.CheckOutTime,
		WorkHours:      a.WorkHours,
		Status:         a.Status,
		Notes:          a.Notes,
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type AttendanceFilter struct {
	WorkerID  string
	ProjectID string
	Status    string
	DateFrom  string // YYYY-MM-DD
	DateTo    string // YYYY-MM-DD

	// Pagination
	Page  int
	Limit int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs.Add("page", "page must be a positive number")
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		errs.Add("limit", "limit must not exceed 500")
	}

	if f.WorkerID != "" && !validator.IsValidUUID(f.WorkerID) {
		errs.Add("worker_id", "worker_id must be a valid UUID")
	}
	if f.ProjectID != "" && !validator.IsValidUUID(f.ProjectID) {
		errs.Add("project_id", "project_id must be a valid UUID")
	}
	if f.Status != "" && !validator.IsInSlice(f.Status, Statuses) {
		errs.Add("status", "status must be one of present, absent, leave")
	}

	var from, to time.Time
	var hasFrom, hasTo bool
	if f.DateFrom != "" {
		if from, hasFrom = validator.IsValidDate(f.DateFrom); !hasFrom {
			errs.Add("date_from", "date_from must be in YYYY-MM-DD format")
		}
	}
	if f.DateTo != "" {
		if to, hasTo = validator.IsValidDate(f.DateTo); !hasTo {
			errs.Add("date_to", "date_to must be in YYYY-MM-DD format")
		}
	}
	if hasFrom && hasTo && to.Before(from) {
		errs.Add("date_to", "date_to must not be before date_from")
	}

	return errs.Err()
}

func (f AttendanceFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type CreateAttendanceRequest struct {
	WorkerID       string           `json:"worker_id"`
	ProjectID      *string          `json:"project_id,omitempty"`
	AttendanceDate *string          `json:"attendance_date,omitempty"` // YYYY-MM-DD, defaults to today
	CheckInTime    *string          `json:"check_in_time,omitempty"`   // HH:MM:SS or HH:MM
	CheckOutTime   *string          `json:"check_out_time,omitempty"`  // HH:MM:SS or HH:MM
	WorkHours      *decimal.Decimal `json:"work_hours,omitempty"`
	Status         *string          `json:"status,omitempty"` // defaults to present
	Notes          *string          `json:"notes,omitempty"`
	CreatedBy      *string          `json:"created_by,omitempty"`
}

// Validate checks formats and normalizes times to HH:MM:SS. Cross-field rules are
// enforced on the assembled record by Attendance.Check.
func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs.Add("worker_id", "worker_id is required")
	} else if !validator.IsValidUUID(r.WorkerID) {
		errs.Add("worker_id", "worker_id must be a valid UUID")
	}

	if r.ProjectID != nil && *r.ProjectID != "" && !validator.IsValidUUID(*r.ProjectID) {
		errs.Add("project_id", "project_id must be a valid UUID")
	}

	if r.AttendanceDate != nil && *r.AttendanceDate != "" {
		if _, ok := validator.IsValidDate(*r.AttendanceDate); !ok {
			errs.Add("attendance_date", "attendance_date must be in YYYY-MM-DD format")
		}
	}

	normalizeTime(&errs, "check_in_time", r.CheckInTime)
	normalizeTime(&errs, "check_out_time", r.CheckOutTime)

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs.Add("status", "status must be one of present, absent, leave")
	}

	if r.CreatedBy != nil && len(*r.CreatedBy) > 255 {
		errs.Add("created_by", "created_by must not exceed 255 characters")
	}

	return errs.Err()
}

// UpdateAttendanceRequest is a partial update. Empty strings clear project_id,
// check_in_time and check_out_time.
type UpdateAttendanceRequest struct {
	ID             string           `json:"-"`
	WorkerID       *string          `json:"worker_id,omitempty"`
	ProjectID      *string          `json:"project_id,omitempty"`
	AttendanceDate *string          `json:"attendance_date,omitempty"`
	CheckInTime    *string          `json:"check_in_time,omitempty"`
	CheckOutTime   *string          `json:"check_out_time,omitempty"`
	WorkHours      *decimal.Decimal `json:"work_hours,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}
	if r.WorkerID != nil && !validator.IsValidUUID(*r.WorkerID) {
		errs.Add("worker_id", "worker_id must be a valid UUID")
	}
	if r.ProjectID != nil && *r.ProjectID != "" && !validator.IsValidUUID(*r.ProjectID) {
		errs.Add("project_id", "project_id must be a valid UUID")
	}
	if r.AttendanceDate != nil {
		if _, ok := validator.IsValidDate(*r.AttendanceDate); !ok {
			errs.Add("attendance_date", "attendance_date must be in YYYY-MM-DD format")
		}
	}

	normalizeTime(&errs, "check_in_time", r.CheckInTime)
	normalizeTime(&errs, "check_out_time", r.CheckOutTime)

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs.Add("status", "status must be one of present, absent, leave")
	}

	return errs.Err()
}

// TouchesTimes reports whether the update changes check-in or check-out.
func (r *UpdateAttendanceRequest) TouchesTimes() bool {
	return r.CheckInTime != nil || r.CheckOutTime != nil
}

func normalizeTime(errs *validator.ValidationErrors, field string, value *string) {
	if value == nil || *value == "" {
		return
	}
	normalized, ok := validator.IsValidTimeOfDay(*value)
	if !ok {
		errs.Add(field, field+" must be in HH:MM:SS or HH:MM format")
		return
	}
	*value = normalized
}
