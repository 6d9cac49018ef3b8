package project

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    *string   `json:"location"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Status      string    `json:"status"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Location:    p.Location,
		StartDate:   utils.FormatDate(p.StartDate),
		EndDate:     utils.FormatDate(p.EndDate),
		Status:      p.Status,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ProjectFilter struct {
	Status string
}

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	if r.Status != nil {
		validateStatus(&errs, *r.Status)
	}

	validateDates(&errs, r.StartDate, r.EndDate)

	return errs.Err()
}

// UpdateProjectRequest is a partial update. Empty strings clear nullable fields.
type UpdateProjectRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs.Add("name", "name must not be empty")
		} else if len(*r.Name) > 255 {
			errs.Add("name", "name must not exceed 255 characters")
		}
	}

	if r.Status != nil {
		validateStatus(&errs, *r.Status)
	}

	validateDates(&errs, r.StartDate, r.EndDate)

	return errs.Err()
}

func validateStatus(errs *validator.ValidationErrors, status string) {
	if validator.IsEmpty(status) {
		errs.Add("status", "status must not be empty")
	} else if len(status) > 50 {
		errs.Add("status", "status must not exceed 50 characters")
	}
}

func validateDates(errs *validator.ValidationErrors, start, end *string) {
	var startDate, endDate time.Time
	var hasStart, hasEnd bool

	if start != nil && *start != "" {
		if startDate, hasStart = validator.IsValidDate(*start); !hasStart {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if end != nil && *end != "" {
		if endDate, hasEnd = validator.IsValidDate(*end); !hasEnd {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if hasStart && hasEnd && endDate.Before(startDate) {
		errs.Add("end_date", "end_date must not be before start_date")
	}
}
