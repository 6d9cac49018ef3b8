package department

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
)

type DepartmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        *string   `json:"code"`
	Manager     *string   `json:"manager"`
	Phone       *string   `json:"phone"`
	Description *string   `json:"description"`
	WorkerCount *int64    `json:"worker_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		Manager:     d.Manager,
		Phone:       d.Phone,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Code        *string `json:"code,omitempty"`
	Manager     *string `json:"manager,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	validateOptional(&errs, r.Code, r.Manager, r.Phone)

	return errs.Err()
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Manager     *string `json:"manager,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
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

	validateOptional(&errs, r.Code, r.Manager, r.Phone)

	return errs.Err()
}

func validateOptional(errs *validator.ValidationErrors, code, manager, phone *string) {
	if code != nil && len(*code) > 50 {
		errs.Add("code", "code must not exceed 50 characters")
	}
	if manager != nil && len(*manager) > 255 {
		errs.Add("manager", "manager must not exceed 255 characters")
	}
	if phone != nil && *phone != "" {
		if len(*phone) > 20 || !validator.IsValidPhoneNumber(*phone) {
			errs.Add("phone", "phone must contain 8 to 15 digits")
		}
	}
}
