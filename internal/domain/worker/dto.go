package worker

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type WorkerResponse struct {
	ID             string           `json:"id"`
	Code           string           `json:"code"`
	FullName       string           `json:"full_name"`
	IDCard         *string          `json:"id_card"`
	Phone          *string          `json:"phone"`
	Email          *string          `json:"email"`
	Address        *string          `json:"address"`
	DateOfBirth    *string          `json:"date_of_birth"`
	Gender         *string          `json:"gender"`
	DepartmentID   *string          `json:"department_id"`
	DepartmentName *string          `json:"department_name"`
	Position       *string          `json:"position"`
	HireDate       *string          `json:"hire_date"`
	Salary         *decimal.Decimal `json:"salary"`
	Status         string           `json:"status"`
	Notes          *string          `json:"notes"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Code:           w.Code,
		FullName:       w.FullName,
		IDCard:         w.IDCard,
		Phone:          w.Phone,
		Email:          w.Email,
		Address:        w.Address,
		DateOfBirth:    utils.FormatDate(w.DateOfBirth),
		Gender:         w.Gender,
		DepartmentID:   w.DepartmentID,
		DepartmentName: w.DepartmentName,
		Position:       w.Position,
		HireDate:       utils.FormatDate(w.HireDate),
		Salary:         w.Salary,
		Status:         w.Status,
		Notes:          w.Notes,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

type WorkerFilter struct {
	DepartmentID string
	Status       string
	Search       string
}

func (f WorkerFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.DepartmentID != "" && !validator.IsValidUUID(f.DepartmentID) {
		errs.Add("department_id", "department_id must be a valid UUID")
	}
	if f.Status != "" && !validator.IsInSlice(f.Status, Statuses) {
		errs.Add("status", "status must be one of active, on_leave, resigned")
	}
	return errs.Err()
}

type CreateWorkerRequest struct {
	Code         string           `json:"code"`
	FullName     string           `json:"full_name"`
	IDCard       *string          `json:"id_card,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Address      *string          `json:"address,omitempty"`
	DateOfBirth  *string          `json:"date_of_birth,omitempty"`
	Gender       *string          `json:"gender,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Position     *string          `json:"position,omitempty"`
	HireDate     *string          `json:"hire_date,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	Status       *string          `json:"status,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	// Code
	if validator.IsEmpty(r.Code) {
		errs.Add("code", "code is required")
	} else if len(r.Code) > 50 {
		errs.Add("code", "code must not exceed 50 characters")
	}

	// Full name
	if validator.IsEmpty(r.FullName) {
		errs.Add("full_name", "full_name is required")
	} else if len(r.FullName) > 255 {
		errs.Add("full_name", "full_name must not exceed 255 characters")
	}

	validateOptional(&errs, optionalFields{
		IDCard:       r.IDCard,
		Phone:        r.Phone,
		Email:        r.Email,
		DateOfBirth:  r.DateOfBirth,
		Gender:       r.Gender,
		DepartmentID: r.DepartmentID,
		Position:     r.Position,
		HireDate:     r.HireDate,
		Salary:       r.Salary,
		Status:       r.Status,
	})

	return errs.Err()
}

// UpdateWorkerRequest is a partial update. Empty strings clear nullable fields,
// so department_id "" removes the worker from its department.
type UpdateWorkerRequest struct {
	ID           string           `json:"-"`
	Code         *string          `json:"code,omitempty"`
	FullName     *string          `json:"full_name,omitempty"`
	IDCard       *string          `json:"id_card,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Address      *string          `json:"address,omitempty"`
	DateOfBirth  *string          `json:"date_of_birth,omitempty"`
	Gender       *string          `json:"gender,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Position     *string          `json:"position,omitempty"`
	HireDate     *string          `json:"hire_date,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	Status       *string          `json:"status,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}

	if r.Code != nil {
		if validator.IsEmpty(*r.Code) {
			errs.Add("code", "code must not be empty")
		} else if len(*r.Code) > 50 {
			errs.Add("code", "code must not exceed 50 characters")
		}
	}

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs.Add("full_name", "full_name must not be empty")
		} else if len(*r.FullName) > 255 {
			errs.Add("full_name", "full_name must not exceed 255 characters")
		}
	}

	validateOptional(&errs, optionalFields{
		IDCard:       r.IDCard,
		Phone:        r.Phone,
		Email:        r.Email,
		DateOfBirth:  r.DateOfBirth,
		Gender:       r.Gender,
		DepartmentID: r.DepartmentID,
		Position:     r.Position,
		HireDate:     r.HireDate,
		Salary:       r.Salary,
		Status:       r.Status,
	})

	return errs.Err()
}

type optionalFields struct {
	IDCard       *string
	Phone        *string
	Email        *string
	DateOfBirth  *string
	Gender       *string
	DepartmentID *string
	Position     *string
	HireDate     *string
	Salary       *decimal.Decimal
	Status       *string
}

var maxSalary = decimal.New(1, 13) // numeric(15,2)

func validateOptional(errs *validator.ValidationErrors, f optionalFields) {
	if f.IDCard != nil && len(*f.IDCard) > 20 {
		errs.Add("id_card", "id_card must not exceed 20 characters")
	}
	if f.Phone != nil && *f.Phone != "" {
		if len(*f.Phone) > 20 || !validator.IsValidPhoneNumber(*f.Phone) {
			errs.Add("phone", "phone must contain 8 to 15 digits")
		}
	}
	if f.Email != nil && *f.Email != "" && !validator.IsValidEmail(*f.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	if f.DateOfBirth != nil && *f.DateOfBirth != "" {
		if dob, ok := validator.IsValidDate(*f.DateOfBirth); !ok {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		} else if dob.After(time.Now()) {
			errs.Add("date_of_birth", "date_of_birth must not be in the future")
		}
	}
	if f.Gender != nil && len(*f.Gender) > 10 {
		errs.Add("gender", "gender must not exceed 10 characters")
	}
	if f.DepartmentID != nil && *f.DepartmentID != "" && !validator.IsValidUUID(*f.DepartmentID) {
		errs.Add("department_id", "department_id must be a valid UUID")
	}
	if f.Position != nil && len(*f.Position) > 100 {
		errs.Add("position", "position must not exceed 100 characters")
	}
	if f.HireDate != nil && *f.HireDate != "" {
		if _, ok := validator.IsValidDate(*f.HireDate); !ok {
			errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
		}
	}
	if f.Salary != nil {
		if f.Salary.IsNegative() {
			errs.Add("salary", "salary must not be negative")
		} else if f.Salary.GreaterThanOrEqual(maxSalary) {
			errs.Add("salary", "salary is too large")
		}
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses) {
		errs.Add("status", "status must be one of active, on_leave, resigned")
	}
}
