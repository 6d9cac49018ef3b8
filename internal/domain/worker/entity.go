package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "active"
	StatusOnLeave  = "on_leave"
	StatusResigned = "resigned"
)

var Statuses = []string{StatusActive, StatusOnLeave, StatusResigned}

type Worker struct {
	ID           string
	Code         string
	FullName     string
	IDCard       *string
	Phone        *string
	Email        *string
	Address      *string
	DateOfBirth  *time.Time
	Gender       *string
	DepartmentID *string
	Position     *string
	HireDate     *time.Time
	Salary       *decimal.Decimal
	Status       string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined
	DepartmentName *string
}
