package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusLeave}

// Attendance is one worker's entry for one calendar day.
// Check-in and check-out are wall-clock times ("HH:MM:SS") on AttendanceDate.
type Attendance struct {
	ID             string
	WorkerID       string
	ProjectID      *string
	AttendanceDate time.Time
	CheckInTime    *string
	CheckOutTime   *string
	WorkHours      *decimal.Decimal
	Status         string
	Notes          *string
	CreatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined
	WorkerCode  *string
	WorkerName  *string
	ProjectName *string
}
