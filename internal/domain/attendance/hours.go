package attendance

import (
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	secondsPerHour = decimal.NewFromInt(3600)
	maxWorkHours   = decimal.NewFromInt(24)
)

// onDate places a "HH:MM:SS" wall-clock time on the given calendar day.
func onDate(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(validator.TimeLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

// HoursBetween returns check-out minus check-in in hours, rounded to two decimals,
// with both times taken on the same calendar day. A check-out before the check-in
// yields a validation error on check_out_time.
func HoursBetween(date time.Time, checkIn, checkOut string) (decimal.Decimal, error) {
	in, err := onDate(date, checkIn)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := onDate(date, checkOut)
	if err != nil {
		return decimal.Zero, err
	}

	if out.Before(in) {
		return decimal.Zero, validator.ValidationErrors{{
			Field:   "check_out_time",
			Message: "check_out_time must not be earlier than check_in_time",
		}}
	}

	seconds := decimal.NewFromInt(int64(out.Sub(in) / time.Second))
	return seconds.Div(secondsPerHour).Round(2), nil
}

// DeriveWorkHours fills WorkHours from the check-in and check-out when both are present.
// When either is missing WorkHours is cleared.
func (a *Attendance) DeriveWorkHours() error {
	if a.CheckInTime == nil || a.CheckOutTime == nil {
		a.WorkHours = nil
		return nil
	}
	hours, err := HoursBetween(a.AttendanceDate, *a.CheckInTime, *a.CheckOutTime)
	if err != nil {
		return err
	}
	a.WorkHours = &hours
	return nil
}

// Check enforces the invariants of a complete record: known status, times only on
// present records and a check-out that does not precede the check-in.
func (a Attendance) Check() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(a.Status, Statuses) {
		errs.Add("status", "status must be one of present, absent, leave")
	}

	if a.Status == StatusAbsent || a.Status == StatusLeave {
		if a.CheckInTime != nil {
			errs.Add("check_in_time", fmt.Sprintf("check_in_time must be empty when status is %s", a.Status))
		}
		if a.CheckOutTime != nil {
			errs.Add("check_out_time", fmt.Sprintf("check_out_time must be empty when status is %s", a.Status))
		}
		if a.WorkHours != nil && !a.WorkHours.IsZero() {
			errs.Add("work_hours", fmt.Sprintf("work_hours must be empty when status is %s", a.Status))
		}
	}

	if a.CheckInTime != nil && a.CheckOutTime != nil {
		if _, err := HoursBetween(a.AttendanceDate, *a.CheckInTime, *a.CheckOutTime); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				errs = append(errs, verrs...)
			} else {
				errs.Add("check_in_time", err.Error())
			}
		}
	}

	if a.WorkHours != nil {
		if a.WorkHours.IsNegative() || a.WorkHours.GreaterThan(maxWorkHours) {
			errs.Add("work_hours", "work_hours must be between 0 and 24")
		}
	}

	return errs.Err()
}
