package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var jan15 = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     string
	}{
		{"full day", "08:00:00", "17:00:00", "9"},
		{"minutes", "07:30:00", "17:15:00", "9.75"},
		{"rounded to two places", "07:13:00", "17:47:00", "10.57"},
		{"seconds count", "08:00:00", "08:00:36", "0.01"},
		{"equal times", "12:00:00", "12:00:00", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoursBetween(jan15, tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestHoursBetween_MatchesHourMinuteFormula(t *testing.T) {
	for inH := 5; inH <= 10; inH++ {
		for _, inM := range []int{0, 7, 30, 59} {
			for outH := 15; outH <= 20; outH++ {
				for _, outM := range []int{0, 15, 44} {
					in := time.Date(2024, 1, 15, inH, inM, 0, 0, time.UTC).Format(validator.TimeLayout)
					out := time.Date(2024, 1, 15, outH, outM, 0, 0, time.UTC).Format(validator.TimeLayout)

					got, err := HoursBetween(jan15, in, out)
					require.NoError(t, err)

					want := decimal.NewFromInt(int64(outH)).Add(decimal.NewFromInt(int64(outM)).Div(decimal.NewFromInt(60))).
						Sub(decimal.NewFromInt(int64(inH)).Add(decimal.NewFromInt(int64(inM)).Div(decimal.NewFromInt(60)))).
						Round(2)
					assert.True(t, want.Equal(got), "%s-%s: got %s want %s", in, out, got, want)
				}
			}
		}
	}
}

func TestHoursBetween_CheckOutBeforeCheckIn(t *testing.T) {
	_, err := HoursBetween(jan15, "22:00:00", "06:00:00")
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "check_out_time")
}

func TestHoursBetween_InvalidTime(t *testing.T) {
	_, err := HoursBetween(jan15, "8am", "17:00:00")
	assert.Error(t, err)
}

func TestDeriveWorkHours(t *testing.T) {
	t.Run("both times present", func(t *testing.T) {
		a := Attendance{AttendanceDate: jan15, CheckInTime: strPtr("08:00:00"), CheckOutTime: strPtr("17:00:00")}
		require.NoError(t, a.DeriveWorkHours())
		require.NotNil(t, a.WorkHours)
		assert.Equal(t, "9", a.WorkHours.String())
	})

	t.Run("only check-in leaves hours unset", func(t *testing.T) {
		prev := decimal.NewFromInt(4)
		a := Attendance{AttendanceDate: jan15, CheckInTime: strPtr("08:00:00"), WorkHours: &prev}
		require.NoError(t, a.DeriveWorkHours())
		assert.Nil(t, a.WorkHours)
	})

	t.Run("negative is rejected", func(t *testing.T) {
		a := Attendance{AttendanceDate: jan15, CheckInTime: strPtr("17:00:00"), CheckOutTime: strPtr("08:00:00")}
		assert.Error(t, a.DeriveWorkHours())
		assert.Nil(t, a.WorkHours)
	})
}

func TestCheck(t *testing.T) {
	eight := decimal.NewFromInt(8)
	tooMany := decimal.NewFromInt(25)

	tests := []struct {
		name      string
		record    Attendance
		wantField string
	}{
		{
			name:   "present with times",
			record: Attendance{Status: StatusPresent, AttendanceDate: jan15, CheckInTime: strPtr("08:00:00"), CheckOutTime: strPtr("17:00:00"), WorkHours: &eight},
		},
		{
			name:   "absent without times",
			record: Attendance{Status: StatusAbsent, AttendanceDate: jan15},
		},
		{
			name:      "unknown status",
			record:    Attendance{Status: "late", AttendanceDate: jan15},
			wantField: "status",
		},
		{
			name:      "leave with check-in",
			record:    Attendance{Status: StatusLeave, AttendanceDate: jan15, CheckInTime: strPtr("08:00:00")},
			wantField: "check_in_time",
		},
		{
			name:      "absent with hours",
			record:    Attendance{Status: StatusAbsent, AttendanceDate: jan15, WorkHours: &eight},
			wantField: "work_hours",
		},
		{
			name:      "check-out before check-in",
			record:    Attendance{Status: StatusPresent, AttendanceDate: jan15, CheckInTime: strPtr("18:00:00"), CheckOutTime: strPtr("07:00:00")},
			wantField: "check_out_time",
		},
		{
			name:      "hours above a day",
			record:    Attendance{Status: StatusPresent, AttendanceDate: jan15, WorkHours: &tooMany},
			wantField: "work_hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Check()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}
