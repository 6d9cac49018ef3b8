package fixtures

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{Seed: 42, Reference: reference, Months: 2}

	first := Generate(opts)
	second := Generate(opts)
	assert.Equal(t, first, second)

	other := Generate(Options{Seed: 43, Reference: reference, Months: 2})
	assert.NotEqual(t, first.Projects[0].ID, other.Projects[0].ID)
}

func TestGenerate_Catalog(t *testing.T) {
	ds := Generate(Options{Seed: 1, Reference: reference})

	assert.Len(t, ds.Projects, 5)
	assert.Len(t, ds.Departments, 5)
	assert.Len(t, ds.Workers, 15)
	assert.Len(t, ds.Assignments, 8)
	assert.Equal(t, "NC001", ds.Workers[0].Code)
	assert.Equal(t, "on_leave", ds.Workers[14].Status)

	seen := map[string]bool{}
	ids := []string{}
	for _, p := range ds.Projects {
		ids = append(ids, p.ID)
	}
	for _, d := range ds.Departments {
		ids = append(ids, d.ID)
	}
	for _, w := range ds.Workers {
		ids = append(ids, w.ID)
		require.NotNil(t, w.DepartmentID)
	}
	for _, a := range ds.Attendance {
		ids = append(ids, a.ID)
	}
	for _, id := range ids {
		assert.True(t, validator.IsValidUUID(id), id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerate_AttendanceRules(t *testing.T) {
	ds := Generate(Options{Seed: 7, Reference: reference, Months: 2})
	require.NotEmpty(t, ds.Attendance)

	assigned := map[string]bool{}
	for _, a := range ds.Assignments {
		assigned[a.WorkerID] = true
	}

	perDay := map[time.Time]int{}
	minHours := decimal.RequireFromString("8.01")
	maxHours := decimal.RequireFromString("11.99")
	for _, a := range ds.Attendance {
		perDay[a.AttendanceDate]++

		assert.NotEqual(t, time.Sunday, a.AttendanceDate.Weekday())
		assert.False(t, a.AttendanceDate.Before(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, a.AttendanceDate.After(reference))
		assert.NoError(t, a.Check())
		assert.Equal(t, assigned[a.WorkerID], a.ProjectID != nil)

		if a.Status == attendance.StatusPresent {
			require.NotNil(t, a.WorkHours)
			hours, err := attendance.HoursBetween(a.AttendanceDate, *a.CheckInTime, *a.CheckOutTime)
			require.NoError(t, err)
			assert.True(t, hours.Equal(*a.WorkHours))
			assert.True(t, a.WorkHours.GreaterThanOrEqual(minHours), a.WorkHours.String())
			assert.True(t, a.WorkHours.LessThanOrEqual(maxHours), a.WorkHours.String())
		} else {
			assert.Nil(t, a.CheckInTime)
			assert.Nil(t, a.WorkHours)
		}
	}

	// January and February 2024 have 52 non-Sunday days
	assert.Len(t, perDay, 52)
	for day, n := range perDay {
		assert.GreaterOrEqual(t, n, minWorkersPerDay, day)
		assert.LessOrEqual(t, n, maxWorkersPerDay, day)
	}
}

func TestGenerate_MostlyPresent(t *testing.T) {
	ds := Generate(Options{Seed: 99, Reference: reference, Months: 6})

	present := 0
	for _, a := range ds.Attendance {
		if a.Status == attendance.StatusPresent {
			present++
		}
	}
	ratio := float64(present) / float64(len(ds.Attendance))
	assert.InDelta(t, presentRate, ratio, 0.05)
}
