package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAttendanceRates(t *testing.T) {
	counts := []StatusCount{
		{Status: "present", Count: 90},
		{Status: "absent", Count: 7},
		{Status: "leave", Count: 3},
	}

	rates := ComputeAttendanceRates(counts)
	require.Len(t, rates, 3)

	assert.Equal(t, "present", rates[0].Status)
	assert.True(t, decimal.NewFromInt(90).Equal(rates[0].Percentage))
	assert.True(t, decimal.NewFromInt(7).Equal(rates[1].Percentage))
	assert.True(t, decimal.NewFromInt(3).Equal(rates[2].Percentage))
}

func TestComputeAttendanceRates_SumsToHundred(t *testing.T) {
	counts := []StatusCount{
		{Status: "present", Count: 1},
		{Status: "absent", Count: 1},
		{Status: "leave", Count: 1},
	}

	rates := ComputeAttendanceRates(counts)

	var sumCounts int64
	sum := decimal.Zero
	for _, r := range rates {
		sumCounts += r.Count
		sum = sum.Add(r.Percentage)
		assert.Equal(t, "33.33", r.Percentage.StringFixed(2))
	}
	assert.Equal(t, int64(3), sumCounts)
	assert.True(t, sum.Sub(hundred).Abs().LessThanOrEqual(decimal.NewFromFloat(0.1)), "sum %s", sum)
}

func TestComputeAttendanceRates_Empty(t *testing.T) {
	assert.Empty(t, ComputeAttendanceRates(nil))

	rates := ComputeAttendanceRates([]StatusCount{{Status: "present", Count: 0}})
	require.Len(t, rates, 1)
	assert.True(t, rates[0].Percentage.IsZero())
}

func TestComputeWorkHours(t *testing.T) {
	rows := []WorkHoursMonthStats{
		{Month: "2024-01", RecordCount: 3, HoursCount: 3, TotalHours: decimal.RequireFromString("28.50")},
		{Month: "2024-02", RecordCount: 2, HoursCount: 1, TotalHours: decimal.RequireFromString("9")},
		{Month: "2024-03", RecordCount: 4, HoursCount: 0, TotalHours: decimal.Zero},
	}

	got := ComputeWorkHours(rows)
	require.Len(t, got, 3)

	assert.Equal(t, "9.50", got[0].AvgHours.StringFixed(2))
	assert.Equal(t, "28.50", got[0].TotalHours.StringFixed(2))
	assert.Equal(t, int64(2), got[1].RecordCount)
	assert.Equal(t, "9.00", got[1].AvgHours.StringFixed(2))
	assert.True(t, got[2].AvgHours.IsZero())
}

func TestComputeWorkHours_RoundsAverage(t *testing.T) {
	rows := []WorkHoursMonthStats{
		{Month: "2024-01", RecordCount: 3, HoursCount: 3, TotalHours: decimal.RequireFromString("10")},
	}
	got := ComputeWorkHours(rows)
	assert.Equal(t, "3.33", got[0].AvgHours.String())
}
