package stats

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputeAttendanceRates turns per-status counts into percentages of the grand total,
// rounded to two decimals. Input order is kept.
func ComputeAttendanceRates(counts []StatusCount) []AttendanceRate {
	var total int64
	for _, c := range counts {
		total += c.Count
	}

	rates := make([]AttendanceRate, 0, len(counts))
	for _, c := range counts {
		pct := decimal.Zero
		if total > 0 {
			pct = decimal.NewFromInt(c.Count).Mul(hundred).Div(decimal.NewFromInt(total)).Round(2)
		}
		rates = append(rates, AttendanceRate{
			Status:     c.Status,
			Count:      c.Count,
			Percentage: pct,
		})
	}
	return rates
}

// ComputeWorkHours derives the monthly average from exact totals. Rows without hours
// do not count towards the average.
func ComputeWorkHours(rows []WorkHoursMonthStats) []WorkHoursMonth {
	result := make([]WorkHoursMonth, 0, len(rows))
	for _, r := range rows {
		avg := decimal.Zero
		if r.HoursCount > 0 {
			avg = r.TotalHours.Div(decimal.NewFromInt(r.HoursCount)).Round(2)
		}
		result = append(result, WorkHoursMonth{
			Month:       r.Month,
			RecordCount: r.RecordCount,
			TotalHours:  r.TotalHours.Round(2),
			AvgHours:    avg,
		})
	}
	return result
}
