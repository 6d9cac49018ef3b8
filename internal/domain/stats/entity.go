package stats

import "github.com/shopspring/decimal"

// SentinelUnassigned groups rows whose department or project reference is null.
const SentinelUnassigned = "unassigned"

// TopN bounds the workers-by-project and top-workers views.
const TopN = 10

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type AttendanceMonth struct {
	Month        string `json:"month"`
	Count        int64  `json:"count"`
	PresentCount int64  `json:"present_count"`
	AbsentCount  int64  `json:"absent_count"`
	LeaveCount   int64  `json:"leave_count"`
}

type DepartmentCount struct {
	DepartmentName string `json:"department_name"`
	Count          int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ProjectCount struct {
	ProjectName string `json:"project_name"`
	WorkerCount int64  `json:"worker_count"`
}

type TopWorker struct {
	WorkerID        string          `json:"worker_id"`
	Code            string          `json:"code"`
	FullName        string          `json:"full_name"`
	Position        *string         `json:"position"`
	AttendanceCount int64           `json:"attendance_count"`
	TotalHours      decimal.Decimal `json:"total_hours"`
}

type AttendanceRate struct {
	Status     string          `json:"status"`
	Count      int64           `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

type WorkHoursMonth struct {
	Month       string          `json:"month"`
	RecordCount int64           `json:"record_count"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	AvgHours    decimal.Decimal `json:"avg_hours"`
}

// WorkHoursMonthStats is the raw per-month aggregate; HoursCount counts rows with non-null hours.
type WorkHoursMonthStats struct {
	Month       string
	RecordCount int64
	HoursCount  int64
	TotalHours  decimal.Decimal
}

type Totals struct {
	Projects          int64 `json:"projects"`
	Departments       int64 `json:"departments"`
	Workers           int64 `json:"workers"`
	ActiveAssignments int64 `json:"active_assignments"`
	AttendanceRecords int64 `json:"attendance_records"`
}
