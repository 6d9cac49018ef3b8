package stats

type OverviewResponse struct {
	Totals              Totals            `json:"totals"`
	AssignmentsByMonth  []MonthCount      `json:"assignments_by_month"`
	AttendanceByMonth   []AttendanceMonth `json:"attendance_by_month"`
	WorkersByDepartment []DepartmentCount `json:"workers_by_department"`
	WorkersByStatus     []StatusCount     `json:"workers_by_status"`
	WorkersByProject    []ProjectCount    `json:"workers_by_project"`
	TopWorkers          []TopWorker       `json:"top_workers"`
	AttendanceRate      []AttendanceRate  `json:"attendance_rate"`
	WorkHoursByMonth    []WorkHoursMonth  `json:"work_hours_by_month"`
}
