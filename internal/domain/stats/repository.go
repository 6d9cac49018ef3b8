package stats

import "context"

// StatsRepository runs read-only aggregate queries against the latest committed state.
type StatsRepository interface {
	AssignmentsByMonth(ctx context.Context) ([]MonthCount, error)
	AttendanceByMonth(ctx context.Context) ([]AttendanceMonth, error)
	WorkersByDepartment(ctx context.Context) ([]DepartmentCount, error)
	WorkersByStatus(ctx context.Context) ([]StatusCount, error)
	WorkersByProject(ctx context.Context, limit int) ([]ProjectCount, error)
	TopWorkers(ctx context.Context, limit int) ([]TopWorker, error)
	AttendanceStatusCounts(ctx context.Context) ([]StatusCount, error)
	WorkHoursByMonth(ctx context.Context) ([]WorkHoursMonthStats, error)
	Totals(ctx context.Context) (Totals, error)
}
