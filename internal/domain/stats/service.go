package stats

import "context"

type StatsService interface {
	AssignmentsByMonth(ctx context.Context) ([]MonthCount, error)
	AttendanceByMonth(ctx context.Context) ([]AttendanceMonth, error)
	WorkersByDepartment(ctx context.Context) ([]DepartmentCount, error)
	WorkersByStatus(ctx context.Context) ([]StatusCount, error)
	WorkersByProject(ctx context.Context) ([]ProjectCount, error)
	TopWorkers(ctx context.Context) ([]TopWorker, error)
	AttendanceRate(ctx context.Context) ([]AttendanceRate, error)
	WorkHoursByMonth(ctx context.Context) ([]WorkHoursMonth, error)
	Overview(ctx context.Context) (OverviewResponse, error)

	// Export renders every view into an XLSX workbook.
	Export(ctx context.Context) ([]byte, error)
}
