package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// collect runs a built query and scans every row with scan.
func collect[T any](ctx context.Context, q database.Querier, builder sq.Sqlizer, what string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// AssignmentsByMonth implements stats.StatsRepository.
func (r *statsRepositoryImpl) AssignmentsByMonth(ctx context.Context) ([]stats.MonthCount, error) {
	builder := psql.Select("TO_CHAR(assign_date, 'YYYY-MM') AS month", "COUNT(*)").
		From("worker_assignments").
		GroupBy("month").
		OrderBy("month ASC")

	return collect(ctx, GetQuerier(ctx, r.db), builder, "assignments by month", func(rows pgx.Rows) (stats.MonthCount, error) {
		var m stats.MonthCount
		err := rows.Scan(&m.Month, &m.Count)
		return m, err
	})
}

// AttendanceByMonth implements stats.StatsRepository.
func (r *statsRepositoryImpl) AttendanceByMonth(ctx context.Context) ([]stats.AttendanceMonth, error) {
	builder := psql.Select(
		"TO_CHAR(attendance_date, 'YYYY-MM') AS month",
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'present')",
		"COUNT(*) FILTER (WHERE status = 'absent')",
		"COUNT(*) FILTER (WHERE status = 'leave')",
	).
		From("attendance").
		GroupBy("month").
		OrderBy("month ASC")

	return collect(ctx, GetQuerier(ctx, r.db), builder, "attendance by month", func(rows pgx.Rows) (stats.AttendanceMonth, error) {
		var m stats.AttendanceMonth
		err := rows.Scan(&m.Month, &m.Count, &m.PresentCount, &m.AbsentCount, &m.LeaveCount)
		return m, err
	})
}

// WorkersByDepartment implements stats.StatsRepository.
func (r *statsRepositoryImpl) WorkersByDepartment(ctx context.Context) ([]stats.DepartmentCount, error) {
	builder := psql.Select().
		Column(sq.Expr("COALESCE(d.name, ?) AS department_name", stats.SentinelUnassigned)).
		Column("COUNT(w.id) AS count").
		From("workers w").
		LeftJoin("departments d ON d.id = w.department_id").
		GroupBy("department_name").
		OrderBy("count DESC", "department_name ASC")

	return collect(ctx, GetQuerier(ctx, r.db), builder, "workers by department", func(rows pgx.Rows) (stats.DepartmentCount, error) {
		var d stats.DepartmentCount
		err := rows.Scan(&d.DepartmentName, &d.Count)
		return d, err
	})
}

// WorkersByStatus implements stats.StatsRepository.
func (r *statsRepositoryImpl) WorkersByStatus(ctx context.Context) ([]stats.StatusCount, error) {
	builder := psql.Select("status", "COUNT(*) AS count").
		From("workers").
		GroupBy("status").
		OrderBy("count DESC", "status ASC")

	return collect(ctx, GetQuerier(ctx, r.db), builder, "workers by status", func(rows pgx.Rows) (stats.StatusCount, error) {
		var s stats.StatusCount
		err := rows.Scan(&s.Status, &s.Count)
		return s, err
	})
}

// WorkersByProject implements stats.StatsRepository. Only open assignments count.
func (r *statsRepositoryImpl) WorkersByProject(ctx context.Context, limit int) ([]stats.ProjectCount, error) {
	builder := psql.Select().
		Column(sq.Expr("COALESCE(p.name, ?) AS project_name", stats.SentinelUnassigned)).
		Column("COUNT(DISTINCT a.worker_id) AS worker_count").
		From("worker_assignments a").
		LeftJoin("projects p ON p.id = a.project_id").
		Where(sq.Eq{"a.end_date": nil}).
		GroupBy("project_name").
		OrderBy("worker_count DESC", "project_name ASC").
		Limit(uint64(limit))

	return collect(ctx, GetQuerier(ctx, r.db), builder, "workers by project", func(rows pgx.Rows) (stats.ProjectCount, error) {
		var p stats.ProjectCount
		err := rows.Scan(&p.ProjectName, &p.WorkerCount)
		return p, err
	})
}

// TopWorkers implements stats.StatsRepository. Workers without a present record are left out.
func (r *statsRepositoryImpl) TopWorkers(ctx context.Context, limit int) ([]stats.TopWorker, error) {
	builder := psql.Select(
		"w.id", "w.code", "w.full_name", "w.position",
		"COUNT(a.id) AS attendance_count",
		"COALESCE(SUM(a.work_hours), 0) AS total_hours",
	).
		From("workers w").
		Join("attendance a ON a.worker_id = w.id").
		Where(sq.Eq{"a.status": "present"}).
		GroupBy("w.id", "w.code", "w.full_name", "w.position").
		OrderBy("attendance_count DESC", "total_hours DESC", "w.code ASC").
		Limit(uint64(limit))

	return collect(ctx, GetQuerier(ctx, r.db), builder, "top workers", func(rows pgx.Rows) (stats.TopWorker, error) {
		var t stats.TopWorker
		err := rows.Scan(&t.WorkerID, &t.Code, &t.FullName, &t.Position, &t.AttendanceCount, &t.TotalHours)
		return t, err
	})
}

// AttendanceStatusCounts implements stats.StatsRepository.
func (r *statsRepositoryImpl) AttendanceStatusCounts(ctx context.Context) ([]stats.StatusCount, error) {
	builder := psql.Select("status", "COUNT(*) AS count").
		From("attendance").
		GroupBy("status").
		OrderBy("count DESC", "status ASC")

	return collect(ctx, GetQuerier(ctx, r.db), builder, "attendance status counts", func(rows pgx.Rows) (stats.StatusCount, error) {
		var s stats.StatusCount
		err := rows.Scan(&s.Status, &s.Count)
		return s, err
	})
}

// WorkHoursByMonth implements stats.StatsRepository.
func (r *statsRepositoryImpl) WorkHoursByMonth(ctx context.Context) ([]stats.WorkHoursMonthStats, error) {
	builder := psql.Select(
		"TO_CHAR(attendance_date, 'YYYY-MM') AS month",
		"COUNT(*)",
		"COUNT(work_hours)",
		"COALESCE(SUM(work_hours), 0)",
	).
		From("attendance").
		Where(sq.Eq{"status": "present"}).
		GroupBy("month").
		OrderBy("month ASC")

	return collect(ctx, GetQuerier(ctx, r.db), builder, "work hours by month", func(rows pgx.Rows) (stats.WorkHoursMonthStats, error) {
		var m stats.WorkHoursMonthStats
		err := rows.Scan(&m.Month, &m.RecordCount, &m.HoursCount, &m.TotalHours)
		return m, err
	})
}

// Totals implements stats.StatsRepository.
func (r *statsRepositoryImpl) Totals(ctx context.Context) (stats.Totals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM workers),
			(SELECT COUNT(*) FROM worker_assignments WHERE end_date IS NULL),
			(SELECT COUNT(*) FROM attendance)
	`

	var t stats.Totals
	err := q.QueryRow(ctx, query).Scan(
		&t.Projects, &t.Departments, &t.Workers, &t.ActiveAssignments, &t.AttendanceRecords,
	)
	if err != nil {
		return stats.Totals{}, fmt.Errorf("failed to get totals: %w", err)
	}
	return t, nil
}
