package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/assignment"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
)

const resetQuery = `TRUNCATE TABLE attendance, worker_assignments, workers, departments, projects`

// Loader writes a Dataset through the regular repositories.
type Loader struct {
	tx          postgresql.Transactor
	projects    project.ProjectRepository
	departments department.DepartmentRepository
	workers     worker.WorkerRepository
	assignments assignment.AssignmentRepository
	attendance  attendance.AttendanceRepository
	reset       func(ctx context.Context) error
}

func NewLoader(db *database.DB) *Loader {
	return &Loader{
		tx:          postgresql.NewTransactor(db),
		projects:    postgresql.NewProjectRepository(db),
		departments: postgresql.NewDepartmentRepository(db),
		workers:     postgresql.NewWorkerRepository(db),
		assignments: postgresql.NewAssignmentRepository(db),
		attendance:  postgresql.NewAttendanceRepository(db),
		reset: func(ctx context.Context) error {
			_, err := postgresql.GetQuerier(ctx, db).Exec(ctx, resetQuery)
			return err
		},
	}
}

// Load inserts ds in a single transaction. With reset the workforce tables are
// emptied first; users and refresh tokens are left alone.
func Load(ctx context.Context, db *database.DB, ds Dataset, reset bool) error {
	return NewLoader(db).Load(ctx, ds, reset)
}

func (l *Loader) Load(ctx context.Context, ds Dataset, reset bool) error {
	return l.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if reset {
			if err := l.reset(txCtx); err != nil {
				return fmt.Errorf("failed to reset workforce tables: %w", err)
			}
			slog.Info("Workforce tables cleared")
		}

		for _, p := range ds.Projects {
			if _, err := l.projects.Create(txCtx, p); err != nil {
				return fmt.Errorf("project %q: %w", p.Name, err)
			}
		}
		for _, d := range ds.Departments {
			if _, err := l.departments.Create(txCtx, d); err != nil {
				return fmt.Errorf("department %q: %w", d.Name, err)
			}
		}
		for _, w := range ds.Workers {
			if _, err := l.workers.Create(txCtx, w); err != nil {
				return fmt.Errorf("worker %s: %w", w.Code, err)
			}
		}
		for _, a := range ds.Assignments {
			if _, err := l.assignments.Create(txCtx, a); err != nil {
				return fmt.Errorf("assignment %s: %w", a.ID, err)
			}
		}
		for _, a := range ds.Attendance {
			if _, err := l.attendance.Create(txCtx, a); err != nil {
				return fmt.Errorf("attendance %s on %s: %w", a.WorkerID, a.AttendanceDate.Format("2006-01-02"), err)
			}
		}

		slog.Info("Fixtures loaded", "summary", ds.String())
		return nil
	})
}
