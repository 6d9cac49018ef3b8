package stats

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/spreadsheet"
	"golang.org/x/sync/errgroup"
)

type StatsServiceImpl struct {
	stats.StatsRepository
}

func NewStatsService(repo stats.StatsRepository) stats.StatsService {
	return &StatsServiceImpl{
		StatsRepository: repo,
	}
}

// WorkersByProject implements stats.StatsService.
func (s *StatsServiceImpl) WorkersByProject(ctx context.Context) ([]stats.ProjectCount, error) {
	return s.StatsRepository.WorkersByProject(ctx, stats.TopN)
}

// TopWorkers implements stats.StatsService.
func (s *StatsServiceImpl) TopWorkers(ctx context.Context) ([]stats.TopWorker, error) {
	workers, err := s.StatsRepository.TopWorkers(ctx, stats.TopN)
	if err != nil {
		return nil, err
	}
	for i := range workers {
		workers[i].TotalHours = workers[i].TotalHours.Round(2)
	}
	return workers, nil
}

// AttendanceRate implements stats.StatsService.
func (s *StatsServiceImpl) AttendanceRate(ctx context.Context) ([]stats.AttendanceRate, error) {
	counts, err := s.StatsRepository.AttendanceStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	return stats.ComputeAttendanceRates(counts), nil
}

// WorkHoursByMonth implements stats.StatsService.
func (s *StatsServiceImpl) WorkHoursByMonth(ctx context.Context) ([]stats.WorkHoursMonth, error) {
	rows, err := s.StatsRepository.WorkHoursByMonth(ctx)
	if err != nil {
		return nil, err
	}
	return stats.ComputeWorkHours(rows), nil
}

// Overview returns every view plus the entity totals. The queries run in parallel
// and the first failure cancels the rest.
func (s *StatsServiceImpl) Overview(ctx context.Context) (stats.OverviewResponse, error) {
	var resp stats.OverviewResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		resp.Totals, err = s.StatsRepository.Totals(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resp.AssignmentsByMonth, err = s.StatsRepository.AssignmentsByMonth(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resp.AttendanceByMonth, err = s.StatsRepository.AttendanceByMonth(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resp.WorkersByDepartment, err = s.StatsRepository.WorkersByDepartment(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resp.WorkersByStatus, err = s.StatsRepository.WorkersByStatus(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resp.WorkersByProject, err = s.WorkersByProject(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resp.TopWorkers, err = s.TopWorkers(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resp.AttendanceRate, err = s.AttendanceRate(gCtx)
		return err
	})
	g.Go(func() (err error) {
		resp.WorkHoursByMonth, err = s.WorkHoursByMonth(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return stats.OverviewResponse{}, fmt.Errorf("failed to build overview: %w", err)
	}
	return resp, nil
}

// Export implements stats.StatsService.
func (s *StatsServiceImpl) Export(ctx context.Context) ([]byte, error) {
	overview, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return spreadsheet.Build(exportSheets(overview))
}

func exportSheets(o stats.OverviewResponse) []spreadsheet.Sheet {
	totals := spreadsheet.Sheet{
		Name:    "Totals",
		Headers: []string{"Entity", "Count"},
		Rows: [][]interface{}{
			{"projects", o.Totals.Projects},
			{"departments", o.Totals.Departments},
			{"workers", o.Totals.Workers},
			{"active assignments", o.Totals.ActiveAssignments},
			{"attendance records", o.Totals.AttendanceRecords},
		},
	}

	assignments := spreadsheet.Sheet{Name: "Assignments by month", Headers: []string{"Month", "Count"}}
	for _, m := range o.AssignmentsByMonth {
		assignments.Rows = append(assignments.Rows, []interface{}{m.Month, m.Count})
	}

	attendanceMonths := spreadsheet.Sheet{
		Name:    "Attendance by month",
		Headers: []string{"Month", "Count", "Present", "Absent", "Leave"},
	}
	for _, m := range o.AttendanceByMonth {
		attendanceMonths.Rows = append(attendanceMonths.Rows, []interface{}{m.Month, m.Count, m.PresentCount, m.AbsentCount, m.LeaveCount})
	}

	departments := spreadsheet.Sheet{Name: "Workers by department", Headers: []string{"Department", "Count"}}
	for _, d := range o.WorkersByDepartment {
		departments.Rows = append(departments.Rows, []interface{}{d.DepartmentName, d.Count})
	}

	statuses := spreadsheet.Sheet{Name: "Workers by status", Headers: []string{"Status", "Count"}}
	for _, st := range o.WorkersByStatus {
		statuses.Rows = append(statuses.Rows, []interface{}{st.Status, st.Count})
	}

	projects := spreadsheet.Sheet{Name: "Workers by project", Headers: []string{"Project", "Workers"}}
	for _, p := range o.WorkersByProject {
		projects.Rows = append(projects.Rows, []interface{}{p.ProjectName, p.WorkerCount})
	}

	top := spreadsheet.Sheet{
		Name:    "Top workers",
		Headers: []string{"Code", "Full name", "Position", "Attendance", "Total hours"},
	}
	for _, w := range o.TopWorkers {
		position := ""
		if w.Position != nil {
			position = *w.Position
		}
		top.Rows = append(top.Rows, []interface{}{w.Code, w.FullName, position, w.AttendanceCount, w.TotalHours.InexactFloat64()})
	}

	rates := spreadsheet.Sheet{Name: "Attendance rate", Headers: []string{"Status", "Count", "Percentage"}}
	for _, r := range o.AttendanceRate {
		rates.Rows = append(rates.Rows, []interface{}{r.Status, r.Count, r.Percentage.InexactFloat64()})
	}

	hours := spreadsheet.Sheet{
		Name:    "Work hours by month",
		Headers: []string{"Month", "Records", "Total hours", "Average hours"},
	}
	for _, h := range o.WorkHoursByMonth {
		hours.Rows = append(hours.Rows, []interface{}{h.Month, h.RecordCount, h.TotalHours.InexactFloat64(), h.AvgHours.InexactFloat64()})
	}

	return []spreadsheet.Sheet{totals, assignments, attendanceMonths, departments, statuses, projects, top, rates, hours}
}
