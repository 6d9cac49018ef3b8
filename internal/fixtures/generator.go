// Package fixtures produces reproducible synthetic workforce data for local
// development, demos and integration tests.
package fixtures

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/assignment"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultMonths = 2

	minWorkersPerDay = 5
	maxWorkersPerDay = 12
	presentRate      = 0.9
	createdBy        = "admin"
)

type Options struct {
	Seed int64
	// Reference is the last day that receives attendance. Zero means today (UTC),
	// which makes the output depend on the calendar.
	Reference time.Time
	// Months of attendance ending at Reference, counted in calendar months.
	Months int
}

type Dataset struct {
	Projects    []project.Project
	Departments []department.Department
	Workers     []worker.Worker
	Assignments []assignment.Assignment
	Attendance  []attendance.Attendance
}

func (d Dataset) String() string {
	return fmt.Sprintf("%d projects, %d departments, %d workers, %d assignments, %d attendance records",
		len(d.Projects), len(d.Departments), len(d.Workers), len(d.Assignments), len(d.Attendance))
}

type generator struct {
	src *rand.ChaCha8
	rng *rand.Rand
}

func newGenerator(seed int64) *generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	src := rand.NewChaCha8(key)
	return &generator{src: src, rng: rand.New(src)}
}

func (g *generator) id() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		// ChaCha8.Read never fails
		panic(err)
	}
	return id.String()
}

// Generate builds a Dataset. Identical options always produce an identical dataset.
func Generate(opts Options) Dataset {
	if opts.Months <= 0 {
		opts.Months = DefaultMonths
	}
	ref := opts.Reference
	if ref.IsZero() {
		ref = time.Now().UTC()
	}
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	g := newGenerator(opts.Seed)
	var ds Dataset

	projectIDs := make(map[string]string, len(projectCatalog))
	for _, s := range projectCatalog {
		p := project.Project{
			ID:          g.id(),
			Name:        s.name,
			Location:    strPtr(s.location),
			StartDate:   datePtr(s.startDate),
			EndDate:     datePtr(s.endDate),
			Status:      project.StatusActive,
			Description: strPtr(s.description),
		}
		projectIDs[p.Name] = p.ID
		ds.Projects = append(ds.Projects, p)
	}

	departmentIDs := make(map[string]string, len(departmentCatalog))
	for _, s := range departmentCatalog {
		d := department.Department{
			ID:          g.id(),
			Name:        s.name,
			Code:        strPtr(s.code),
			Manager:     strPtr(s.manager),
			Phone:       strPtr(s.phone),
			Description: strPtr(s.description),
		}
		departmentIDs[s.code] = d.ID
		ds.Departments = append(ds.Departments, d)
	}

	workerIDs := make(map[string]string, len(workerCatalog))
	for i, s := range workerCatalog {
		status := worker.StatusActive
		if s.onLeave {
			status = worker.StatusOnLeave
		}
		salary := decimal.NewFromInt(s.salary)
		w := worker.Worker{
			ID:           g.id(),
			Code:         s.code,
			FullName:     s.fullName,
			IDCard:       strPtr(fmt.Sprintf("0012345678%02d", 90+i)),
			Phone:        strPtr(fmt.Sprintf("09%08d", (i+1)*1111111)),
			Email:        strPtr(strings.ToLower(strings.ReplaceAll(s.fullName, " ", "")) + "@example.com"),
			DateOfBirth:  datePtr(s.dateOfBirth),
			Gender:       strPtr(s.gender),
			DepartmentID: strPtr(departmentIDs[s.department]),
			Position:     strPtr(s.position),
			HireDate:     datePtr(s.hireDate),
			Salary:       &salary,
			Status:       status,
			Notes:        strPtr(s.notes),
		}
		workerIDs[s.code] = w.ID
		ds.Workers = append(ds.Workers, w)
	}

	// first assignment wins when a worker's attendance needs a project
	workerProject := make(map[string]string)
	for _, s := range assignmentCatalog {
		a := assignment.Assignment{
			ID:         g.id(),
			WorkerID:   workerIDs[s.workerCode],
			ProjectID:  projectIDs[s.project],
			AssignDate: mustDate(s.assignDate),
			AssignedBy: strPtr(s.assignedBy),
			Notes:      strPtr(s.notes),
		}
		if _, ok := workerProject[a.WorkerID]; !ok {
			workerProject[a.WorkerID] = a.ProjectID
		}
		ds.Assignments = append(ds.Assignments, a)
	}

	start := time.Date(ref.Year(), ref.Month()-time.Month(opts.Months-1), 1, 0, 0, 0, 0, time.UTC)
	for day := start; !day.After(ref); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			continue
		}
		n := minWorkersPerDay + g.rng.IntN(maxWorkersPerDay-minWorkersPerDay+1)
		for _, w := range ds.Workers[:n] {
			ds.Attendance = append(ds.Attendance, g.attendance(day, w.ID, workerProject))
		}
	}

	return ds
}

func (g *generator) attendance(day time.Time, workerID string, workerProject map[string]string) attendance.Attendance {
	a := attendance.Attendance{
		ID:             g.id(),
		WorkerID:       workerID,
		AttendanceDate: day,
		Status:         attendance.StatusPresent,
		CreatedBy:      strPtr(createdBy),
	}
	if projectID, ok := workerProject[workerID]; ok {
		a.ProjectID = strPtr(projectID)
	}

	if g.rng.Float64() >= presentRate {
		if g.rng.IntN(2) == 0 {
			a.Status = attendance.StatusAbsent
			a.Notes = strPtr("Absent")
		} else {
			a.Status = attendance.StatusLeave
			a.Notes = strPtr("On leave")
		}
		return a
	}

	checkIn := clock(7+g.rng.IntN(2), g.rng.IntN(60))
	checkOut := clock(17+g.rng.IntN(2), g.rng.IntN(60))
	a.CheckInTime = &checkIn
	a.CheckOutTime = &checkOut
	if err := a.DeriveWorkHours(); err != nil {
		// check-in is always before 09:00 and check-out after 17:00
		panic(err)
	}
	return a
}

func clock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}

func strPtr(s string) *string { return &s }

func mustDate(s string) time.Time {
	t, err := time.Parse(validator.DateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("fixtures: bad catalog date %q", s))
	}
	return t
}

func datePtr(s string) *time.Time {
	t := mustDate(s)
	return &t
}
