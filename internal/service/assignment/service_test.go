package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/assignment"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	workerID     = "5d2f4b1a-9c8e-4f7d-b6a5-1e2d3c4b5a69"
	projectID    = "6f1c1f0e-4b7a-4d0e-9a51-3c2b8f4d9e10"
	assignmentID = "7a3e5c2b-1d4f-4e6a-9b8c-0d1e2f3a4b5c"
)

type inlineTx struct{ calls int }

func (t *inlineTx) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fakeWorkerRepo struct {
	worker.WorkerRepository
	known map[string]bool
}

func (f fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	if !f.known[id] {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return worker.Worker{ID: id, Code: "NC001"}, nil
}

type fakeProjectRepo struct {
	project.ProjectRepository
	known map[string]bool
}

func (f fakeProjectRepo) GetByID(_ context.Context, id string) (project.Project, error) {
	if !f.known[id] {
		return project.Project{}, project.ErrProjectNotFound
	}
	return project.Project{ID: id, Name: "P1"}, nil
}

type fakeAssignmentRepo struct {
	assignment.AssignmentRepository
	stored  map[string]assignment.Assignment
	updates []assignment.UpdateAssignmentRequest
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	a.ID = assignmentID
	f.stored[a.ID] = a
	return a, nil
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, id string) (assignment.Assignment, error) {
	a, ok := f.stored[id]
	if !ok {
		return assignment.Assignment{}, assignment.ErrAssignmentNotFound
	}
	return a, nil
}

func (f *fakeAssignmentRepo) Update(_ context.Context, req assignment.UpdateAssignmentRequest) error {
	f.updates = append(f.updates, req)
	return nil
}

func newTestService() (*AssignmentServiceImpl, *fakeAssignmentRepo, *inlineTx) {
	repo := &fakeAssignmentRepo{stored: map[string]assignment.Assignment{}}
	tx := &inlineTx{}
	svc := NewAssignmentService(
		repo,
		fakeWorkerRepo{known: map[string]bool{workerID: true}},
		fakeProjectRepo{known: map[string]bool{projectID: true}},
		tx,
	).(*AssignmentServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC) }
	return svc, repo, tx
}

func strPtr(s string) *string { return &s }

func TestAssignmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults assign_date to today and is active", func(t *testing.T) {
		svc, _, tx := newTestService()

		resp, err := svc.Create(ctx, assignment.CreateAssignmentRequest{WorkerID: workerID, ProjectID: projectID})
		require.NoError(t, err)

		assert.Equal(t, "2024-06-10", resp.AssignDate)
		assert.Nil(t, resp.EndDate)
		assert.True(t, resp.Active)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("unknown worker", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create(ctx, assignment.CreateAssignmentRequest{
			WorkerID:  "1e2d3c4b-5a69-4f7d-b6a5-5d2f4b1a9c8e",
			ProjectID: projectID,
		})
		assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
	})

	t.Run("unknown project", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create(ctx, assignment.CreateAssignmentRequest{
			WorkerID:  workerID,
			ProjectID: "1e2d3c4b-5a69-4f7d-b6a5-5d2f4b1a9c8e",
		})
		assert.ErrorIs(t, err, project.ErrProjectNotFound)
	})

	t.Run("end date before defaulted assign date", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create(ctx, assignment.CreateAssignmentRequest{
			WorkerID:  workerID,
			ProjectID: projectID,
			EndDate:   strPtr("2024-06-01"),
		})

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "end_date")
	})
}

func TestAssignmentService_Update_ValidatesAgainstStoredDates(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	repo.stored[assignmentID] = assignment.Assignment{
		ID:         assignmentID,
		WorkerID:   workerID,
		ProjectID:  projectID,
		AssignDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := svc.Update(ctx, assignment.UpdateAssignmentRequest{ID: assignmentID, EndDate: strPtr("2024-04-30")})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, repo.updates)

	_, err = svc.Update(ctx, assignment.UpdateAssignmentRequest{ID: assignmentID, EndDate: strPtr("2024-05-31")})
	require.NoError(t, err)
	require.Len(t, repo.updates, 1)
}

func TestAssignmentService_Update_Missing(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), assignment.UpdateAssignmentRequest{ID: assignmentID, Notes: strPtr("x")})
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotFound)
}
