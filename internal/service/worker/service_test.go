package worker

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workerID = "5d2f4b1a-9c8e-4f7d-b6a5-1e2d3c4b5a69"

type fakeWorkerRepo struct {
	worker.WorkerRepository
	stored   map[string]worker.Worker
	createFn func(ctx context.Context, w worker.Worker) (worker.Worker, error)
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{stored: map[string]worker.Worker{}}
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	if f.createFn != nil {
		return f.createFn(ctx, w)
	}
	for _, existing := range f.stored {
		if existing.Code == w.Code {
			return worker.Worker{}, &pgconn.PgError{Code: "23505"}
		}
	}
	w.ID = workerID
	f.stored[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	w, ok := f.stored[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) List(context.Context, worker.WorkerFilter) ([]worker.Worker, error) {
	workers := []worker.Worker{}
	for _, w := range f.stored {
		workers = append(workers, w)
	}
	return workers, nil
}

func strPtr(s string) *string { return &s }

func TestWorkerService_CreateThenGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkerService(newFakeWorkerRepo())

	salary := decimal.RequireFromString("7500000.50")
	created, err := svc.Create(ctx, worker.CreateWorkerRequest{
		Code:        "NC001",
		FullName:    "A",
		Phone:       strPtr("+62 812-3456-7890"),
		DateOfBirth: strPtr("1990-05-17"),
		Salary:      &salary,
	})
	require.NoError(t, err)
	assert.Equal(t, worker.StatusActive, created.Status)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	require.NotNil(t, fetched.DateOfBirth)
	assert.Equal(t, "1990-05-17", *fetched.DateOfBirth)
	assert.True(t, salary.Equal(*fetched.Salary))
}

func TestWorkerService_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkerService(newFakeWorkerRepo())

	_, err := svc.Create(ctx, worker.CreateWorkerRequest{Code: "NC001", FullName: "A"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, worker.CreateWorkerRequest{Code: "NC001", FullName: "B"})
	assert.ErrorIs(t, err, worker.ErrWorkerCodeExists)
}

func TestWorkerService_Create_UnknownDepartment(t *testing.T) {
	repo := newFakeWorkerRepo()
	repo.createFn = func(context.Context, worker.Worker) (worker.Worker, error) {
		return worker.Worker{}, &pgconn.PgError{Code: "23503"}
	}
	svc := NewWorkerService(repo)

	_, err := svc.Create(context.Background(), worker.CreateWorkerRequest{
		Code:         "NC002",
		FullName:     "B",
		DepartmentID: strPtr("9a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"),
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestWorkerService_Create_Validation(t *testing.T) {
	svc := NewWorkerService(newFakeWorkerRepo())

	negative := decimal.NewFromInt(-1)
	_, err := svc.Create(context.Background(), worker.CreateWorkerRequest{
		FullName: "A",
		Status:   strPtr("fired"),
		Salary:   &negative,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "code")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "salary")
}

func TestWorkerService_List_RejectsBadFilter(t *testing.T) {
	svc := NewWorkerService(newFakeWorkerRepo())

	_, err := svc.List(context.Background(), worker.WorkerFilter{Status: "retired"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestWorkerService_GetByID_Missing(t *testing.T) {
	svc := NewWorkerService(newFakeWorkerRepo())

	_, err := svc.GetByID(context.Background(), workerID)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}
