package department

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/department"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const departmentID = "0b8e7a8c-2f7e-4a53-8d0c-5e6f7a8b9c0d"

type fakeDepartmentRepo struct {
	department.DepartmentRepository
	createFn  func(ctx context.Context, d department.Department) (department.Department, error)
	getByIDFn func(ctx context.Context, id string) (department.Department, error)
	listFn    func(ctx context.Context) ([]department.Department, error)
	updateFn  func(ctx context.Context, req department.UpdateDepartmentRequest) error
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, d department.Department) (department.Department, error) {
	return f.createFn(ctx, d)
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	return f.listFn(ctx)
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	return f.updateFn(ctx, req)
}

func strPtr(s string) *string { return &s }

func TestDepartmentService_Create_DuplicateCode(t *testing.T) {
	repo := &fakeDepartmentRepo{
		createFn: func(context.Context, department.Department) (department.Department, error) {
			return department.Department{}, &pgconn.PgError{Code: "23505", ConstraintName: "departments_code_key"}
		},
	}
	svc := NewDepartmentService(repo)

	_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{Name: "Civil", Code: strPtr("CIV")})
	assert.ErrorIs(t, err, department.ErrDepartmentCodeExists)
}

func TestDepartmentService_Create_BlankCodeStoredAsNull(t *testing.T) {
	var stored department.Department
	repo := &fakeDepartmentRepo{
		createFn: func(_ context.Context, d department.Department) (department.Department, error) {
			stored = d
			d.ID = departmentID
			return d, nil
		},
	}
	svc := NewDepartmentService(repo)

	_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{Name: "Civil", Code: strPtr("  ")})
	require.NoError(t, err)
	assert.Nil(t, stored.Code)
}

func TestDepartmentService_List_IncludesWorkerCount(t *testing.T) {
	repo := &fakeDepartmentRepo{
		listFn: func(context.Context) ([]department.Department, error) {
			return []department.Department{
				{ID: departmentID, Name: "Civil", WorkerCount: 4},
				{ID: "d2", Name: "Electrical"},
			}, nil
		},
	}
	svc := NewDepartmentService(repo)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 2)
	require.NotNil(t, resp[0].WorkerCount)
	assert.Equal(t, int64(4), *resp[0].WorkerCount)
	require.NotNil(t, resp[1].WorkerCount)
	assert.Equal(t, int64(0), *resp[1].WorkerCount)
}

func TestDepartmentService_Update(t *testing.T) {
	t.Run("not found from store", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			updateFn: func(context.Context, department.UpdateDepartmentRequest) error {
				return department.ErrDepartmentNotFound
			},
		}
		svc := NewDepartmentService(repo)

		_, err := svc.Update(context.Background(), department.UpdateDepartmentRequest{ID: departmentID, Name: strPtr("X")})
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := NewDepartmentService(&fakeDepartmentRepo{})

		_, err := svc.Update(context.Background(), department.UpdateDepartmentRequest{ID: "12"})
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})
}
