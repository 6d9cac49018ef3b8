package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
)

const departmentColumns = `id, name, code, manager, phone, description, created_at, updated_at`

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func scanDepartment(row rowScanner, extra ...any) (department.Department, error) {
	var d department.Department
	dest := []any{
		&d.ID,
		&d.Name,
		&d.Code,
		&d.Manager,
		&d.Phone,
		&d.Description,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return d, err
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, code, manager, phone, description)
		VALUES (COALESCE($1::uuid, gen_random_uuid()), $2, $3, $4, $5, $6)
		RETURNING ` + departmentColumns

	created, err := scanDepartment(q.QueryRow(ctx, query, presetID(d.ID), d.Name, d.Code, d.Manager, d.Phone, d.Description))
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`

	d, err := scanDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query, args, err := psql.Select(
		"d.id", "d.name", "d.code", "d.manager", "d.phone", "d.description", "d.created_at", "d.updated_at",
		"COUNT(w.id) AS worker_count",
	).
		From("departments d").
		LeftJoin("workers w ON w.department_id = d.id").
		GroupBy("d.id").
		OrderBy("d.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := []department.Department{}
	for rows.Next() {
		var workerCount int64
		d, err := scanDepartment(rows, &workerCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		d.WorkerCount = workerCount
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	builder := psql.Update("departments").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": req.ID})

	if req.Name != nil {
		builder = builder.Set("name", strings.TrimSpace(*req.Name))
	}
	if req.Code != nil {
		builder = builder.Set("code", utils.TrimPtr(req.Code))
	}
	if req.Manager != nil {
		builder = builder.Set("manager", utils.NullIfEmpty(*req.Manager))
	}
	if req.Phone != nil {
		builder = builder.Set("phone", utils.NullIfEmpty(*req.Phone))
	}
	if req.Description != nil {
		builder = builder.Set("description", utils.NullIfEmpty(*req.Description))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build department update query: %w", err)
	}

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository. Workers of the department keep
// existing with a null department_id.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
