package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
)

var workerColumns = []string{
	"w.id", "w.code", "w.full_name", "w.id_card", "w.phone", "w.email", "w.address",
	"w.date_of_birth", "w.gender", "w.department_id", "w.position", "w.hire_date",
	"w.salary", "w.status", "w.notes", "w.created_at", "w.updated_at",
	"d.name AS department_name",
}

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

func scanWorker(row rowScanner) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID,
		&w.Code,
		&w.FullName,
		&w.IDCard,
		&w.Phone,
		&w.Email,
		&w.Address,
		&w.DateOfBirth,
		&w.Gender,
		&w.DepartmentID,
		&w.Position,
		&w.HireDate,
		&w.Salary,
		&w.Status,
		&w.Notes,
		&w.CreatedAt,
		&w.UpdatedAt,
		&w.DepartmentName,
	)
	return w, err
}

func selectWorkers() sq.SelectBuilder {
	return psql.Select(workerColumns...).
		From("workers w").
		LeftJoin("departments d ON d.id = w.department_id")
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			id, code, full_name, id_card, phone, email, address, date_of_birth, gender,
			department_id, position, hire_date, salary, status, notes
		)
		VALUES (COALESCE($1::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		presetID(w.ID),
		w.Code,
		w.FullName,
		w.IDCard,
		w.Phone,
		w.Email,
		w.Address,
		w.DateOfBirth,
		w.Gender,
		w.DepartmentID,
		w.Position,
		w.HireDate,
		w.Salary,
		w.Status,
		w.Notes,
	).Scan(&id)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query, args, err := selectWorkers().Where(sq.Eq{"w.id": id}).ToSql()
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to build worker query: %w", err)
	}

	w, err := scanWorker(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	builder := selectWorkers().OrderBy("COALESCE(w.code, w.full_name) ASC")

	if filter.DepartmentID != "" {
		builder = builder.Where(sq.Eq{"w.department_id": filter.DepartmentID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"w.status": filter.Status})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"w.code": pattern},
			sq.ILike{"w.full_name": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build worker list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := []worker.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	builder := psql.Update("workers").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": req.ID})

	if req.Code != nil {
		builder = builder.Set("code", strings.TrimSpace(*req.Code))
	}
	if req.FullName != nil {
		builder = builder.Set("full_name", strings.TrimSpace(*req.FullName))
	}

	nullable := []struct {
		column string
		value  *string
	}{
		{"id_card", req.IDCard},
		{"phone", req.Phone},
		{"email", req.Email},
		{"address", req.Address},
		{"gender", req.Gender},
		{"department_id", req.DepartmentID},
		{"position", req.Position},
		{"notes", req.Notes},
	}
	for _, field := range nullable {
		if field.value != nil {
			builder = builder.Set(field.column, utils.NullIfEmpty(*field.value))
		}
	}

	if req.DateOfBirth != nil {
		dob, err := utils.ParseDate(req.DateOfBirth)
		if err != nil {
			return fmt.Errorf("invalid date_of_birth: %w", err)
		}
		builder = builder.Set("date_of_birth", dob)
	}
	if req.HireDate != nil {
		hireDate, err := utils.ParseDate(req.HireDate)
		if err != nil {
			return fmt.Errorf("invalid hire_date: %w", err)
		}
		builder = builder.Set("hire_date", hireDate)
	}
	if req.Salary != nil {
		builder = builder.Set("salary", *req.Salary)
	}
	if req.Status != nil {
		builder = builder.Set("status", *req.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build worker update query: %w", err)
	}

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Delete implements worker.WorkerRepository. Assignments and attendance of the worker
// are removed by the cascading foreign keys.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
