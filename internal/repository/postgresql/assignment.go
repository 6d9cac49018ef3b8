package postgresql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/assignment"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
)

var assignmentColumns = []string{
	"a.id", "a.worker_id", "a.project_id", "a.assign_date", "a.end_date",
	"a.assigned_by", "a.notes", "a.created_at", "a.updated_at",
	"w.code", "w.full_name", "p.name",
}

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func scanAssignment(row rowScanner) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := row.Scan(
		&a.ID,
		&a.WorkerID,
		&a.ProjectID,
		&a.AssignDate,
		&a.EndDate,
		&a.AssignedBy,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.WorkerCode,
		&a.WorkerName,
		&a.ProjectName,
	)
	return a, err
}

func selectAssignments() sq.SelectBuilder {
	return psql.Select(assignmentColumns...).
		From("worker_assignments a").
		LeftJoin("workers w ON w.id = a.worker_id").
		LeftJoin("projects p ON p.id = a.project_id")
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worker_assignments (id, worker_id, project_id, assign_date, end_date, assigned_by, notes)
		VALUES (COALESCE($1::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		presetID(a.ID),
		a.WorkerID,
		a.ProjectID,
		a.AssignDate,
		a.EndDate,
		a.AssignedBy,
		a.Notes,
	).Scan(&id)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query, args, err := selectAssignments().Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to build assignment query: %w", err)
	}

	a, err := scanAssignment(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

// List implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	builder := selectAssignments().OrderBy("a.assign_date DESC", "a.created_at DESC")

	if filter.WorkerID != "" {
		builder = builder.Where(sq.Eq{"a.worker_id": filter.WorkerID})
	}
	if filter.ProjectID != "" {
		builder = builder.Where(sq.Eq{"a.project_id": filter.ProjectID})
	}
	if filter.Active != nil {
		if *filter.Active {
			builder = builder.Where(sq.Eq{"a.end_date": nil})
		} else {
			builder = builder.Where(sq.NotEq{"a.end_date": nil})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assignment list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	assignments := []assignment.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}

// Update implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	builder := psql.Update("worker_assignments").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": req.ID})

	if req.WorkerID != nil {
		builder = builder.Set("worker_id", *req.WorkerID)
	}
	if req.ProjectID != nil {
		builder = builder.Set("project_id", *req.ProjectID)
	}
	if req.AssignDate != nil {
		assignDate, err := utils.ParseDate(req.AssignDate)
		if err != nil {
			return fmt.Errorf("invalid assign_date: %w", err)
		}
		builder = builder.Set("assign_date", assignDate)
	}
	if req.EndDate != nil {
		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end_date: %w", err)
		}
		builder = builder.Set("end_date", endDate)
	}
	if req.AssignedBy != nil {
		builder = builder.Set("assigned_by", utils.NullIfEmpty(*req.AssignedBy))
	}
	if req.Notes != nil {
		builder = builder.Set("notes", utils.NullIfEmpty(*req.Notes))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assignment update query: %w", err)
	}

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// Delete implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM worker_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}
