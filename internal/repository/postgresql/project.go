package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `id, name, location, start_date, end_date, status, description, created_at, updated_at`

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Location,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, location, start_date, end_date, status, description)
		VALUES (COALESCE($1::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7)
		RETURNING ` + projectColumns

	created, err := scanProject(q.QueryRow(ctx, query,
		presetID(p.ID),
		p.Name,
		p.Location,
		p.StartDate,
		p.EndDate,
		p.Status,
		p.Description,
	))
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	builder := psql.Select(projectColumns).
		From("projects").
		OrderBy("start_date DESC NULLS LAST", "name ASC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	builder := psql.Update("projects").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": req.ID})

	if req.Name != nil {
		builder = builder.Set("name", strings.TrimSpace(*req.Name))
	}
	if req.Location != nil {
		builder = builder.Set("location", utils.NullIfEmpty(*req.Location))
	}
	if req.StartDate != nil {
		startDate, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start_date: %w", err)
		}
		builder = builder.Set("start_date", startDate)
	}
	if req.EndDate != nil {
		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end_date: %w", err)
		}
		builder = builder.Set("end_date", endDate)
	}
	if req.Status != nil {
		builder = builder.Set("status", strings.TrimSpace(*req.Status))
	}
	if req.Description != nil {
		builder = builder.Set("description", utils.NullIfEmpty(*req.Description))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build project update query: %w", err)
	}

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}
