package postgresql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Times travel as text: to_char on the way out, ::time casts on the way in.
var attendanceColumns = []string{
	"a.id", "a.worker_id", "a.project_id", "a.attendance_date",
	"to_char(a.check_in_time, 'HH24:MI:SS')", "to_char(a.check_out_time, 'HH24:MI:SS')",
	"a.work_hours", "a.status", "a.notes", "a.created_by", "a.created_at", "a.updated_at",
	"w.code", "w.full_name", "p.name",
}

func selectAttendance() sq.SelectBuilder {
	return psql.Select(attendanceColumns...).
		From("attendance a").
		LeftJoin("workers w ON w.id = a.worker_id").
		LeftJoin("projects p ON p.id = a.project_id")
}

// attendanceConditions turns the filter into WHERE predicates shared by the page and count queries.
func attendanceConditions(filter attendance.AttendanceFilter) sq.And {
	conds := sq.And{}
	if filter.WorkerID != "" {
		conds = append(conds, sq.Eq{"a.worker_id": filter.WorkerID})
	}
	if filter.ProjectID != "" {
		conds = append(conds, sq.Eq{"a.project_id": filter.ProjectID})
	}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"a.status": filter.Status})
	}
	if filter.DateFrom != "" {
		conds = append(conds, sq.Expr("a.attendance_date >= ?::date", filter.DateFrom))
	}
	if filter.DateTo != "" {
		conds = append(conds, sq.Expr("a.attendance_date <= ?::date", filter.DateTo))
	}
	return conds
}

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row rowScanner) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.WorkerID, &att.ProjectID, &att.AttendanceDate,
		&att.CheckInTime, &att.CheckOutTime,
		&att.WorkHours, &att.Status, &att.Notes, &att.CreatedBy, &att.CreatedAt, &att.UpdatedAt,
		&att.WorkerCode, &att.WorkerName, &att.ProjectName,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (
			id, worker_id, project_id, attendance_date, check_in_time, check_out_time,
			work_hours, status, notes, created_by
		) VALUES (
			COALESCE($1::uuid, gen_random_uuid()), $2, $3, $4, $5::time, $6::time, $7, $8, $9, $10
		) RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		presetID(newAttendance.ID),
		newAttendance.WorkerID,
		newAttendance.ProjectID,
		newAttendance.AttendanceDate,
		newAttendance.CheckInTime,
		newAttendance.CheckOutTime,
		newAttendance.WorkHours,
		newAttendance.Status,
		newAttendance.Notes,
		newAttendance.CreatedBy,
	).Scan(&id)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query, args, err := selectAttendance().Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to build attendance query: %w", err)
	}

	att, err := scanAttendance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conds := attendanceConditions(filter)

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("attendance a").Where(conds).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build attendance count query: %w", err)
	}

	var total int64
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = attendance.DefaultListLimit
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	query, args, err := selectAttendance().
		Where(conds).
		OrderBy("a.attendance_date DESC", "a.check_in_time DESC NULLS LAST", "a.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build attendance list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	attendances := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return attendances, total, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance SET
			worker_id = $2,
			project_id = $3,
			attendance_date = $4,
			check_in_time = $5::time,
			check_out_time = $6::time,
			work_hours = $7,
			status = $8,
			notes = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		att.ID,
		att.WorkerID,
		att.ProjectID,
		att.AttendanceDate,
		att.CheckInTime,
		att.CheckOutTime,
		att.WorkHours,
		att.Status,
		att.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
