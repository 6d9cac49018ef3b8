package postgresql

import (
	"testing"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceConditions(t *testing.T) {
	t.Run("no filter matches everything", func(t *testing.T) {
		query, args, err := psql.Select("COUNT(*)").From("attendance a").Where(attendanceConditions(attendance.AttendanceFilter{})).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM attendance a WHERE (1=1)", query)
		assert.Empty(t, args)
	})

	t.Run("every filter numbers its placeholders in order", func(t *testing.T) {
		filter := attendance.AttendanceFilter{
			WorkerID:  "w-1",
			ProjectID: "p-1",
			Status:    attendance.StatusPresent,
			DateFrom:  "2024-01-01",
			DateTo:    "2024-01-31",
		}

		query, args, err := selectAttendance().
			Where(attendanceConditions(filter)).
			Limit(50).
			Offset(100).
			ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "a.worker_id = $1")
		assert.Contains(t, query, "a.project_id = $2")
		assert.Contains(t, query, "a.status = $3")
		assert.Contains(t, query, "a.attendance_date >= $4::date")
		assert.Contains(t, query, "a.attendance_date <= $5::date")
		assert.Contains(t, query, "LIMIT 50 OFFSET 100")
		assert.Equal(t, []interface{}{"w-1", "p-1", "present", "2024-01-01", "2024-01-31"}, args)
	})

	t.Run("partial filter skips unset fields", func(t *testing.T) {
		query, args, err := psql.Select("COUNT(*)").
			From("attendance a").
			Where(attendanceConditions(attendance.AttendanceFilter{Status: attendance.StatusLeave, DateTo: "2024-02-01"})).
			ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM attendance a WHERE (a.status = $1 AND a.attendance_date <= $2::date)", query)
		assert.Equal(t, []interface{}{"leave", "2024-02-01"}, args)
	})
}
