package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/assignment"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestSecret = "test-secret-key-for-jwt"

// Fakes embed the service interface; calling a method a test did not stub panics.

type fakeWorkerService struct {
	worker.WorkerService
	createErr error
	deleted   []string
}

func (f *fakeWorkerService) Create(_ context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if f.createErr != nil {
		return worker.WorkerResponse{}, f.createErr
	}
	return worker.WorkerResponse{ID: "w-1", Code: req.Code, FullName: req.FullName, Status: worker.StatusActive}, nil
}

func (f *fakeWorkerService) List(_ context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, error) {
	return []worker.WorkerResponse{{ID: "w-1", Code: "NC001", FullName: filter.Search}}, nil
}

func (f *fakeWorkerService) Delete(_ context.Context, id string) error {
	if id == "missing" {
		return worker.ErrWorkerNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAttendanceService struct {
	attendance.AttendanceService
	lastFilter attendance.AttendanceFilter
}

func (f *fakeAttendanceService) RecordAttendance(_ context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	hours := decimal.RequireFromString("9.00")
	return attendance.AttendanceResponse{
		ID:             "a-1",
		WorkerID:       req.WorkerID,
		AttendanceDate: *req.AttendanceDate,
		CheckInTime:    req.CheckInTime,
		CheckOutTime:   req.CheckOutTime,
		WorkHours:      &hours,
		Status:         attendance.StatusPresent,
	}, nil
}

func (f *fakeAttendanceService) List(_ context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	f.lastFilter = filter
	return attendance.ListAttendanceResponse{
		TotalCount:  205,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  3,
		Attendances: []attendance.AttendanceResponse{{ID: "a-1"}},
	}, nil
}

func (f *fakeAttendanceService) DeleteAttendance(_ context.Context, _ string) error {
	return attendance.ErrAttendanceNotFound
}

type fakeAssignmentService struct {
	assignment.AssignmentService
	lastFilter assignment.AssignmentFilter
}

func (f *fakeAssignmentService) List(_ context.Context, filter assignment.AssignmentFilter) ([]assignment.AssignmentResponse, error) {
	f.lastFilter = filter
	return []assignment.AssignmentResponse{}, nil
}

type fakeStatsService struct {
	stats.StatsService
}

func (fakeStatsService) AttendanceRate(context.Context) ([]stats.AttendanceRate, error) {
	return []stats.AttendanceRate{
		{Status: "present", Count: 9, Percentage: decimal.RequireFromString("90.00")},
		{Status: "absent", Count: 1, Percentage: decimal.RequireFromString("10.00")},
	}, nil
}

func (fakeStatsService) Export(context.Context) ([]byte, error) {
	return []byte("PK-fake-workbook"), nil
}

type fakeAuthService struct {
	auth.AuthService
	loggedOut []string
}

func (f *fakeAuthService) Login(_ context.Context, req auth.LoginRequest, _ auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if req.Password != "password123" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	return auth.TokenResponse{
		AccessToken:           "access",
		RefreshToken:          "refresh-value",
		RefreshTokenExpiresIn: time.Now().Add(time.Hour).Unix(),
		User:                  user.UserResponse{ID: "u-1", Email: req.Email},
	}, nil
}

func (f *fakeAuthService) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuthService) Me(_ context.Context, userID string) (user.UserResponse, error) {
	return user.UserResponse{ID: userID, Email: "admin@example.com"}, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type routerFixture struct {
	router     *chi.Mux
	jwt        jwt.Service
	workers    *fakeWorkerService
	attendance *fakeAttendanceService
	assignment *fakeAssignmentService
	auth       *fakeAuthService
}

func newRouterFixture(t *testing.T, pingErr error) *routerFixture {
	t.Helper()
	f := &routerFixture{
		jwt:        jwt.NewJWTService(routerTestSecret, "1h", "24h", false),
		workers:    &fakeWorkerService{},
		attendance: &fakeAttendanceService{},
		assignment: &fakeAssignmentService{},
		auth:       &fakeAuthService{},
	}
	statsHandler := NewStatsHandler(fakeStatsService{}).(*statsHandlerImpl)
	statsHandler.now = func() time.Time { return time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC) }

	f.router = NewRouter(RouterOptions{AllowedOrigins: []string{"http://localhost:3000"}}, f.jwt, Handlers{
		Auth:       NewAuthHandler(f.jwt, f.auth),
		Project:    NewProjectHandler(nil),
		Department: NewDepartmentHandler(nil),
		Worker:     NewWorkerHandler(f.workers),
		Assignment: NewAssignmentHandler(f.assignment),
		Attendance: NewAttendanceHandler(f.attendance),
		Stats:      statsHandler,
		Health:     NewHealthHandler(fakePinger{err: pingErr}),
	})
	return f
}

func (f *routerFixture) token(t *testing.T, role user.Role) string {
	t.Helper()
	token, _, err := f.jwt.GenerateAccessToken("u-1", "admin@example.com", string(role))
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestRouter_AuthGate(t *testing.T) {
	f := newRouterFixture(t, nil)

	t.Run("missing token", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/workers", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, _, err := f.jwt.GenerateRefreshToken("u-1")
		require.NoError(t, err)
		w := f.do(t, http.MethodGet, "/api/v1/workers", refresh, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/stats/attendance-rate", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("access token passes", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/workers?search=A", f.token(t, user.RoleSupervisor), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_DeleteRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t, nil)

	w := f.do(t, http.MethodDelete, "/api/v1/workers/w-1", f.token(t, user.RoleSupervisor), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, f.workers.deleted)

	w = f.do(t, http.MethodDelete, "/api/v1/workers/w-1", f.token(t, user.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Worker deleted successfully", decodeBody(t, w)["message"])
	assert.Equal(t, []string{"w-1"}, f.workers.deleted)

	w = f.do(t, http.MethodDelete, "/api/v1/workers/missing", f.token(t, user.RoleAdmin), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ErrorMapping(t *testing.T) {
	f := newRouterFixture(t, nil)
	token := f.token(t, user.RoleAdmin)

	t.Run("conflict", func(t *testing.T) {
		f.workers.createErr = worker.ErrWorkerCodeExists
		defer func() { f.workers.createErr = nil }()

		w := f.do(t, http.MethodPost, "/api/v1/workers", token, map[string]string{"code": "NC001", "full_name": "A"})
		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeBody(t, w)
		assert.False(t, resp["success"].(bool))
		assert.Equal(t, "CONFLICT", resp["error"].(map[string]interface{})["code"])
	})

	t.Run("validation", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add("code", "code is required")
		f.workers.createErr = errs
		defer func() { f.workers.createErr = nil }()

		w := f.do(t, http.MethodPost, "/api/v1/workers", token, map[string]string{})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		details := decodeBody(t, w)["error"].(map[string]interface{})["details"].(map[string]interface{})
		assert.Equal(t, "code is required", details["code"])
	})

	t.Run("unknown reference", func(t *testing.T) {
		f.workers.createErr = department.ErrDepartmentNotFound
		defer func() { f.workers.createErr = nil }()

		w := f.do(t, http.MethodPost, "/api/v1/workers", token, map[string]string{"code": "NC001", "full_name": "A"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("storage failure does not leak", func(t *testing.T) {
		f.workers.createErr = errors.New("failed to create worker: connection refused")
		defer func() { f.workers.createErr = nil }()

		w := f.do(t, http.MethodPost, "/api/v1/workers", token, map[string]string{"code": "NC001", "full_name": "A"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/workers", token, "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete missing attendance", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := f.do(t, http.MethodDelete, "/api/v1/attendance/a-404", token, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
		}
	})
}

func TestRouter_Attendance(t *testing.T) {
	f := newRouterFixture(t, nil)
	token := f.token(t, user.RoleSupervisor)

	t.Run("record returns hours as a number", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/attendance", token, map[string]string{
			"worker_id":       "w-1",
			"attendance_date": "2024-01-15",
			"check_in_time":   "08:00:00",
			"check_out_time":  "17:00:00",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, 9.0, data["work_hours"])
		assert.Equal(t, "08:00:00", data["check_in_time"])
	})

	t.Run("list carries pagination meta", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/attendance?page=2&limit=100&status=present", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		meta := decodeBody(t, w)["meta"].(map[string]interface{})
		assert.Equal(t, 2.0, meta["page"])
		assert.Equal(t, 205.0, meta["total_items"])
		assert.Equal(t, 3.0, meta["total_pages"])
		assert.Equal(t, "present", f.attendance.lastFilter.Status)
	})

	t.Run("non numeric page", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/attendance?page=two", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_AssignmentActiveFilter(t *testing.T) {
	f := newRouterFixture(t, nil)
	token := f.token(t, user.RoleSupervisor)

	w := f.do(t, http.MethodGet, "/api/v1/assignments?active=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, f.assignment.lastFilter.Active)
	assert.True(t, *f.assignment.lastFilter.Active)

	w = f.do(t, http.MethodGet, "/api/v1/assignments?active=maybe", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Stats(t *testing.T) {
	f := newRouterFixture(t, nil)
	token := f.token(t, user.RoleSupervisor)

	t.Run("attendance rate", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/stats/attendance-rate", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		rows := decodeBody(t, w)["data"].([]interface{})
		require.Len(t, rows, 2)
		assert.Equal(t, 90.0, rows[0].(map[string]interface{})["percentage"])
	})

	t.Run("export", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/stats/export", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=workforce-stats-20240201.xlsx", w.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK-fake-workbook", w.Body.String())
	})
}

func TestRouter_Auth(t *testing.T) {
	f := newRouterFixture(t, nil)

	t.Run("login sets refresh cookie", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{Email: "admin@example.com", Password: "password123"})
		require.Equal(t, http.StatusCreated, w.Code)

		var cookie *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == jwt.RefreshCookieName {
				cookie = c
			}
		}
		require.NotNil(t, cookie)
		assert.Equal(t, "refresh-value", cookie.Value)
		assert.True(t, cookie.HttpOnly)

		// the refresh token travels only in the cookie
		assert.NotContains(t, w.Body.String(), "refresh-value")
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{Email: "admin@example.com", Password: "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout without cookie", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: jwt.RefreshCookieName, Value: "refresh-value"})
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"refresh-value"}, f.auth.loggedOut)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("me", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/auth/me", f.token(t, user.RoleAdmin), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u-1", decodeBody(t, w)["data"].(map[string]interface{})["id"])

		w = f.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRouter_Operational(t *testing.T) {
	w := newRouterFixture(t, nil).do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = newRouterFixture(t, errors.New("down")).do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = newRouterFixture(t, nil).do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
