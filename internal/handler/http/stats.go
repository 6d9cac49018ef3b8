package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/stats"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type StatsHandler interface {
	AssignmentsByMonth(w http.ResponseWriter, r *http.Request)
	AttendanceByMonth(w http.ResponseWriter, r *http.Request)
	WorkersByDepartment(w http.ResponseWriter, r *http.Request)
	WorkersByStatus(w http.ResponseWriter, r *http.Request)
	WorkersByProject(w http.ResponseWriter, r *http.Request)
	TopWorkers(w http.ResponseWriter, r *http.Request)
	AttendanceRate(w http.ResponseWriter, r *http.Request)
	WorkHoursByMonth(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
	now          func() time.Time
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{statsService: statsService, now: time.Now}
}

func writeView[T any](w http.ResponseWriter, r *http.Request, view string, load func(context.Context) (T, error)) {
	result, err := load(r.Context())
	if err != nil {
		slog.Error("Stats service error", "view", view, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *statsHandlerImpl) AssignmentsByMonth(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "assignments-by-month", h.statsService.AssignmentsByMonth)
}

func (h *statsHandlerImpl) AttendanceByMonth(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "attendance-by-month", h.statsService.AttendanceByMonth)
}

func (h *statsHandlerImpl) WorkersByDepartment(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "workers-by-department", h.statsService.WorkersByDepartment)
}

func (h *statsHandlerImpl) WorkersByStatus(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "workers-by-status", h.statsService.WorkersByStatus)
}

func (h *statsHandlerImpl) WorkersByProject(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "workers-by-project", h.statsService.WorkersByProject)
}

func (h *statsHandlerImpl) TopWorkers(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "top-workers", h.statsService.TopWorkers)
}

func (h *statsHandlerImpl) AttendanceRate(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "attendance-rate", h.statsService.AttendanceRate)
}

func (h *statsHandlerImpl) WorkHoursByMonth(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "work-hours-by-month", h.statsService.WorkHoursByMonth)
}

// Overview returns every view plus entity totals in one payload.
func (h *statsHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	writeView(w, r, "overview", h.statsService.Overview)
}

// Export streams the dashboard as an XLSX workbook.
func (h *statsHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.statsService.Export(r.Context())
	if err != nil {
		slog.Error("Stats export error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := "workforce-stats-" + h.now().Format("20060102") + ".xlsx"
	response.File(w, xlsxContentType, filename, data)
}
