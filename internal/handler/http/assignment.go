package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/assignment"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &assignmentHandlerImpl{assignmentService: assignmentService}
}

// Create implements AssignmentHandler.
func (h *assignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assignmentService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Assignment created successfully", result)
}

// Get implements AssignmentHandler.
func (h *assignmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.assignmentService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements AssignmentHandler.
func (h *assignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := assignment.AssignmentFilter{
		WorkerID:  query.Get("worker_id"),
		ProjectID: query.Get("project_id"),
	}

	if raw := query.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "Invalid query parameter", map[string]string{"active": "active must be true or false"})
			return
		}
		filter.Active = &active
	}

	results, err := h.assignmentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// Update implements AssignmentHandler.
func (h *assignmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req assignment.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.assignmentService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment updated successfully", result)
}

// Delete implements AssignmentHandler.
func (h *assignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assignmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment deleted successfully", nil)
}
