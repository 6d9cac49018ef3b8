package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

type Handlers struct {
	Auth       AuthHandler
	Project    ProjectHandler
	Department DepartmentHandler
	Worker     WorkerHandler
	Assignment AssignmentHandler
	Attendance AttendanceHandler
	Stats      StatsHandler
	Health     HealthHandler
}

// crudHandler is the route set shared by every entity collection.
type crudHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", h.Health.Healthz)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired)
				r.Get("/me", h.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", h.Project.Create)
				mountEntity(r, h.Project)
			})
			r.Route("/departments", func(r chi.Router) {
				r.Post("/", h.Department.Create)
				mountEntity(r, h.Department)
			})
			r.Route("/workers", func(r chi.Router) {
				r.Post("/", h.Worker.Create)
				mountEntity(r, h.Worker)
			})
			r.Route("/assignments", func(r chi.Router) {
				r.Post("/", h.Assignment.Create)
				mountEntity(r, h.Assignment)
			})
			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Record)
				mountEntity(r, h.Attendance)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/assignments-by-month", h.Stats.AssignmentsByMonth)
				r.Get("/attendance-by-month", h.Stats.AttendanceByMonth)
				r.Get("/workers-by-department", h.Stats.WorkersByDepartment)
				r.Get("/workers-by-status", h.Stats.WorkersByStatus)
				r.Get("/workers-by-project", h.Stats.WorkersByProject)
				r.Get("/top-workers", h.Stats.TopWorkers)
				r.Get("/attendance-rate", h.Stats.AttendanceRate)
				r.Get("/work-hours-by-month", h.Stats.WorkHoursByMonth)
				r.Get("/overview", h.Stats.Overview)
				r.Get("/export", h.Stats.Export)
			})
		})
	})
	return r
}

func mountEntity(r chi.Router, h crudHandler) {
	r.Get("/", h.List)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)

		// Admin only
		r.With(middleware.RequireAdmin).Delete("/", h.Delete)
	})
}
