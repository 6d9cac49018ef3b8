package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/workforce-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
	assignmentService "github.com/cmlabs-hris/workforce-backend-go/internal/service/assignment"
	attendanceService "github.com/cmlabs-hris/workforce-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/workforce-backend-go/internal/service/auth"
	departmentService "github.com/cmlabs-hris/workforce-backend-go/internal/service/department"
	projectService "github.com/cmlabs-hris/workforce-backend-go/internal/service/project"
	statsService "github.com/cmlabs-hris/workforce-backend-go/internal/service/stats"
	workerService "github.com/cmlabs-hris/workforce-backend-go/internal/service/worker"
	"github.com/go-chi/httplog/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	level, _ := config.ParseLogLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}
	}

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.App.Env == "production")
	authService := serviceAuth.NewAuthService(tx, userRepo, JWTService, JWTRepository)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService),
		Project:    appHTTP.NewProjectHandler(projectService.NewProjectService(projectRepo)),
		Department: appHTTP.NewDepartmentHandler(departmentService.NewDepartmentService(departmentRepo)),
		Worker:     appHTTP.NewWorkerHandler(workerService.NewWorkerService(workerRepo)),
		Assignment: appHTTP.NewAssignmentHandler(assignmentService.NewAssignmentService(assignmentRepo, workerRepo, projectRepo, tx)),
		Attendance: appHTTP.NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, workerRepo, projectRepo, tx)),
		Stats:      appHTTP.NewStatsHandler(statsService.NewStatsService(statsRepo)),
		Health:     appHTTP.NewHealthHandler(db),
	}

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       level,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
	}, JWTService, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
