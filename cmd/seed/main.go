package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/config"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workforce-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/workforce-backend-go/internal/service/auth"
	"github.com/spf13/cobra"
)

type seedFlags struct {
	seed          int64
	reference     string
	months        int
	reset         bool
	userEmail     string
	userPassword  string
	userRole      string
	dryRun        bool
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f seedFlags

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Load deterministic workforce fixtures into the database",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !user.IsValidRole(f.userRole) {
				return fmt.Errorf("invalid --user-role %q, expected admin or supervisor", f.userRole)
			}
			opts := fixtures.Options{Seed: f.seed, Months: f.months}
			if f.reference != "" {
				ref, ok := validator.IsValidDate(f.reference)
				if !ok {
					return fmt.Errorf("invalid --reference %q, expected YYYY-MM-DD", f.reference)
				}
				opts.Reference = ref
			}
			return run(cmd.Context(), opts, f)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&f.seed, "seed", 1, "Random seed; the same seed and reference always produce the same data")
	flags.StringVar(&f.reference, "reference", "", "Last attendance day (YYYY-MM-DD), defaults to today")
	flags.IntVar(&f.months, "months", fixtures.DefaultMonths, "Calendar months of attendance ending at the reference day")
	flags.BoolVar(&f.reset, "reset", false, "Empty the workforce tables before loading")
	flags.StringVar(&f.userEmail, "user-email", "admin@example.com", "Email of the login user to create or update")
	flags.StringVar(&f.userPassword, "user-password", os.Getenv("SEED_USER_PASSWORD"), "Login password (or SEED_USER_PASSWORD); empty skips the user")
	flags.StringVar(&f.userRole, "user-role", string(user.RoleAdmin), "Role of the login user: admin or supervisor")
	flags.BoolVar(&f.dryRun, "dry-run", false, "Generate and print the summary without touching the database")

	return cmd
}

func run(ctx context.Context, opts fixtures.Options, f seedFlags) error {
	ds := fixtures.Generate(opts)
	slog.Info("Generated fixtures", "seed", opts.Seed, "summary", ds.String())
	if f.dryRun {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 4, MinConns: 1})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	if err := fixtures.Load(ctx, db, ds, f.reset); err != nil {
		return err
	}

	if f.userPassword == "" {
		slog.Info("No user password given, skipping login user")
		return nil
	}
	return ensureUser(ctx, postgresql.NewUserRepository(db), f.userEmail, f.userPassword, user.Role(f.userRole))
}

// ensureUser creates the login user, or resets its password when it already exists.
// An existing user keeps its role; asking for a different one is an error.
func ensureUser(ctx context.Context, users user.UserRepository, email, password string, role user.Role) error {
	hash, err := serviceAuth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash user password: %w", err)
	}

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != role {
			return fmt.Errorf("user %s already exists with role %s", email, existing.Role)
		}
		if err := users.UpdatePassword(ctx, existing.ID, hash); err != nil {
			return err
		}
		slog.Info("User password updated", "email", email, "role", role)
		return nil
	case !errors.Is(err, user.ErrUserNotFound):
		return err
	}

	fullName := "Administrator"
	if role == user.RoleSupervisor {
		fullName = "Site Supervisor"
	}
	if _, err := users.Create(ctx, user.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     &fullName,
		Role:         role,
	}); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	slog.Info("User created", "email", email, "role", role)
	return nil
}
