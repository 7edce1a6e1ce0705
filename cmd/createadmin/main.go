// Command createadmin applies the schema migrations and ensures the configured
// administrator account exists. It is safe to run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"

	"usermgmt/config"
	"usermgmt/internal/domain/lifecycle"
	"usermgmt/internal/infra/auth"
	"usermgmt/internal/infra/cache"
	logs "usermgmt/internal/infra/log"
	"usermgmt/internal/infra/persistence/postgres"
	"usermgmt/internal/usecase"
	"usermgmt/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	var (
		cfg    *config.Config
		logger *slog.Logger
		seeder usecase.AdminSeedUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			cache.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			impl.NewAdminSeedService,
		),
		fx.Populate(&cfg, &logger, &seeder),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build admin seeder", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	// Start pings the database and applies pending migrations.
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start", slog.Any("error", err))
		os.Exit(1)
	}

	runErr := run(ctx, cfg, seeder)

	if err := app.Stop(context.Background()); err != nil {
		logger.Warn("Shutdown did not complete cleanly", slog.Any("error", err))
	}

	if runErr != nil {
		logger.Error("Admin seed failed", slog.Any("error", runErr))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, seeder usecase.AdminSeedUsecase) error {
	if cfg.Admin == nil {
		return errors.New("admin section is missing from the configuration")
	}

	_, _, err := seeder.EnsureAdmin(ctx, &usecase.EnsureAdminInput{
		FullName: cfg.Admin.FullName,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})

	return errors.Wrap(err, "ensure admin")
}
