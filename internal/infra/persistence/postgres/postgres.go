package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"usermgmt/config"
	"usermgmt/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store, and on fx start pings it, applies pending migrations and starts the pool monitor.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := RunMigrations(ctx, sqlDB); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "PostgreSQL schema is up to date")

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports connection pool contention between two samples.
type poolMonitor struct {
	logger        *slog.Logger
	stats         func() sql.DBStats
	warnThreshold time.Duration
	prev          sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, stats func() sql.DBStats) *poolMonitor {
	return &poolMonitor{
		logger:        logger,
		stats:         stats,
		warnThreshold: dbPoolWarnDurationThreshold,
		prev:          stats(),
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	monitor := newPoolMonitor(logger, sqlDB.Stats)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			monitor.sample(ctx)
		}
	}
}

// sample logs only when callers had to wait for a connection since the previous sample.
func (m *poolMonitor) sample(ctx context.Context) {
	cur := m.stats()
	defer func() { m.prev = cur }()

	waited := cur.WaitCount - m.prev.WaitCount
	if waited <= 0 {
		return
	}
	waitTime := cur.WaitDuration - m.prev.WaitDuration

	level := slog.LevelDebug
	if waitTime >= m.warnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waited),
		slog.Duration("wait_time", waitTime),
		slog.Duration("avg_wait", waitTime/time.Duration(waited)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
