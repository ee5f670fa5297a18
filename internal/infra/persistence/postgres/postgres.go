package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"columbus/config"
	"columbus/internal/domain/lifecycle"
	"columbus/internal/infra/metrics"

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

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

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

// monitorDBPool samples pool stats into Prometheus and logs when callers had
// to wait for a connection since the previous sample.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		waits := cur.WaitCount - prev.WaitCount
		waited := cur.WaitDuration - prev.WaitDuration
		prev = cur

		metrics.ObserveDBPool(cur.OpenConnections, cur.InUse, cur.Idle, waited)
		if waits == 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= dbPoolWarnDurationThreshold {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Postgres pool wait",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avg_wait", waited/time.Duration(waits)),
			slog.Int("max_open", cur.MaxOpenConnections),
			slog.Int("in_use", cur.InUse),
			slog.Int("idle", cur.Idle),
		)
	}
}
