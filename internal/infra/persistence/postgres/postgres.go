package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"comerciaya/config"
	"comerciaya/internal/domain/lifecycle"
	"comerciaya/internal/errors"
	"comerciaya/internal/infra/metrics"
	"comerciaya/internal/infra/persistence/model"

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

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the primary (and replicas, when configured) and registers
// ping, migration and shutdown hooks. Pool statistics of the primary are
// exported when metrics are available.
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
	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB, "primary"); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
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

			if params.Config.Storage.AutoMigrate {
				if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
					return errors.Wrap(err, "failed to migrate schema")
				}
				params.Logger.Info("PostgreSQL marketplace schema migrated", slog.Int("tables", len(model.All())))
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

// monitorDBPool logs when requests waited for a connection since the last tick.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if waits := cur.WaitCount - prev.WaitCount; waits > 0 {
				logPoolWait(ctx, logger, prev, cur, waits)
			}
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats, waits int64) {
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
