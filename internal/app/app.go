// Package app wires configuration, storage and services into a ready
// logbook.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/logbook/internal/adapter/postgres"
	pglogrecord "github.com/heartmarshall/logbook/internal/adapter/postgres/logrecord"
	pgproperty "github.com/heartmarshall/logbook/internal/adapter/postgres/property"
	"github.com/heartmarshall/logbook/internal/adapter/sqlite"
	sqlitelogrecord "github.com/heartmarshall/logbook/internal/adapter/sqlite/logrecord"
	sqliteproperty "github.com/heartmarshall/logbook/internal/adapter/sqlite/property"
	"github.com/heartmarshall/logbook/internal/config"
	"github.com/heartmarshall/logbook/internal/registry"
	"github.com/heartmarshall/logbook/internal/service/conform"
	"github.com/heartmarshall/logbook/internal/service/logbook"
	"github.com/heartmarshall/logbook/internal/service/logstore"
	"github.com/heartmarshall/logbook/internal/typesfile"
)

// App is an opened logbook. Close releases its storage.
type App struct {
	Logbook *logbook.Service
	Driver  string

	close func()
}

// New opens the configured store, applies pending migrations and registers
// the log types from the types file, if one is configured.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	svc := logbook.NewService(log, reg, conform.NewEngine(reg), store)

	if cfg.Types.Path != "" {
		types, err := typesfile.Load(cfg.Types.Path)
		if err != nil {
			closeStore()
			return nil, err
		}
		svc.RegisterLogTypes(ctx, types)
	}

	log.DebugContext(ctx, "logbook opened",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Storage.Driver),
		slog.Int("log_types", reg.Len()),
	)

	return &App{Logbook: svc, Driver: cfg.Storage.Driver, close: closeStore}, nil
}

// Close releases the underlying database handle.
func (a *App) Close() {
	if a.close != nil {
		a.close()
	}
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*logstore.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(ctx, db, log); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		store := logstore.NewStore(log,
			sqlitelogrecord.New(db),
			sqliteproperty.New(db),
			sqlite.NewTxManager(db),
		)
		return store, func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		store := logstore.NewStore(log,
			pglogrecord.New(pool),
			pgproperty.New(pool),
			postgres.NewTxManager(pool),
		)
		return store, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
