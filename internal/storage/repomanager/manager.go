// Package repomanager opens the storage backend selected for a run. It is
// the only place that knows about both variants; everything above it talks
// to storage.Backend.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tweetheure/internal/config"
	"github.com/dmitrijs2005/tweetheure/internal/dbx"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/dmitrijs2005/tweetheure/internal/storage"
	"github.com/dmitrijs2005/tweetheure/internal/storage/jsonstore"
	"github.com/dmitrijs2005/tweetheure/internal/storage/sqlstore"
)

// Opener opens a backend of the given kind. The shell depends on this
// signature so tests can substitute in-memory fakes.
type Opener func(ctx context.Context, kind models.BackendKind) (storage.Backend, error)

// Open returns the backend for kind configured from cfg. The relational
// variant uses PostgreSQL when cfg.PostgresDSN is set and SQLite otherwise.
func Open(ctx context.Context, kind models.BackendKind, cfg *config.Config, log logging.Logger) (storage.Backend, error) {
	switch kind {
	case models.BackendSQL:
		opts := sqlstore.Options{Dialect: dbx.DialectSQLite, Path: cfg.SQLitePath}
		if cfg.PostgresDSN != "" {
			opts = sqlstore.Options{Dialect: dbx.DialectPostgres, DSN: cfg.PostgresDSN}
		}
		s, err := sqlstore.Open(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("open sql backend: %w", err)
		}
		log.Info(ctx, "backend opened", "backend", kind, "dialect", opts.Dialect)
		return s, nil

	case models.BackendJSON:
		s, err := jsonstore.Open(ctx, jsonstore.Options{
			Path:         cfg.JSONPath,
			AtomicWrites: cfg.AtomicWrites,
			Logger:       log,
		})
		if err != nil {
			return nil, fmt.Errorf("open json backend: %w", err)
		}
		log.Info(ctx, "backend opened", "backend", kind, "path", cfg.JSONPath)
		return s, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}

// NewOpener binds cfg and log to Open.
func NewOpener(cfg *config.Config, log logging.Logger) Opener {
	return func(ctx context.Context, kind models.BackendKind) (storage.Backend, error) {
		return Open(ctx, kind, cfg, log)
	}
}

var (
	_ storage.Backend = (*sqlstore.Store)(nil)
	_ storage.Backend = (*jsonstore.Store)(nil)
)
