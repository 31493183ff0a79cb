// Package sqlstore is the relational storage backend. It keeps users, posts
// and comments in three tables linked by foreign keys and relies on the
// engine's constraints for email uniqueness and referential integrity.
//
// SQLite (modernc.org/sqlite) is the default engine; PostgreSQL (pgx) is used
// when a DSN is configured. Queries are written with "?" placeholders and
// rebound per dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/tweetheure/internal/dbx"
	"github.com/dmitrijs2005/tweetheure/internal/filex"
	"github.com/dmitrijs2005/tweetheure/internal/models"
	"github.com/dmitrijs2005/tweetheure/internal/storage/sqlstore/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Options selects the engine. Path is used for SQLite, DSN for PostgreSQL.
type Options struct {
	Dialect dbx.Dialect
	Path    string
	DSN     string
}

type Store struct {
	db      *sql.DB
	dialect dbx.Dialect
}

// New wraps an already opened database without running migrations.
func New(db *sql.DB, dialect dbx.Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Open connects to the configured engine and brings the schema up to date.
// A missing SQLite file is created.
func Open(ctx context.Context, opts Options) (*Store, error) {
	var (
		db  *sql.DB
		err error
	)

	switch opts.Dialect {
	case dbx.DialectSQLite, "":
		opts.Dialect = dbx.DialectSQLite
		if err := filex.EnsureParentDir(opts.Path); err != nil {
			return nil, err
		}
		db, err = sql.Open("sqlite", sqliteDSN(opts.Path))
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
	case dbx.DialectPostgres:
		db, err = sql.Open("pgx", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dialect %q", opts.Dialect)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	s := New(db, opts.Dialect)
	if err := s.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return s, nil
}

// sqliteDSN builds a file: URI. The path is percent-escaped so '?', '#' and
// '%' in file names stay part of the path.
func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	u := url.URL{Scheme: "file", Path: path, OmitHost: true, RawQuery: q.Encode()}
	return u.String()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for the store's dialect.
func (s *Store) RunMigrations(ctx context.Context) error {
	gooseDialect, dir := "sqlite3", "sqlite"
	if s.dialect == dbx.DialectPostgres {
		gooseDialect, dir = "pgx", "postgres"
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(gooseDialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, s.db, dir)
}

func (s *Store) Kind() models.BackendKind {
	return models.BackendSQL
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) q(query string) string {
	return dbx.Rebind(s.dialect, query)
}
