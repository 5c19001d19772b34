package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/skoglund/gatehouse/db"
)

// migrationsRoot is the directory inside the embedded filesystem.
const migrationsRoot = "migrations"

const commandTimeout = time.Minute

// Runner drives goose over the embedded migrations. It holds its own
// database/sql connection opened from the DSN; the pgx pool serving request
// traffic is not involved, and connectivity checks are the caller's concern.
type Runner struct {
	db  *sql.DB
	log *slog.Logger
}

// New opens a migration connection and points goose at the embedded schema.
func New(dsn string, log *slog.Logger) (*Runner, error) {
	if dsn == "" {
		return nil, errors.New("empty database dsn")
	}
	if log == nil {
		log = slog.Default()
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sql connection: %w", err)
	}

	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("configure goose: %w", err)
	}

	return &Runner{db: sqlDB, log: log}, nil
}

// Up applies all pending migrations.
func (r *Runner) Up(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	r.log.Info("applying migrations")
	if err := goose.UpContext(runCtx, r.db, migrationsRoot); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	r.log.Info("migrations applied")
	return nil
}

// Status reports applied and pending migrations.
func (r *Runner) Status(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	if err := goose.StatusContext(runCtx, r.db, migrationsRoot); err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	return nil
}

// Down rolls back the latest migration, or down to targetVersion when it is
// positive.
func (r *Runner) Down(ctx context.Context, targetVersion int64) error {
	runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	if targetVersion > 0 {
		r.log.Info("rolling back migrations", "target", targetVersion)
		if err := goose.DownToContext(runCtx, r.db, migrationsRoot, targetVersion); err != nil {
			return fmt.Errorf("rollback to version %d: %w", targetVersion, err)
		}
	} else {
		r.log.Info("rolling back latest migration")
		if err := goose.DownContext(runCtx, r.db, migrationsRoot); err != nil {
			return fmt.Errorf("rollback latest migration: %w", err)
		}
	}
	r.log.Info("rollback complete")
	return nil
}

// Close releases the migration connection.
func (r *Runner) Close() error {
	return r.db.Close()
}
