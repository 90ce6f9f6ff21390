package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationLockID serializes migrators across replicas starting together.
const migrationLockID = 0x64707231 // "dpr1"

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// migrationVersions lists the .sql files in dir in apply order.
func migrationVersions(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		versions = append(versions, e.Name())
	}
	slices.Sort(versions)
	return versions, nil
}

// pending returns the versions not yet in applied, preserving order.
func pending(all []string, applied map[string]bool) []string {
	out := make([]string, 0, len(all))
	for _, v := range all {
		if !applied[v] {
			out = append(out, v)
		}
	}
	return out
}

// rowQuerier is satisfied by both a pool and a single acquired connection.
type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func appliedVersions(ctx context.Context, q rowQuerier) (map[string]bool, error) {
	rows, err := q.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("listing applied migrations: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("listing applied migrations: %w", err)
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// RunMigrations applies pending migrations in filename order and returns
// the versions it applied. Each migration runs in its own transaction
// together with its schema_migrations row. There are no down migrations.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, migrationLockID); err != nil {
		return nil, fmt.Errorf("taking migration lock: %w", err)
	}
	defer func() {
		//nolint:errcheck // the lock is also dropped when the session ends
		conn.Exec(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, migrationLockID)
	}()

	if _, err := conn.Exec(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("creating schema_migrations table: %w", err)
	}

	all, err := migrationVersions(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return nil, err
	}

	todo := pending(all, applied)
	for _, version := range todo {
		sql, err := migrationsFS.ReadFile(path.Join("migrations", version))
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", version, err)
		}

		err = pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("applying migration %s: %w", version, err)
		}
	}

	return todo, nil
}

// PendingMigrations lists the embedded migrations not yet applied.
func (s *PostgresStore) PendingMigrations(ctx context.Context) ([]string, error) {
	if _, err := s.pool.Exec(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("creating schema_migrations table: %w", err)
	}

	all, err := migrationVersions(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	applied, err := appliedVersions(ctx, s.pool)
	if err != nil {
		return nil, err
	}
	return pending(all, applied), nil
}
