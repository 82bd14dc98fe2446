// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Source returns the embedded migration files as a golang-migrate source driver.
func Source() (source.Driver, error) {
	return iofs.New(files, "sql")
}

// EnsureMigrated brings the schema up to the latest embedded version.
// It runs on a dedicated connection so closing the migrator leaves db open.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)
	log.Info("checking schema version", "event", "db_migration_check", "status", "starting")

	fail := func(step string, err error) error {
		log.Error("migration failed",
			"event", "db_migration_failed",
			"status", "error",
			"migration_step", step,
			"error_message", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("migration %s: %w", step, err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return fail("connect", err)
	}
	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		return fail("driver", err)
	}
	src, err := Source()
	if err != nil {
		_ = driver.Close()
		return fail("source", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return fail("init", err)
	}
	defer m.Close()

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fail("version", err)
	}
	if dirty {
		return fail("version", fmt.Errorf("schema version %d is dirty, fix it manually and force the version", from))
	}

	log.Info("applying migrations", "event", "db_migration_start", "status", "in_progress", "from_version", from)
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("schema already up to date, skipping migration",
				"event", "db_migration_skip",
				"status", "success",
				"version", from,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
		return fail("up", err)
	}

	to, _, err := m.Version()
	if err != nil {
		return fail("version", err)
	}
	log.Info("migrations applied",
		"event", "db_migration_success",
		"status", "success",
		"from_version", from,
		"version", to,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
