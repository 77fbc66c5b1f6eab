package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// RunMigrations brings the schema up to the latest embedded version. A
// database that is already current is not an error.
func RunMigrations(db *sql.DB) (MigrationStatus, error) {
	var status MigrationStatus

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return status, fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return status, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return status, fmt.Errorf("create migrate instance: %w", err)
	}

	status.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return status, fmt.Errorf("read version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("run migrations: %w", err)
	}

	status.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return status, fmt.Errorf("read version: %w", err)
	}
	return status, nil
}
