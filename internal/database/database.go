// Package database owns the SQLite store handle and its schema lifecycle.
// The handle is constructed explicitly at startup and passed by reference
// to the services; there is no process-wide global store.
package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "financeiro/internal/errors"
	"financeiro/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Manager handles database operations
type Manager struct {
	db   *gorm.DB
	path string
}

// NewManager opens the SQLite database at path with foreign key
// enforcement enabled and returns a manager around the handle.
func NewManager(path string) (*Manager, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Manager{db: db, path: path}, nil
}

// NewMigrator returns a migrate instance over the embedded migrations for
// the SQLite database at path. It opens its own connection so running
// migrations does not interfere with a live gorm pool; closing the
// migrator releases it.
func NewMigrator(path string) (*migrate.Migrate, error) {
	migrateDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := sqlite3.WithInstance(migrateDB, &sqlite3.Config{})
	if err != nil {
		_ = migrateDB.Close()
		return nil, fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = migrateDB.Close()
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		_ = migrateDB.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return mig, nil
}

// Migrate idempotently applies the embedded SQL migrations. It is safe to
// call on every process start and never destroys existing data. Failure is
// surfaced as a SCHEMA_INIT_FAILED error so startup can abort with a
// distinguishable cause.
func (m *Manager) Migrate() error {
	logger.Get().Info("Running database migrations...")

	mig, err := NewMigrator(m.path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSchemaInit, err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return apperrors.Wrap(apperrors.ErrSchemaInit, fmt.Errorf("run migrations: %w", err))
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the underlying database connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	return sqlDB.Close()
}
