package database

import (
	"embed"
	"errors"
	"fmt"

	"practice-management-api/internal/domain/entity"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigratePostgres applies the embedded SQL migrations. The schema, not the
// application, enforces unique usernames/emails and RESTRICT foreign keys.
func MigratePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations applied")

	return nil
}

// MigrateSQLite builds the dev-fallback schema from the entity definitions.
// The GORM constraint tags mirror the SQL migration.
func MigrateSQLite(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.InsuranceClaim{},
		&entity.Appointment{},
		&entity.Message{},
		&entity.MedicalRecord{},
		&entity.Prescription{},
		&entity.Billing{},
	)
}
