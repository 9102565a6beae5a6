// Package migration runs goose SQL migrations against the configured
// database.
package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"zelo/internal/shared/logger"
)

type GooseMigrator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGooseMigrator(scriptsPath string, log logger.Interface) *GooseMigrator {
	return &GooseMigrator{
		scriptsPath: scriptsPath,
		logger:      log,
	}
}

func (m *GooseMigrator) Up(db *gorm.DB) error {
	m.logger.Infow("starting goose migration", "scripts_path", m.scriptsPath)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, m.scriptsPath); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion,
	)

	return nil
}

func (m *GooseMigrator) Down(db *gorm.DB, steps int) error {
	m.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, m.scriptsPath); err != nil {
			m.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	m.logger.Infow("down migration completed successfully")
	return nil
}

func (m *GooseMigrator) Version(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}

	return version, nil
}

func (m *GooseMigrator) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, m.scriptsPath); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}

func (m *GooseMigrator) Create(name string) error {
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, m.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	return nil
}
