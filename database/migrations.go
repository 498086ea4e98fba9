package database

import (
	"log/slog"

	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date using the provided
// connection. Migrator targets are passed in by the caller to keep this
// package free of a models import cycle.
func RunMigrations(db *gorm.DB, models ...any) error {
	slog.Info("running database migrations", "models", len(models))
	return db.AutoMigrate(models...)
}
