// Package storage owns the relational database handle and its schema.
package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	platformerrors "github.com/GuillemIscla/live-bootcamp-project/internal/platform/errors"
)

// Open connects to the sqlite database at dsn and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindStorage, "open", "failed to open database", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserRecord{}); err != nil {
		return platformerrors.Wrap(
			platformerrors.KindStorage, "migrate", "failed to migrate schema", err)
	}
	return nil
}
