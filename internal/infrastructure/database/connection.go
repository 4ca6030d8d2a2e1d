// Package database owns the embedded sqlite handle shared by the repositories.
package database

import (
	"fmt"
	"os"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	sharedConfig "github.com/haven-rp/warden/internal/shared/config"
	appLogger "github.com/haven-rp/warden/internal/shared/logger"
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the sqlite database file. busy_timeout leaves cross-connection
// serialization to the engine, matching the single-guild deployment model.
func Init(cfg *sharedConfig.DatabaseConfig) error {
	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on", cfg.Path)

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	appLogger.Info("database opened", "path", cfg.Path)
	return nil
}

// Get returns the database handle.
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database handle.
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	appLogger.Info("database closed")
	return nil
}

// Backup writes a consistent snapshot of the database to the given path using
// sqlite's VACUUM INTO. An existing backup file is replaced.
func Backup(database *gorm.DB, path string) error {
	if path == "" {
		return fmt.Errorf("backup path is empty")
	}
	// VACUUM INTO refuses to overwrite.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove previous backup: %w", err)
	}
	if err := database.Exec("VACUUM INTO ?", path).Error; err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}
	return nil
}
