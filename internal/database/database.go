package database

import (
	"fmt"
	"time"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/logging"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the process-wide storage handle for the configured driver.
// It does not touch the schema; call EnsureSchema afterwards.
func Connect(driver, dsn string, log zerolog.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.New(
		logging.Printer{Logger: log, Component: "gorm"},
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite serializes writers anyway, and a single connection keeps
		// ":memory:" databases from splitting into one database per connection.
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("component", "database").Str("driver", driver).Msg("database connection established")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
