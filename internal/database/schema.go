package database

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/logging"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

var gooseDialects = map[string]string{
	config.DriverSQLite:   "sqlite3",
	config.DriverPostgres: "postgres",
}

// goose keeps its dialect, filesystem and logger in package globals.
var gooseMu sync.Mutex

// EnsureSchema creates the studios and games tables if they are absent.
// It is idempotent and never drops or rewrites existing data.
func EnsureSchema(ctx context.Context, db *gorm.DB, driver string, log zerolog.Logger) error {
	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(logging.Printer{Logger: log, Component: "schema"})

	if err := goose.UpContext(ctx, sqlDB, "migrations/"+driver); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Info().Str("component", "schema").Int64("version", version).Msg("schema is up to date")
	return nil
}
