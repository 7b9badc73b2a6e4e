package database

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"gamecatalog/backend/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := Connect(config.DriverSQLite, dsn, zerolog.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func tableExists(t *testing.T, db *gorm.DB, name string) bool {
	t.Helper()
	var count int64
	err := db.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count).Error
	require.NoError(t, err)
	return count == 1
}

func TestEnsureSchemaCreatesTables(t *testing.T) {
	db := openTestDB(t, ":memory:")

	require.NoError(t, EnsureSchema(context.Background(), db, config.DriverSQLite, zerolog.New(io.Discard)))

	assert.True(t, tableExists(t, db, "studios"))
	assert.True(t, tableExists(t, db, "games"))
}

func TestEnsureSchemaIsIdempotentAndKeepsData(t *testing.T) {
	ctx := context.Background()
	log := zerolog.New(io.Discard)
	path := filepath.Join(t.TempDir(), "catalog_test.db")

	db := openTestDB(t, path)
	require.NoError(t, EnsureSchema(ctx, db, config.DriverSQLite, log))
	require.NoError(t, db.Exec("INSERT INTO studios (name, description, rating) VALUES (?, ?, ?)", "Nova", "", 4.9).Error)
	require.NoError(t, Close(db))

	reopened := openTestDB(t, path)
	require.NoError(t, EnsureSchema(ctx, reopened, config.DriverSQLite, log))
	require.NoError(t, EnsureSchema(ctx, reopened, config.DriverSQLite, log))

	var count int64
	require.NoError(t, reopened.Raw("SELECT COUNT(*) FROM studios").Scan(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureSchemaDeclaresCascade(t *testing.T) {
	db := openTestDB(t, ":memory:")
	require.NoError(t, EnsureSchema(context.Background(), db, config.DriverSQLite, zerolog.New(io.Discard)))

	type fkRow struct {
		Table    string `gorm:"column:table"`
		From     string `gorm:"column:from"`
		To       string `gorm:"column:to"`
		OnDelete string `gorm:"column:on_delete"`
	}
	var rows []fkRow
	require.NoError(t, db.Raw("PRAGMA foreign_key_list(games)").Scan(&rows).Error)

	require.Len(t, rows, 1)
	assert.Equal(t, "studios", rows[0].Table)
	assert.Equal(t, "studioId", rows[0].From)
	assert.Equal(t, "id", rows[0].To)
	assert.Equal(t, "CASCADE", rows[0].OnDelete)
}

func TestEnsureSchemaRejectsUnknownDriver(t *testing.T) {
	db := openTestDB(t, ":memory:")
	err := EnsureSchema(context.Background(), db, "oracle", zerolog.New(io.Discard))
	assert.Error(t, err)
}
