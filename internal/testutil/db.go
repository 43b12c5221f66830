// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"blogly/internal/config"
	"blogly/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config returns a configuration suitable for an isolated in-memory database.
func Config() *config.Config {
	return &config.Config{
		Port:                     "0",
		Env:                      "test",
		DBDriver:                 config.DriverSQLite,
		DBPath:                   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBMaxOpenConns:           1,
		DBMaxIdleConns:           1,
		DBConnMaxLifetimeMinutes: 5,
		DBSchemaMode:             database.SchemaModeAuto,
		LogLevel:                 "error",
		LogFormat:                "text",
	}
}

// NewDB opens a fresh in-memory SQLite database with the schema applied.
// It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := Config()
	db, err := database.Open(sqlite.Open(database.SQLiteDSN(cfg.DBPath)), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.ApplySchema(context.Background(), db, cfg))
	return db
}
