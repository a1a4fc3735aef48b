// Package migrationtest provides migrated in-memory databases for tests.
package migrationtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/civicdesk/civicdesk/internal/infrastructure/migration"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// NewSQLiteDB returns a private in-memory SQLite database with the full
// schema. The pool is pinned to one connection so every query sees the same
// database, and it is closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.NewAutoMigrateStrategy(logger.NewNopLogger()).Migrate(db))
	return db
}
