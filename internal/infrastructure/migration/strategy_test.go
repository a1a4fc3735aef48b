package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/civicdesk/civicdesk/internal/shared/config"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

func TestNewStrategy(t *testing.T) {
	log := logger.NewNopLogger()

	s, err := NewStrategy(config.DriverMySQL, log)
	require.NoError(t, err)
	assert.Equal(t, "goose", s.Name())

	s, err = NewStrategy(config.DriverPostgres, log)
	require.NoError(t, err)
	assert.Equal(t, "goose", s.Name())

	s, err = NewStrategy(config.DriverSQLite, log)
	require.NoError(t, err)
	assert.Equal(t, "gorm_auto_migrate", s.Name())

	_, err = NewStrategy("oracle", log)
	assert.Error(t, err)
}

func TestEmbeddedScripts(t *testing.T) {
	for _, dialect := range []string{"mysql", "postgres"} {
		files, err := fs.Glob(scripts, "scripts/"+dialect+"/*.sql")
		require.NoError(t, err)
		require.NotEmpty(t, files, dialect)

		body, err := fs.ReadFile(scripts, files[0])
		require.NoError(t, err)
		text := string(body)
		assert.Contains(t, text, "-- +goose Up")
		assert.Contains(t, text, "-- +goose Down")
		for _, table := range []string{constants.TableDepartments, constants.TableUsers, constants.TableIssues, constants.TableIssueComments} {
			assert.True(t, strings.Contains(text, "CREATE TABLE "+table+" ("), "%s missing %s", dialect, table)
		}
	}
}

func TestAutoMigrateStrategy(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := NewAutoMigrateStrategy(logger.NewNopLogger())
	require.NoError(t, s.Migrate(db))

	for _, table := range []string{constants.TableDepartments, constants.TableUsers, constants.TableIssues, constants.TableIssueComments} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, s.Status(db))
	assert.Error(t, s.MigrateDown(db, 1))
}
