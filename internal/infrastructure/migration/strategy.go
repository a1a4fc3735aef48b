package migration

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/shared/config"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

//go:embed scripts/*/*.sql
var scripts embed.FS

// SourceDir is where `migrate create` writes new scripts, relative to the repository root.
const SourceDir = "internal/infrastructure/migration/scripts"

// Strategy brings a database schema up to date.
type Strategy interface {
	Name() string
	Migrate(db *gorm.DB) error
	MigrateDown(db *gorm.DB, steps int) error
	Status(db *gorm.DB) error
}

// NewStrategy picks versioned goose scripts for MySQL and PostgreSQL and
// GORM AutoMigrate for SQLite.
func NewStrategy(driver string, log logger.Interface) (Strategy, error) {
	switch driver {
	case config.DriverMySQL:
		return NewGooseStrategy("mysql", log), nil
	case config.DriverPostgres:
		return NewGooseStrategy("postgres", log), nil
	case config.DriverSQLite:
		return NewAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

type GooseStrategy struct {
	dialect string
	logger  logger.Interface
}

func NewGooseStrategy(dialect string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		dialect: dialect,
		logger:  log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) Name() string {
	return "goose"
}

func (s *GooseStrategy) dir() string {
	return path.Join("scripts", s.dialect)
}

// prepare points goose at the embedded scripts for this dialect.
func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(scripts)
	goose.SetLogger(&gooseLogger{log: s.logger})
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting goose migration", "dialect", s.dialect)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, s.dir()); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.dir()); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	if err := goose.Status(sqlDB, s.dir()); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes an empty, sequentially numbered script for this dialect
// under root (normally SourceDir).
func (s *GooseStrategy) Create(root, name string) error {
	dir := filepath.Join(root, s.dialect)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	goose.SetBaseFS(nil)
	goose.SetSequential(true)
	goose.SetLogger(&gooseLogger{log: s.logger})
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

// AutoMigrateStrategy derives the schema from the GORM models. It backs the
// SQLite driver used for local runs and tests.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *AutoMigrateStrategy) Name() string {
	return "gorm_auto_migrate"
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	models := AutoMigrateModels()
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "models", len(models))
	return nil
}

func (s *AutoMigrateStrategy) MigrateDown(_ *gorm.DB, _ int) error {
	return fmt.Errorf("down migrations are not supported by %s", s.Name())
}

func (s *AutoMigrateStrategy) Status(db *gorm.DB) error {
	for _, model := range AutoMigrateModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("failed to parse model: %w", err)
		}
		s.logger.Infow("table status",
			"table", stmt.Schema.Table,
			"exists", db.Migrator().HasTable(model))
	}
	return nil
}

type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
