package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk/internal/infrastructure/database"
	"github.com/civicdesk/civicdesk/internal/infrastructure/migration"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/seeds"
	"github.com/civicdesk/civicdesk/internal/infrastructure/repository"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

var (
	env         string
	configPath  string
	fixturePath string
	migrate     bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data",
		Long:  `Insert departments, staff and issues from a YAML fixture. The bundled demo fixture is used unless --file is given. An already populated database is left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&fixturePath, "file", "f", "", "Path to a YAML fixture")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Bring the schema up to date before seeding")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	fixture, err := loadFixture()
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()
	gdb := database.Get()

	if migrate {
		strategy, err := migration.NewStrategy(cfg.Database.Driver, log)
		if err != nil {
			return err
		}
		if err := strategy.Migrate(gdb); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	seeder := seeds.NewSeeder(
		repository.NewDepartmentRepository(gdb),
		repository.NewUserRepository(gdb),
		repository.NewIssueRepository(gdb, log),
		db.NewTransactionManager(gdb),
		log,
	)

	result, err := seeder.Seed(context.Background(), fixture)
	if errors.Is(err, seeds.ErrAlreadySeeded) {
		log.Infow("database already seeded, nothing to do")
		return nil
	}
	if err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seed completed",
		"departments", result.Departments,
		"users", result.Users,
		"issues", result.Issues,
	)
	return nil
}

func loadFixture() (*seeds.Fixture, error) {
	if fixturePath == "" {
		return seeds.Demo()
	}
	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return seeds.Parse(data)
}
