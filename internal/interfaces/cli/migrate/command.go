package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	credentialUsecases "github.com/fiberops/subcore/internal/application/credential/usecases"
	"github.com/fiberops/subcore/internal/infrastructure/config"
	"github.com/fiberops/subcore/internal/infrastructure/database"
	"github.com/fiberops/subcore/internal/infrastructure/migration"
	"github.com/fiberops/subcore/internal/infrastructure/repository"
	"github.com/fiberops/subcore/internal/shared/biztime"
	"github.com/fiberops/subcore/internal/shared/logger"
)

const seedActor = "migrate"

var (
	env         string
	configPath  string
	name        string
	dir         string
	steps       int
	patternFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, creating new migration files and seeding credential patterns.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedPatternsCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&dir, "dir", "internal/infrastructure/migration/"+migration.ScriptsDir, "Directory to write the migration into")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSeedPatternsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-patterns",
		Short: "Load credential patterns from a YAML file",
		Long:  `Replace the active username and secret patterns with the ones defined in a YAML file. Nothing is saved if any pattern is invalid.`,
		RunE:  runSeedPatterns,
	}

	cmd.Flags().StringVarP(&patternFile, "file", "f", "configs/patterns.yaml", "Path to the pattern file")

	return cmd
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database, log); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return log, nil
}

// withMigrator loads config, opens the database and hands fn a migrator.
func withMigrator(fn func(m *migration.Migrator, log logger.Interface) error) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return fn(migration.NewMigrator(sqlDB, log), log)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withMigrator(func(m *migration.Migrator, log logger.Interface) error {
		log.Infow("applying migrations", "environment", env)
		if err := m.Up(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Infow("schema is up to date")
		return nil
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}
	return withMigrator(func(m *migration.Migrator, log logger.Interface) error {
		log.Infow("rolling back migrations", "environment", env, "steps", steps)
		if err := m.Down(steps); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		log.Infow("rollback finished", "steps", steps)
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withMigrator(func(m *migration.Migrator, log logger.Interface) error {
		version, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "environment: %s\nschema version: %d\n\n", env, version)
		return m.Status()
	})
}

// runCreate only writes a file, so it needs neither config nor a database.
func runCreate(cmd *cobra.Command, args []string) error {
	if err := migration.Create(dir, name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created migration %q in %s\n", name, dir)
	return nil
}

func runSeedPatterns(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(patternFile)
	if err != nil {
		return fmt.Errorf("failed to read pattern file: %w", err)
	}

	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	patternRepo := repository.NewCredentialPatternRepository(database.Get(), log)
	uc := credentialUsecases.NewSeedCredentialPatternsUseCase(patternRepo, log)

	kinds, err := uc.Execute(cmd.Context(), data, seedActor)
	if err != nil {
		log.Errorw("failed to seed credential patterns", "file", patternFile, "error", err)
		return fmt.Errorf("failed to seed credential patterns: %w", err)
	}

	for _, kind := range kinds {
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %s pattern\n", kind)
	}
	log.Infow("credential patterns seeded", "file", patternFile, "kinds", len(kinds))
	return nil
}
