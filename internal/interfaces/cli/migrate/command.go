package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"zelo/internal/infrastructure/config"
	"zelo/internal/infrastructure/database"
	"zelo/internal/infrastructure/migration"
	"zelo/internal/shared/constants"
	"zelo/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
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
		Long:  `Create new migration files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initMigrator() (*migration.GooseMigrator, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	return migration.NewGooseMigrator(scriptsPath, logger.NewLogger()), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	migrator, err := initMigrator()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrator.Up(database.Get()); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, err := migrator.Version(database.Get())
	if err != nil {
		return err
	}

	fmt.Printf("migrations applied, current version: %d\n", version)
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	migrator, err := initMigrator()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrator.Down(database.Get(), steps); err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	fmt.Printf("rolled back %d migration(s)\n", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	migrator, err := initMigrator()
	if err != nil {
		return err
	}
	defer database.Close()

	return migrator.Status(database.Get())
}

func runCreate(cmd *cobra.Command, args []string) error {
	migrator, err := initMigrator()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrator.Create(name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Printf("created migration: %s\n", name)
	return nil
}
