package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vellum-app/vellum/internal/infrastructure/config"
	"github.com/vellum-app/vellum/internal/infrastructure/database"
	"github.com/vellum-app/vellum/internal/infrastructure/migration"
	"github.com/vellum-app/vellum/internal/shared/constants"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  runUp,
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE:  runDown,
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func setup() (*migration.GolangMigrateStrategy, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

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

	return migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	return strategy.Migrate(database.Get())
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	return strategy.MigrateDown(database.Get(), steps)
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	version, dirty, err := strategy.Version(database.Get())
	if err != nil {
		return err
	}

	if version == 0 && !dirty {
		fmt.Println("no migrations applied")
		return nil
	}

	fmt.Printf("version: %d dirty: %t\n", version, dirty)
	return nil
}
