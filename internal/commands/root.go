package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/HAVANA9D/TrackExpenses/internal/buildinfo"
	"github.com/HAVANA9D/TrackExpenses/internal/config"
	"github.com/HAVANA9D/TrackExpenses/internal/logging"
	"github.com/HAVANA9D/TrackExpenses/internal/registry"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "trackexpenses",
		Short:   "Personal income and expense tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultFileName, "path to config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newMonthlyCommand())
	rootCmd.AddCommand(newUsersCommand())
	rootCmd.AddCommand(newChartCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}

// appEnv bundles what every subcommand needs: resolved config, root logger,
// and the user registry.
type appEnv struct {
	cfg *config.Config
	log zerolog.Logger
	reg *registry.Registry
}

// setup resolves configuration (file, defaults, environment overrides) and
// builds the registry. Called at the top of every RunE.
func setup(cmd *cobra.Command) (*appEnv, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(path)
	if err != nil {
		return nil, err
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	reg := registry.New(cfg.DataDir, cfg.FileSuffix, logging.Component(log, logging.ComponentLedger))
	return &appEnv{cfg: cfg, log: log, reg: reg}, nil
}
