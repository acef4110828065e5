package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/guttosm/findata/config"
	"github.com/guttosm/findata/internal/app"
	"github.com/guttosm/findata/internal/logger"
)

// indirections for unit testing
var (
	runIngestion  = app.RunIngestion
	runMigrations = app.RunMigrations
)

// newRootCmd builds the findata command tree. Configuration and the logger
// are initialized before any subcommand runs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "findata",
		Short:         "Daily stock price ingestion & query service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
			logger.Init()
		},
	}
	root.AddCommand(newAPICmd(), newIngestCmd(), newMigrateCmd())
	return root
}

func newAPICmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Serve the HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			if port == "" {
				port = config.AppConfig.Server.Port
			}
			logger.L().Info().Msg("starting API server")

			router, cleanup, err := app.InitializeApp()
			if err != nil {
				logger.L().Fatal().Err(err).Msg("app init error")
			}

			server := startServer(router, port)
			gracefulShutdown(cmd.Context(), server, cleanup)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port for the API server (default SERVER_PORT)")
	return cmd
}

func newIngestCmd() *cobra.Command {
	var (
		parallel int
		symbols  string
	)
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load the latest daily prices from Alpha Vantage",
		Long: `Applies pending migrations, then fetches TIME_SERIES_DAILY_ADJUSTED for
every symbol and upserts the most recent LOAD_DAYS trading days.

Any failure aborts the run with a non-zero exit status.`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.L().Info().Msg("running ingestion")
			if err := runIngestion(ctx, config.AppConfig, config.ParseSymbols(symbols), parallel); err != nil {
				logger.L().Fatal().Err(err).Msg("ingestion failed")
			}
			logger.L().Info().Msg("ingestion completed successfully")
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 1, "How many symbols to fetch concurrently (1 = sequential)")
	cmd.Flags().StringVar(&symbols, "symbols", "", "Comma separated symbols (default INGEST_SYMBOLS)")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runMigrations(cmd.Context(), config.AppConfig); err != nil {
				logger.L().Fatal().Err(err).Msg("migration failed")
			}
			logger.L().Info().Msg("migrations applied")
		},
	}
}
