package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"treemath/binexpr/pkg/cli"
	"treemath/binexpr/pkg/history"
	"treemath/binexpr/pkg/server"
	"treemath/binexpr/pkg/telemetry/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the binexpr HTTP service",
	Long: `Run the HTTP service exposing simplification and rendering over JSON.

Endpoints:
  POST /v1/simplify   parse, simplify, and render an expression
  POST /v1/render     parse and render an expression
  GET  /v1/history    query recorded simplifications
  GET  /healthz       liveness probe
  GET  /metrics       Prometheus metrics

The server records every simplification to the history database when
history is enabled, prunes old records on the configured cron schedule,
and shuts down gracefully on SIGINT or SIGTERM.

Examples:
  # Start with defaults (127.0.0.1:8080)
  binexpr serve

  # Start with a configuration file
  binexpr serve --config config.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	ctx, cancel := cli.SetupSignalHandler()
	defer cancel()

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics)

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.NewStore(&cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		scheduler := history.NewScheduler(history.NewPruner(store, &cfg.History))
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop()
	} else {
		slog.Info("history is disabled, simplifications will not be recorded")
	}

	return server.NewServer(cfg, collector, store, slog.Default()).Start(ctx)
}
