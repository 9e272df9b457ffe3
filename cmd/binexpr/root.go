package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treemath/binexpr/pkg/cli"
	"treemath/binexpr/pkg/config"
	"treemath/binexpr/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "binexpr",
	Short: "Binexpr - prefix expression tree toolkit",
	Long: `Binexpr parses binary expressions written in prefix notation, simplifies
them with algebraic rewrite rules, and renders the result.

Simplification rules:
  - additive identity:       + x 0 and + 0 x become x
  - multiplicative identity: * x 1 and * 1 x become x
  - multiplication by zero:  * x 0 and * 0 x become 0
  - constant folding:        operators over two numbers are evaluated

Expressions can be processed from arguments, files, or stdin, served over
HTTP, and recorded to a local history database.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with a code reflecting the
// failure class: 2 for usage errors, 3 for invalid expressions, 1 otherwise.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file if one was given, falling back to
// defaults plus BINEXPR_* environment overrides.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadConfigWithEnvOverrides(cfgFile)
	}
	return config.DefaultWithEnvOverrides()
}

// setupLogging installs the configured slog default logger. The --verbose
// flag forces debug level.
func setupLogging(cfg *config.Config) error {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	_, err := logging.Setup(logging.Config{
		Level:     level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
	})
	return err
}
