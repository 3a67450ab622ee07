package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goaisc/internal/config"
	"github.com/alexiusacademia/goaisc/internal/logging"
	"github.com/alexiusacademia/goaisc/internal/version"
)

var (
	cfgFile  string
	logLevel string

	// Set by the root command before any subcommand runs.
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "goaisc",
	Short: "AISC steel shapes database tool",
	Long: `goaisc - Go AISC Shapes Database

A CLI tool for working with the AISC Steel Construction Manual
shapes database.

This tool helps structural engineers:
  - Validate the shapes database CSV export
  - Import every shape family into PostgreSQL
  - Look up shapes by EDI nomenclature, manual label or dimension
  - Sketch cross-sections in the terminal or export them as images

Dimensions are in inches and weights in lb/ft, as in the database.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goaisc v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go AISC Steel Shapes Database                           ║")
		fmt.Fprintf(out, "  ║   %s ©  %-*s║\n", version.Author, 52-len(version.Author), version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the AISC steel shapes database.")
		fmt.Fprintf(out, "  Schema: %s\n", version.Database)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • CSV validation of all thirteen shape families")
		fmt.Fprintln(out, "    • Bulk import into PostgreSQL")
		fmt.Fprintln(out, "    • Shape lookup by nomenclature, label, depth or width")
		fmt.Fprintln(out, "    • Cross-section sketches and PNG/SVG/PDF export")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goaisc --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}

	l, err := logging.New(loaded.Logging)
	if err != nil {
		return err
	}

	cfg, logger = loaded, l
	logger.Debug("Loaded configuration",
		zap.String("command", cmd.CommandPath()),
		zap.String("config_file", cfgFile),
		zap.String("database", cfg.Database.Name),
		zap.String("schema", cfg.Database.Schema))
	return nil
}
