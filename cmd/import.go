package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goaisc/internal/metrics"
	"github.com/alexiusacademia/goaisc/internal/store"
)

var (
	importFile            string
	importReplace         bool
	importMetricsTextfile string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a shapes database CSV export into PostgreSQL",
	Long: `Load and validate an AISC shapes database CSV export, create the
family tables if needed and bulk-insert every family.

The whole import runs in one transaction: nothing is stored unless every
row converts and every family is copied.

Connection settings come from the configuration file or the AISC_DB_*
environment variables (a .env file in the working directory is read too).

Examples:
  goaisc import --file aisc-shapes-database-v16.0.csv
  goaisc import -f shapes.csv --replace
  goaisc import -f shapes.csv --metrics-textfile /var/lib/node_exporter/goaisc.prom`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to shapes CSV file (default: source.csv from config)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Delete existing rows of each imported family first")
	importCmd.Flags().StringVar(&importMetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file when done")
}

func runImport(cmd *cobra.Command, args []string) error {
	cat, path, err := loadCatalog(importFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := store.NewClient(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.Ping(ctx); err != nil {
		return err
	}

	stored := make(map[string]int64)
	err = client.InTx(ctx, cfg.Database.Schema, func(repo *store.Repository) error {
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		for _, f := range cat.Families() {
			if importReplace {
				if err := repo.Clear(ctx, f); err != nil {
					return err
				}
			}
			n, err := repo.InsertAll(ctx, f, cat.Records(f))
			if err != nil {
				return err
			}
			stored[f.Slug()] = n
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	logger.Info("Imported shapes database",
		zap.String("path", path),
		zap.String("schema", cfg.Database.Schema),
		zap.Int("records", cat.Len()))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "IMPORTED RECORDS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Family\tTable\tRecords\n")
	fmt.Fprintf(w, "  ──────\t─────\t───────\n")
	var total int64
	for _, f := range cat.Families() {
		fmt.Fprintf(w, "  %s\t%s\t%d\n", f.Slug(), f.Table(), stored[f.Slug()])
		total += stored[f.Slug()]
	}
	fmt.Fprintf(w, "  Total\t\t%d\n", total)
	w.Flush()
	fmt.Fprintln(out)

	if importMetricsTextfile != "" {
		if err := metrics.WriteTextfile(importMetricsTextfile); err != nil {
			return err
		}
		fmt.Fprintf(out, "Metrics written to: %s\n", importMetricsTextfile)
	}
	return nil
}
