package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaisc/internal/shape"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the shape families",
	Long: `List every shape family with the CSV type codes it is read from,
the table it is stored in and the number of properties it carries.

Family names (or type codes) are accepted wherever a command takes a
<family> argument.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "SHAPE FAMILIES:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Family\tCodes\tTable\tRequired\tOptional\tDescription\n")
		fmt.Fprintf(w, "  ──────\t─────\t─────\t────────\t────────\t───────────\n")
		for _, f := range shape.AllFamilies() {
			rule := shape.Rules(f)
			fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%d\t%s\n",
				f.Slug(), strings.Join(f.Codes(), ", "), f.Table(), len(rule.Required), len(rule.Optional), f.Title())
		}
		w.Flush()
		fmt.Fprintln(out)
	},
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}
