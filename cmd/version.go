package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaisc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goaisc",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "goaisc v%s\n", version.Version)
		fmt.Fprintln(out, "AISC Steel Shapes Database Tool")
		fmt.Fprintf(out, "Schema: %s\n", version.Database)
		fmt.Fprintf(out, "Commit: %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
