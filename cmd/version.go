package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goinertia/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goinertia",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "goinertia v%s\n", version.Version)
		fmt.Fprintf(out, "Commit: %s | Built: %s\n", version.GitCommit, version.BuildTime)
		fmt.Fprintln(out, "Composite Section Moments of Inertia")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
