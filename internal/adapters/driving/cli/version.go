package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/iso4217/internal/snapshot"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("iso4217 version %s (embedded list one %s)\n", version, snapshot.Published)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
