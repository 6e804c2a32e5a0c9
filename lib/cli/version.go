package cli

import (
	"github.com/ether/builder-revisions/lib/settings"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		version := settings.GitVersion()
		if version == "" {
			version = "dev"
		}
		cmd.Printf("builder-revisions version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
