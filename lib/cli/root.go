// Package cli holds the command line of the service.
package cli

import (
	"io/fs"

	"github.com/spf13/cobra"
)

var bundledLocales fs.FS

var rootCmd = &cobra.Command{
	Use:          "builder-revisions",
	Short:        "Revision history service for the page builder",
	SilenceUsage: true,
}

// Execute runs the command line. localeAssets holds assets/locales/*.json.
func Execute(localeAssets fs.FS) error {
	bundledLocales = localeAssets
	return rootCmd.Execute()
}
