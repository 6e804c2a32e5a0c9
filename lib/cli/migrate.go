package cli

import (
	"github.com/ether/builder-revisions/lib/settings"
	"github.com/ether/builder-revisions/lib/utils"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		retrievedSettings, err := settings.ReadConfig("")
		if err != nil {
			return err
		}

		setupLogger := utils.SetupLogger(retrievedSettings.LogLevel)
		defer setupLogger.Sync()

		// opening the store runs the migrations
		dataStore, err := utils.GetDB(*retrievedSettings, setupLogger)
		if err != nil {
			return err
		}
		cmd.Printf("database %s is up to date\n", retrievedSettings.DBType)
		return dataStore.Close()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
