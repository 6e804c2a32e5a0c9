package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ether/builder-revisions/lib/server"
	"github.com/ether/builder-revisions/lib/settings"
	"github.com/ether/builder-revisions/lib/utils"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		retrievedSettings, err := settings.ReadConfig("")
		if err != nil {
			return err
		}

		setupLogger := utils.SetupLogger(retrievedSettings.LogLevel)
		defer setupLogger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.InitServer(ctx, retrievedSettings, setupLogger, bundledLocales)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
