package cli

import (
	"github.com/ether/builder-revisions/lib/settings"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_, err := settings.ReadConfig("")
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List every setting with its current value and default",
	Run: func(cmd *cobra.Command, _ []string) {
		settings.ConfigShow(cmd.OutOrStdout())
	},
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return settings.ConfigDump(cmd.OutOrStdout())
	},
}

var configEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables overriding settings",
	Run: func(cmd *cobra.Command, _ []string) {
		settings.ConfigEnv(cmd.OutOrStdout())
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the current value of one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.ConfigGet(cmd.OutOrStdout(), args[0])
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Print a settings.json carrying every default",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return settings.ConfigInit(cmd.OutOrStdout())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configDumpCmd, configEnvCmd, configGetCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
