package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ether/builder-revisions/lib/locales"
	"github.com/spf13/cobra"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "Inspect the bundled translations",
}

var localesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report translation keys missing from a locale",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reference, err := cmd.Flags().GetString("reference")
		if err != nil {
			return err
		}

		missing, err := locales.Missing(bundledLocales, reference)
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			cmd.Println("all locales are complete")
			return nil
		}

		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cmd.Printf("%s: %s\n", name, strings.Join(missing[name], ", "))
		}
		return fmt.Errorf("%d locales are incomplete", len(missing))
	},
}

func init() {
	localesCheckCmd.Flags().String("reference", "en", "Locale every other locale is compared with")
	localesCmd.AddCommand(localesCheckCmd)
	rootCmd.AddCommand(localesCmd)
}
