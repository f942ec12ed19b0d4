package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the keylint command tree.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "keylint",
		Short: "Find the i18n message keys your code actually uses",
		Long: `Keylint statically scans JavaScript and Vue single-file components
for translator calls (t, $t, tc, $tc), v-t directives and
<i18n path="..."> attributes, and reports the set of translation
keys the code references.

Pair the output with your message catalogs to find unused or
missing keys.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log per-run details to stderr")

	keysCmd := &cobra.Command{
		Use:   "keys [patterns...]",
		Short: "List translation keys referenced by the matched files",
		RunE:  RunKeys,
	}
	keysCmd.Flags().StringSliceP("ext", "e", nil, "File extensions to scan (default: all supported)")
	keysCmd.Flags().StringP("config", "c", "", "Config file (default: ./"+configFileName+")")
	keysCmd.Flags().Bool("json", false, "Print a JSON array instead of plain lines")
	rootCmd.AddCommand(keysCmd)

	return rootCmd
}
