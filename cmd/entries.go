package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tlreport/internal/cli/handlers"
)

// entriesCmd represents the entries command
var entriesCmd = &cobra.Command{
	Use:   "entries <file>",
	Short: "List annotated entries with their coefficient and cost",
	Long: `List every session with its start time, duration, coefficient, cost and
topic. Entries whose topic was carried from the previous entry are marked
with "^"; sessions with an empty or negative duration are marked with "!".`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := setup(cmd)
		if !ok {
			return
		}
		handlers.ShowEntries(d, inputPath(args))
	},
}

func init() {
	rootCmd.AddCommand(entriesCmd)
}
