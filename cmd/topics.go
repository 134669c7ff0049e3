package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tlreport/internal/cli/handlers"
)

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics <file>",
	Short: "List the unique topics of a sessions file",
	Long: `List the topics of a sessions file once each, in order of first
appearance. Carried topics ("^" marker) count as their resolved topic.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := setup(cmd)
		if !ok {
			return
		}
		handlers.ShowTopics(d, inputPath(args))
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
