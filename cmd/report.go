package cmd

import (
	"github.com/spf13/cobra"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Print the summary report for a sessions file",
	Long: `Print coefficient, hour, cost and session-length statistics for a
sessions file, followed by the unique topics in order of first appearance.

The file must end in .json (an array of sessions) or .jsonl (one session
per line). Each session is an object with "start", "end" and "note".

Examples:
  tlreport report sessions.json
  tlreport report sessions.jsonl --rate 80
  tlreport report sessions.json --json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runReport(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
