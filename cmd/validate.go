package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tlreport/internal/cli/handlers"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a sessions file can be reported on",
	Long: `Read and annotate a sessions file without printing the report.
Shows the entry count, any warnings, and the first error that would stop a
report. Exits with status 1 when the file is not valid.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := setup(cmd)
		if !ok {
			return
		}
		handlers.Validate(d, inputPath(args))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
