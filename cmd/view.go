package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a report in an interactive terminal UI",
	Long: `Open the report for a sessions file in an interactive terminal UI.

Views available:
  - Summary: Report statistics and topics
  - Entries: Annotated sessions, filterable by topic
  - Config: Effective configuration and theme selector

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - j/k or arrows: Navigate within lists
  - r: Reload the file
  - ?: Show help
  - q: Quit`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runView(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

// runView starts the TUI for path
func runView(cmd *cobra.Command, path string) {
	d, ok := setup(cmd)
	if !ok {
		return
	}

	if err := deps.RunTUI(d.Services, path); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to run the terminal UI")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}
