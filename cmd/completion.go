package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for tlreport.

File arguments complete to .json and .jsonl files only.

Bash:
  source <(tlreport completion bash)
  tlreport completion bash > ~/.local/share/bash-completion/completions/tlreport

Zsh:
  tlreport completion zsh > "${fpath[1]}/_tlreport"

Fish:
  tlreport completion fish > ~/.config/fish/completions/tlreport.fish

PowerShell:
  tlreport completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

var completionGenerators = map[string]func(w io.Writer) error{
	"bash":       rootCmd.GenBashCompletion,
	"zsh":        rootCmd.GenZshCompletion,
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": rootCmd.GenPowerShellCompletionWithDesc,
}

func init() {
	rootCmd.AddCommand(completionCmd)

	for _, c := range []*cobra.Command{rootCmd, reportCmd, topicsCmd, entriesCmd, validateCmd, viewCmd} {
		c.ValidArgsFunction = completeInputFile
	}
}

// completeInputFile offers sessions files for the single file argument
func completeInputFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json", "jsonl"}, cobra.ShellCompDirectiveFilterFileExt
}

// generateCompletion writes the completion script for shell
func generateCompletion(shell string) {
	gen, ok := completionGenerators[shell]
	if !ok {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err := gen(deps.Stdout); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
	}
}
