package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/tlreport/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or create the configuration file",
	Long: `Display the effective configuration for tlreport.

Settings are layered, later sources winning:
  1. Defaults (hourly_rate 0, timezone Local, theme dracula)
  2. The config file
  3. A .env file in the working directory
  4. HOURLY and TLREPORT_* environment variables (e.g. TLREPORT_TIMEZONE)
  5. The --rate flag

Examples:
  tlreport config                  Show all current settings
  tlreport config --json           Show settings as JSON
  tlreport config --init           Create a commented sample config file

Configuration file location:
  ~/.config/tlreport/config.toml   Linux
  ~/Library/Application Support/tlreport/config.toml   macOS
  %APPDATA%\tlreport\config.toml   Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d, ok := setup(cmd)
		if !ok {
			return
		}
		if initFlag, _ := cmd.Flags().GetBool("init"); initFlag {
			handlers.InitConfig(d)
			return
		}
		handlers.ShowConfig(d)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("init", false, "Create a sample config file")
}
