package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/cli/handlers"
	"github.com/xolan/tlreport/internal/service"
	"github.com/xolan/tlreport/internal/stats"
)

var rootCmd = &cobra.Command{
	Use:   "tlreport [file]",
	Short: "Summarize time-tracking sessions into a billing report",
	Long: `tlreport reads work sessions from a JSON or JSON Lines file and prints
coefficient, hour and cost statistics.

Each session has a start, an end and a note. The note starts with a
coefficient token that weights the session for billing:

  1x meeting with client       full rate, topic "meeting with client"
  0.5 code review              half rate
  0.5x^ follow-up              half rate, topic carried from the previous entry

Usage:
  tlreport <file>                  Print the report (same as 'tlreport report')
  tlreport topics <file>           List unique topics
  tlreport entries <file>          List annotated entries with their cost
  tlreport validate <file>         Check that a file can be reported on
  tlreport view <file>             Browse the report interactively
  tlreport config                  Show the effective configuration

The hourly rate comes from --rate, TLREPORT_HOURLY_RATE, HOURLY or the
config file, in that order.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runReport(cmd, args)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Float64("rate", 0, "Hourly rate used to compute costs (overrides config)")
	flags.Bool("json", false, "Write machine-readable JSON")
	flags.String("config", "", "Path to the config file")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("no-color", false, "Disable colored output")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"tlreport version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the configuration, applies command-line overrides and builds
// the services. It reports failures itself and returns false.
func setup(cmd *cobra.Command) (*cli.Deps, bool) {
	flags := cmd.Root().PersistentFlags()

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		path, err := deps.ConfigPath()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible, or pass --config")
			deps.Exit(1)
			return nil, false
		}
		configPath = path
	}

	cfg, info, err := deps.LoadConfig(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check %s and the HOURLY / TLREPORT_* environment variables\n", configPath)
		deps.Exit(1)
		return nil, false
	}

	if flags.Changed("rate") {
		rate, _ := flags.GetFloat64("rate")
		if err := stats.ValidateRate(rate); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid --rate")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: The hourly rate must be a finite number, zero or greater")
			deps.Exit(1)
			return nil, false
		}
		cfg.HourlyRate = rate
	}

	debug, _ := flags.GetBool("debug")
	configureLogging(deps.Stderr, debug || cfg.Debug)

	services := service.NewServicesWithConfig(configPath, cfg, info)
	log.WithFields(log.Fields{
		"run":    services.RunID,
		"config": configPath,
		"rate":   cfg.HourlyRate,
	}).Debug("configuration loaded")

	jsonOut, _ := flags.GetBool("json")
	noColor, _ := flags.GetBool("no-color")

	return &cli.Deps{
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Stdin:    deps.Stdin,
		Exit:     deps.Exit,
		Services: services,
		JSON:     jsonOut,
		NoColor:  noColor,
	}, true
}

// configureLogging sends log output to w and raises the level for debug runs
func configureLogging(w io.Writer, debug bool) {
	log.SetOutput(w)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

// inputPath returns the file argument, or "" when none was given
func inputPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// runReport prints the summary report for the input file
func runReport(cmd *cobra.Command, args []string) {
	d, ok := setup(cmd)
	if !ok {
		return
	}
	handlers.ShowReport(d, inputPath(args))
}
