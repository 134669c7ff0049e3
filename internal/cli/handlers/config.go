package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/config"
)

// ShowConfig displays the effective configuration and where it came from
func ShowConfig(deps *cli.Deps) {
	svc := deps.Services.Config
	cfg := svc.Get()
	info := svc.Info()

	if deps.JSON {
		if err := cli.WriteJSON(deps.Stdout, cfg); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
		}
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", svc.GetPath())
	if svc.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	if info.DotEnvFound {
		_, _ = fmt.Fprintf(deps.Stdout, "Env file:    %s\n", info.DotEnvPath)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	content, err := config.Encode(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, content)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)

	// Environment overrides still apply on top of the new file
	if err := deps.Services.Config.Reload(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	cfg := deps.Services.Config.Get()
	_, _ = fmt.Fprintf(deps.Stdout, "Effective hourly rate: %s (timezone %s)\n", cli.FormatNumber(cfg.HourlyRate), cfg.Timezone)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
