package handlers

import (
	"fmt"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/entry"
)

// ShowReport prints the summary report for path
func ShowReport(deps *cli.Deps, path string) {
	report, err := deps.Services.Report.Generate(path)
	if err != nil {
		ReportError(deps, err)
		return
	}

	if deps.JSON {
		err = cli.WriteJSON(deps.Stdout, report)
	} else {
		err = cli.FormatReport(deps.Stdout, report, deps.FormatOptions())
	}
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write report: %v\n", err)
		deps.Exit(1)
	}
}

// ShowEntries prints the annotated, costed entries of path
func ShowEntries(deps *cli.Deps, path string) {
	report, err := deps.Services.Report.Generate(path)
	if err != nil {
		ReportError(deps, err)
		return
	}

	if deps.JSON {
		err = cli.WriteJSON(deps.Stdout, report.Entries)
	} else {
		err = cli.FormatEntries(deps.Stdout, report.Entries, deps.FormatOptions())
	}
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write entries: %v\n", err)
		deps.Exit(1)
		return
	}

	printWarnings(deps, report.Warnings)
}

// ShowTopics prints the unique topics of path, one per line
func ShowTopics(deps *cli.Deps, path string) {
	topics, err := deps.Services.Report.Topics(path)
	if err != nil {
		ReportError(deps, err)
		return
	}

	if deps.JSON {
		err = cli.WriteJSON(deps.Stdout, topics)
	} else {
		err = cli.FormatTopics(deps.Stdout, topics)
	}
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write topics: %v\n", err)
		deps.Exit(1)
	}
}

// Validate checks that path would produce a report
func Validate(deps *cli.Deps, path string) {
	result, err := deps.Services.Report.Validate(path)
	if err != nil {
		ReportError(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "File: %s\n", result.Path)
	_, _ = fmt.Fprintf(deps.Stdout, "Entries: %d %s\n", result.EntryCount, cli.Pluralize("entry", result.EntryCount))

	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Warnings: %d\n", len(result.Warnings))
		for _, w := range result.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatWarning(w))
		}
	}

	if !result.Valid() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Invalid")
		ReportError(deps, result.Err)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Status: OK")
}

func printWarnings(deps *cli.Deps, warnings []entry.Warning) {
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: %d %s\n", len(warnings), cli.Pluralize("warning", len(warnings)))
	for _, w := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatWarning(w))
	}
}
