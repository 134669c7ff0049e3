package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/entry"
	"github.com/xolan/tlreport/internal/stats"
	"github.com/xolan/tlreport/internal/storage"
)

// ReportError prints err with a hint matching its kind and exits with status 1
func ReportError(deps *cli.Deps, err error) {
	headline, hint := describe(err)

	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", headline)
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

func describe(err error) (headline, hint string) {
	var coeffErr *entry.CoefficientError
	var metricErr *stats.MetricError
	var lineErr *storage.LineError

	switch {
	case errors.Is(err, storage.ErrPathRequired):
		return "Input filename required", "Usage: tlreport <file.json|file.jsonl>"
	case errors.Is(err, storage.ErrNotJSON):
		return "Input file must be JSON", "Use a .json array or a .jsonl file with one entry per line"
	case errors.Is(err, storage.ErrNotFound):
		return "Input file not found", "Check the path and try again"
	case errors.As(err, &lineErr):
		return fmt.Sprintf("Invalid JSON on line %d", lineErr.LineNumber), "Each line must be an object like {\"start\": ..., \"end\": ..., \"note\": ...}"
	case errors.Is(err, storage.ErrInvalidJSON):
		return "Invalid JSON provided", "The file must hold an array of {\"start\", \"end\", \"note\"} objects"
	case errors.As(err, &coeffErr):
		return fmt.Sprintf("Malformed coefficient %q in entry %d", coeffErr.Token, coeffErr.Index+1),
			"Start each note with a coefficient such as 1, 0.5x or 0.5x^ followed by a space"
	case errors.Is(err, stats.ErrEmptyReport):
		return "No entries to report on", "The input file contains no sessions"
	case errors.Is(err, stats.ErrInvalidRate):
		return "Invalid hourly rate", "Set HOURLY, --rate or hourly_rate to a number >= 0"
	case errors.As(err, &metricErr):
		hint := ""
		if metricErr.Field == "durationHours" {
			hint = "Check the start and end timestamps of this entry (e.g., 2024-01-15T09:30:00Z)"
		}
		return fmt.Sprintf("Entry %d has a non-finite %s", metricErr.Index+1, metricErr.Field), hint
	default:
		return "Failed to build report", ""
	}
}
