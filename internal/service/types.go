// Package service provides the business logic layer for the tlreport application.
// It wraps the underlying storage, entry, stats and config packages,
// providing a clean API for both CLI and TUI frontends.
package service

import (
	"github.com/xolan/tlreport/internal/entry"
)

// ValidationResult describes a parse-only pass over an input file.
type ValidationResult struct {
	Path       string
	EntryCount int
	Warnings   []entry.Warning
	Err        error // First fatal problem, nil if the file would produce a report
}

// Valid reports whether the file would produce a report.
func (r *ValidationResult) Valid() bool {
	return r.Err == nil
}

// EntriesResult contains annotated entries for listing.
type EntriesResult struct {
	Entries  []entry.Entry
	Warnings []entry.Warning
}
