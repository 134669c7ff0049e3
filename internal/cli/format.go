// Package cli provides the CLI presentation layer for the tlreport application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/tlreport/internal/entry"
	"github.com/xolan/tlreport/internal/stats"
	"github.com/xolan/tlreport/internal/timeutil"
)

// FormatOptions controls how reports are rendered
type FormatOptions struct {
	Location *time.Location // Timezone for window bounds, nil means Local
	Color    bool           // Style output with lipgloss
}

// FormatNumber formats v with at most two decimals and no trailing zeros
// Examples: "2", "0.5", "1.67"
func FormatNumber(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// FormatPercent formats a coefficient as a percentage, e.g. 0.5 -> "50%"
func FormatPercent(coefficient float64) string {
	return FormatNumber(coefficient*100) + "%"
}

// FormatCost formats a cost with two decimals
func FormatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', 2, 64)
}

// FormatHours formats fractional hours as a human-readable string
// Examples: "30m", "2h", "1h 30m", "-15m". Durations too long to count in
// minutes fall back to decimal hours.
func FormatHours(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return "?"
	}
	if math.Abs(hours*60) > math.MaxInt32 {
		return FormatNumber(hours) + "h"
	}
	sign := ""
	minutes := int(math.Round(hours * 60))
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	if minutes < 60 {
		return fmt.Sprintf("%s%dm", sign, minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%s%dh", sign, h)
	}
	return fmt.Sprintf("%s%dh %dm", sign, h, m)
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}

// FormatWarning formats an annotation warning for display
func FormatWarning(w entry.Warning) string {
	return fmt.Sprintf("  Entry %d: %s (note: %q)", w.Index+1, w.Message, w.Note)
}

// FormatReport writes the summary report
func FormatReport(w io.Writer, report *stats.Report, opts FormatOptions) error {
	s := NewStyles(w, opts.Color)
	b := &strings.Builder{}

	header := fmt.Sprintf("* Report for %s (%d %s) *",
		timeutil.FormatWindow(report.WindowStart, report.WindowEnd, opts.Location),
		report.EntryCount, Pluralize("entry", report.EntryCount))
	line(b, s.Header(header))
	line(b, "")

	field(b, s, "Average coeff:", FormatPercent(report.AverageCoefficient))
	field(b, s, "Lowest coeff:", FormatPercent(report.MinCoefficient))
	field(b, s, "Highest coeff:", FormatPercent(report.MaxCoefficient))
	line(b, "")

	field(b, s, "Total hours:", FormatNumber(report.TotalHours))
	cost := FormatCost(report.TotalCost)
	if report.HourlyRate == 0 {
		cost += " " + s.Muted("(no hourly rate set)")
	} else {
		cost += " " + s.Muted(fmt.Sprintf("(at %s/h)", FormatNumber(report.HourlyRate)))
	}
	field(b, s, "Total cost:", cost)
	line(b, "")

	field(b, s, "Shortest session:", FormatNumber(report.MinSessionHours)+"h")
	field(b, s, "Longest session:", FormatNumber(report.MaxSessionHours)+"h")
	field(b, s, "Avg session length:", FormatNumber(report.AvgSessionHours)+"h")
	line(b, "")

	line(b, s.Header("Topics:"))
	if len(report.UniqueTopics) == 0 {
		line(b, s.Muted("  (none)"))
	}
	for _, topic := range report.UniqueTopics {
		if topic == "" {
			line(b, "  * "+s.Muted("(no topic)"))
			continue
		}
		line(b, "  * "+s.Topic(topic))
	}

	if len(report.Warnings) > 0 {
		line(b, "")
		line(b, s.Warning(fmt.Sprintf("Warning: %d %s", len(report.Warnings), Pluralize("warning", len(report.Warnings)))))
		for _, warning := range report.Warnings {
			line(b, s.Warning(FormatWarning(warning)))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatEntries writes the annotated entries as a table. Carried topics are
// marked with "^" and empty or negative sessions with "!".
func FormatEntries(w io.Writer, entries []entry.Entry, opts FormatOptions) error {
	s := NewStyles(w, opts.Color)
	b := &strings.Builder{}

	line(b, s.Header(fmt.Sprintf("%4s  %-23s  %8s  %6s  %10s  %s", "#", "Start", "Duration", "Coeff", "Cost", "Topic")))
	line(b, strings.Repeat("-", 72))

	for i, e := range entries {
		topic := e.Topic
		if topic == "" {
			topic = s.Muted("(no topic)")
		}
		marker := " "
		if e.Carried() {
			marker = "^"
		}
		flag := " "
		if e.DurationHours <= 0 || math.IsNaN(e.DurationHours) {
			flag = "!"
		}
		_, _ = fmt.Fprintf(b, "%4d  %-23s  %7s%s  %6s  %10s  %s%s\n",
			i+1,
			timeutil.FormatInstant(e.Start, opts.Location),
			FormatHours(e.DurationHours), flag,
			FormatNumber(e.Coefficient.Value),
			FormatCost(e.Cost),
			marker, topic)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatTopics writes one topic per line
func FormatTopics(w io.Writer, topics []string) error {
	for _, topic := range topics {
		if _, err := fmt.Fprintln(w, topic); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func line(b *strings.Builder, text string) {
	b.WriteString(text)
	b.WriteByte('\n')
}

func field(b *strings.Builder, s Styles, label, value string) {
	line(b, s.Label(fmt.Sprintf("%-19s", label))+" "+s.Value(value))
}
