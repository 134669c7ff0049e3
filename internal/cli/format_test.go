package cli

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/xolan/tlreport/internal/entry"
	"github.com/xolan/tlreport/internal/stats"
)

func buildReport(t *testing.T, rate float64, raws ...entry.RawEntry) *stats.Report {
	t.Helper()
	result, err := entry.Annotate(raws, nil)
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	report, err := stats.Aggregate(result.Entries, stats.Options{HourlyRate: rate})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	report.Warnings = result.Warnings
	return &report
}

var sampleRaws = []entry.RawEntry{
	{Start: "2024-01-15T09:00:00Z", End: "2024-01-15T11:00:00Z", Note: "1x meeting"},
	{Start: "2024-01-15T11:00:00Z", End: "2024-01-15T12:00:00Z", Note: "0.5x^ more"},
	{Start: "2024-01-15T13:00:00Z", End: "2024-01-15T15:00:00Z", Note: "0 coding"},
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{2, "2"},
		{0.5, "0.5"},
		{5.0 / 3.0, "1.67"},
		{-0.001, "0"},
		{-1.25, "-1.25"},
		{20.000000000000004, "20"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "100%"},
		{0.5, "50%"},
		{0.2, "20%"},
		{0, "0%"},
		{1.5, "150%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPercent(tt.in); got != tt.want {
				t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0m"},
		{0.5, "30m"},
		{1, "1h"},
		{1.5, "1h 30m"},
		{2, "2h"},
		{-0.25, "-15m"},
		{-1.5, "-1h 30m"},
		{math.NaN(), "?"},
		{35791394, "35791394h"},
		{1e9, "1000000000h"},
		{-1e12, "-1000000000000h"},
		{math.MaxFloat64 / 2, FormatNumber(math.MaxFloat64/2) + "h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatHours(tt.hours); got != tt.want {
				t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		word  string
		count int
		want  string
	}{
		{"entry", 1, "entry"},
		{"entry", 0, "entries"},
		{"entry", 2, "entries"},
		{"warning", 1, "warning"},
		{"warning", 3, "warnings"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Pluralize(tt.word, tt.count); got != tt.want {
				t.Errorf("Pluralize(%q, %d) = %q, want %q", tt.word, tt.count, got, tt.want)
			}
		})
	}
}

func TestFormatWarning(t *testing.T) {
	w := entry.Warning{Index: 0, Kind: entry.WarnFirstEntryCarry, Note: "1^ x", Message: "cannot take previous note from first entry"}

	got := FormatWarning(w)
	want := `  Entry 1: cannot take previous note from first entry (note: "1^ x")`
	if got != want {
		t.Errorf("FormatWarning() = %q, want %q", got, want)
	}
}

func TestFormatReport(t *testing.T) {
	report := buildReport(t, 10, sampleRaws...)

	var buf bytes.Buffer
	if err := FormatReport(&buf, report, FormatOptions{Location: time.UTC}); err != nil {
		t.Fatalf("FormatReport: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"* Report for Mon, Jan 15, 2024 09:00 -> 15:00 (3 entries) *",
		"Average coeff:      50%",
		"Lowest coeff:       0%",
		"Highest coeff:      100%",
		"Total hours:        5",
		"Total cost:         25.00 (at 10/h)",
		"Shortest session:   1h",
		"Longest session:    2h",
		"Avg session length: 1.67h",
		"Topics:\n  * meeting\n  * coding\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warning") {
		t.Errorf("expected no warnings section:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no escape sequences without color:\n%s", out)
	}
}

func TestFormatReport_NoRateAndWarnings(t *testing.T) {
	report := buildReport(t, 0,
		entry.RawEntry{Start: "2024-01-15T09:00:00Z", End: "2024-01-16T10:00:00Z", Note: "1^"},
	)

	var buf bytes.Buffer
	if err := FormatReport(&buf, report, FormatOptions{Location: time.UTC}); err != nil {
		t.Fatalf("FormatReport: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Mon, Jan 15, 2024 09:00 -> Tue, Jan 16, 2024 10:00 (1 entry)",
		"(no hourly rate set)",
		"  * (no topic)",
		"Warning: 1 warning",
		"Entry 1: cannot take previous note from first entry",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatEntries(t *testing.T) {
	report := buildReport(t, 10, append(sampleRaws,
		entry.RawEntry{Start: "2024-01-15T16:00:00Z", End: "2024-01-15T16:00:00Z", Note: "1 standup"})...)

	var buf bytes.Buffer
	if err := FormatEntries(&buf, report.Entries, FormatOptions{Location: time.UTC}); err != nil {
		t.Fatalf("FormatEntries: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	if len(lines) != 6 {
		t.Fatalf("expected header, rule and 4 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Topic") {
		t.Errorf("expected header row, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], " meeting") || strings.Contains(lines[2], "^") {
		t.Errorf("expected plain first row, got %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "^meeting") {
		t.Errorf("expected carried marker on second row, got %q", lines[3])
	}
	if !strings.Contains(lines[3], "5.00") {
		t.Errorf("expected cost 5.00 on second row, got %q", lines[3])
	}
	if !strings.Contains(lines[5], "0m!") {
		t.Errorf("expected zero-length session flag, got %q", lines[5])
	}
}

func TestFormatTopics(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTopics(&buf, []string{"meeting", "coding"}); err != nil {
		t.Fatalf("FormatTopics: %v", err)
	}
	if buf.String() != "meeting\ncoding\n" {
		t.Errorf("FormatTopics() = %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	report := buildReport(t, 10, sampleRaws...)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, report); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["total_cost"] != 25.0 {
		t.Errorf("expected total_cost 25, got %v", decoded["total_cost"])
	}
	if decoded["entry_count"] != 3.0 {
		t.Errorf("expected entry_count 3, got %v", decoded["entry_count"])
	}
	if _, ok := decoded["warnings"]; ok {
		t.Error("expected warnings to be omitted when empty")
	}
}

func TestStyles_Disabled(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, false)

	for _, got := range []string{s.Header("a"), s.Label("a"), s.Value("a"), s.Topic("a"), s.Warning("a"), s.Muted("a")} {
		if got != "a" {
			t.Errorf("disabled style rendered %q, want %q", got, "a")
		}
	}
}
