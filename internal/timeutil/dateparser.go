package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// zonedLayouts carry their own offset; the configured location is ignored.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	time.RFC1123Z,
	time.RFC1123,
}

// localLayouts have no offset and are interpreted in the configured location.
var localLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parser parses session timestamps in a fixed set of layouts.
type Parser struct {
	loc     *time.Location
	layouts []string
}

// NewParser creates a Parser that interprets offset-less timestamps in loc.
// A non-empty extraLayout is tried before the built-in layouts.
func NewParser(loc *time.Location, extraLayout string) *Parser {
	if loc == nil {
		loc = time.Local
	}
	var layouts []string
	if extraLayout != "" {
		layouts = append(layouts, extraLayout)
	}
	layouts = append(layouts, zonedLayouts...)
	layouts = append(layouts, localLayouts...)
	return &Parser{loc: loc, layouts: layouts}
}

// Parse parses a timestamp string.
//
// Valid inputs:
//   - "2024-01-15T09:30:00Z", "2024-01-15T09:30:00+02:00" (RFC 3339)
//   - "2024-01-15T09:30:00", "2024-01-15 09:30" (local to the parser's location)
//   - "2024-01-15" (midnight)
func (p *Parser) Parse(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp cannot be empty (use RFC 3339, e.g., 2024-01-15T09:30:00Z)")
	}

	for _, layout := range p.layouts {
		if t, err := time.ParseInLocation(layout, s, p.loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp '%s' (use RFC 3339, e.g., 2024-01-15T09:30:00Z, or YYYY-MM-DD HH:MM)", input)
}

// Location returns the location used for offset-less timestamps.
func (p *Parser) Location() *time.Location {
	return p.loc
}

// LoadLocation resolves a timezone name. "Local" and "" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone '%s': %w", name, err)
	}
	return loc, nil
}

// FromMillis converts milliseconds since the Unix epoch to a time in loc.
// The second return value is false for NaN or infinite input.
func FromMillis(ms float64, loc *time.Location) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(int64(ms)).In(loc), true
}

// FormatInstant renders a millisecond instant for report headers.
func FormatInstant(ms float64, loc *time.Location) string {
	t, ok := FromMillis(ms, loc)
	if !ok {
		return "invalid time"
	}
	return t.Format("Mon, Jan 2, 2006 15:04")
}

// FormatWindow renders a report window, collapsing the date when both ends
// fall on the same day.
func FormatWindow(start, end float64, loc *time.Location) string {
	s, okStart := FromMillis(start, loc)
	e, okEnd := FromMillis(end, loc)
	if !okStart || !okEnd {
		return FormatInstant(start, loc) + " -> " + FormatInstant(end, loc)
	}
	if s.Format("2006-01-02") == e.Format("2006-01-02") {
		return fmt.Sprintf("%s %s -> %s", s.Format("Mon, Jan 2, 2006"), s.Format("15:04"), e.Format("15:04"))
	}
	return fmt.Sprintf("%s -> %s", s.Format("Mon, Jan 2, 2006 15:04"), e.Format("Mon, Jan 2, 2006 15:04"))
}
