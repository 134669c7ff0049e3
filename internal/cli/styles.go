package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/tlreport/internal/osutil"
)

// Styles renders report text, with lipgloss styling when enabled
type Styles struct {
	enabled bool
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	topic   lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

// NewStyles creates styles bound to w. With enabled false every method
// returns its input unchanged.
func NewStyles(w io.Writer, enabled bool) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		enabled: enabled,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D56F4"}),
		label:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"}),
		value:   r.NewStyle().Bold(true),
		topic:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#50FA7B"}),
		warning: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB86C"}),
		muted:   r.NewStyle().Faint(true),
	}
}

// ColorEnabled reports whether styled output should be written to w.
// Only terminals get color, and noColor always wins.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return osutil.OS.IsTerminal(f.Fd())
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// Header styles a section title
func (s Styles) Header(text string) string { return s.render(s.header, text) }

// Label styles a field label
func (s Styles) Label(text string) string { return s.render(s.label, text) }

// Value styles a field value
func (s Styles) Value(text string) string { return s.render(s.value, text) }

// Topic styles a topic line
func (s Styles) Topic(text string) string { return s.render(s.topic, text) }

// Warning styles a warning line
func (s Styles) Warning(text string) string { return s.render(s.warning, text) }

// Muted styles secondary text
func (s Styles) Muted(text string) string { return s.render(s.muted, text) }
