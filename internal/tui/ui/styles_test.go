package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"ViewTitle", styles.ViewTitle},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusHelp", styles.StatusHelp},
		{"EntrySelected", styles.EntrySelected},
		{"EntryNormal", styles.EntryNormal},
		{"EntryIndex", styles.EntryIndex},
		{"EntryTime", styles.EntryTime},
		{"EntryDuration", styles.EntryDuration},
		{"EntryCoeff", styles.EntryCoeff},
		{"EntryCost", styles.EntryCost},
		{"EntryCarried", styles.EntryCarried},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"Topic", styles.Topic},
		{"Input", styles.Input},
		{"InputFocused", styles.InputFocused},
		{"Dialog", styles.Dialog},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := tt.style.Render("test")
			if !strings.Contains(rendered, "test") {
				t.Errorf("expected rendered output of %s to contain the input, got %q", tt.name, rendered)
			}
		})
	}
}

func TestStatLabelWidth(t *testing.T) {
	styles := DefaultStyles()

	rendered := styles.StatLabel.Render("Total hours:")
	if lipgloss.Width(rendered) != 20 {
		t.Errorf("expected stat labels padded to 20 columns, got %d", lipgloss.Width(rendered))
	}
}

func TestNewStylesFromRegistry(t *testing.T) {
	tp := NewThemeProvider("nord")
	styles := NewStylesFromRegistry(tp.Registry())

	if styles.App.GetPaddingTop() != 1 || styles.App.GetPaddingLeft() != 2 {
		t.Error("expected App padding to match the default layout")
	}
	if !styles.TabActive.GetBold() {
		t.Error("expected active tab to be bold")
	}
	if !styles.EntryCarried.GetItalic() {
		t.Error("expected carried entries to be italic")
	}
}
