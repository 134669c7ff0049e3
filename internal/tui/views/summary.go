package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/stats"
	"github.com/xolan/tlreport/internal/timeutil"
	"github.com/xolan/tlreport/internal/tui/ui"
)

// SummaryModel shows the aggregated report in a scrollable viewport
type SummaryModel struct {
	styles   ui.Styles
	keys     ui.KeyMap
	location *time.Location

	viewport viewport.Model
	report   *stats.Report
	err      error
	loading  bool
}

// NewSummaryModel creates a new summary view model
func NewSummaryModel(location *time.Location, styles ui.Styles, keys ui.KeyMap) SummaryModel {
	return SummaryModel{
		styles:   styles,
		keys:     keys,
		location: location,
		viewport: viewport.New(0, 0),
		loading:  true,
	}
}

// Init implements tea.Model
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ReportLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.report = msg.Report
		}
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.viewport.SetContent(m.renderContent())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m SummaryModel) View() string {
	return m.viewport.View()
}

// SetSize sets the view dimensions
func (m *SummaryModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(m.renderContent())
}

// Report returns the report currently shown, if any
func (m SummaryModel) Report() *stats.Report {
	return m.report
}

func (m SummaryModel) renderContent() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.ViewTitle.Render("Summary"))
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Fix the file and press 'r' to reload"))
		return b.String()
	}
	if m.report == nil {
		return ""
	}

	r := m.report
	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Report for %s",
		timeutil.FormatWindow(r.WindowStart, r.WindowEnd, m.location))))
	b.WriteString("\n")

	b.WriteString(renderStat(m.styles, "Entries:", fmt.Sprintf("%d", r.EntryCount)))
	b.WriteString("\n")
	b.WriteString(renderStat(m.styles, "Average coeff:", cli.FormatPercent(r.AverageCoefficient)))
	b.WriteString(renderStat(m.styles, "Lowest coeff:", cli.FormatPercent(r.MinCoefficient)))
	b.WriteString(renderStat(m.styles, "Highest coeff:", cli.FormatPercent(r.MaxCoefficient)))
	b.WriteString("\n")
	b.WriteString(renderStat(m.styles, "Total hours:", cli.FormatNumber(r.TotalHours)))
	cost := cli.FormatCost(r.TotalCost)
	if r.HourlyRate == 0 {
		cost += " (no hourly rate set)"
	} else {
		cost += fmt.Sprintf(" (at %s/h)", cli.FormatNumber(r.HourlyRate))
	}
	b.WriteString(renderStat(m.styles, "Total cost:", cost))
	b.WriteString("\n")
	b.WriteString(renderStat(m.styles, "Shortest session:", cli.FormatNumber(r.MinSessionHours)+"h"))
	b.WriteString(renderStat(m.styles, "Longest session:", cli.FormatNumber(r.MaxSessionHours)+"h"))
	b.WriteString(renderStat(m.styles, "Avg session length:", cli.FormatNumber(r.AvgSessionHours)+"h"))
	b.WriteString("\n")

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Topics (%d)", len(r.UniqueTopics))))
	b.WriteString("\n")
	for _, topic := range r.UniqueTopics {
		if topic == "" {
			topic = "(no topic)"
		}
		b.WriteString("  • ")
		b.WriteString(m.styles.Topic.Render(topic))
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d %s:", len(r.Warnings), cli.Pluralize("warning", len(r.Warnings)))))
		b.WriteString("\n")
		for _, w := range r.Warnings {
			b.WriteString(m.styles.Warning.Render(cli.FormatWarning(w)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
