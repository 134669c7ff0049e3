package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/entry"
	"github.com/xolan/tlreport/internal/tui/ui"
)

// EntriesModel lists the annotated entries of the loaded report
type EntriesModel struct {
	styles   ui.Styles
	keys     ui.KeyMap
	location *time.Location

	// UI state
	width   int
	height  int
	list    scrollList
	entries []entry.Entry
	visible []int // indexes into entries matching the filter
	err     error
	loading bool

	// Topic filter
	filtering   bool
	filterInput textinput.Model
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(location *time.Location, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	filterInput := textinput.New()
	filterInput.Placeholder = "Filter by topic..."
	filterInput.CharLimit = 100
	filterInput.Width = 40

	return EntriesModel{
		styles:      styles,
		keys:        keys,
		location:    location,
		loading:     true,
		filterInput: filterInput,
	}
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.PageUp):
			m.moveCursor(-m.pageSize())
		case key.Matches(msg, m.keys.PageDown):
			m.moveCursor(m.pageSize())
		case key.Matches(msg, m.keys.Top):
			m.list.jump(0, len(m.visible), m.pageSize())
		case key.Matches(msg, m.keys.Bottom):
			m.list.jump(len(m.visible)-1, len(m.visible), m.pageSize())
		case key.Matches(msg, m.keys.Search):
			m.filtering = true
			m.filterInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Back):
			if m.filterInput.Value() != "" {
				m.filterInput.SetValue("")
				m.applyFilter()
			}
		}
		return m, nil

	case ui.ReportLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil && msg.Report != nil {
			m.entries = msg.Report.Entries
		} else {
			m.entries = nil
		}
		m.applyFilter()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// handleFilterMode handles key events while the topic filter is focused
func (m EntriesModel) handleFilterMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the visible entries, keeping the cursor in range
func (m *EntriesModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))

	visible := make([]int, 0, len(m.entries))
	for i, e := range m.entries {
		if query == "" || strings.Contains(strings.ToLower(e.Topic), query) {
			visible = append(visible, i)
		}
	}
	m.visible = visible
	m.moveCursor(0)
}

func (m *EntriesModel) moveCursor(delta int) {
	m.list.move(delta, len(m.visible), m.pageSize())
}

// pageSize is the number of entry rows that fit below the header and detail lines
func (m EntriesModel) pageSize() int {
	return max(1, m.height-8)
}

// View implements tea.Model
func (m EntriesModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Entries (%d)", len(m.entries))
	if len(m.visible) != len(m.entries) {
		title = fmt.Sprintf("Entries (%d of %d)", len(m.visible), len(m.entries))
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}

	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		if len(m.entries) == 0 {
			b.WriteString(m.styles.StatLabel.Render("No entries"))
		} else {
			b.WriteString(m.styles.StatLabel.Render("No entries match the filter"))
			b.WriteString("\n\n")
			b.WriteString(m.styles.StatLabel.Render("Press Esc to clear the filter"))
		}
		return b.String()
	}

	b.WriteString(RenderEntryList(m.entries, m.visible, m.styles, EntryRenderOptions{
		Location: m.location,
		Width:    m.width,
		Cursor:   m.list.cursor,
		Offset:   m.list.offset,
		Rows:     m.pageSize(),
	}))

	b.WriteString(rule(m.width))
	b.WriteString("\n")
	b.WriteString(m.renderDetail())

	return b.String()
}

// renderDetail describes the selected entry's note and how it was read
func (m EntriesModel) renderDetail() string {
	e, ok := m.Selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.StatLabel.Render("Note:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(e.Note))
	b.WriteString("\n")

	token := fmt.Sprintf("%q = %s", e.Coefficient.RawToken, cli.FormatNumber(e.Coefficient.Value))
	if e.Carried() {
		token += " (topic carried from previous entry)"
		b.WriteString(m.styles.StatLabel.Render("Resolved:"))
		b.WriteString(" ")
		b.WriteString(m.styles.EntryCarried.Render(e.ResolvedNote))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.StatLabel.Render("Coefficient:"))
	b.WriteString(" ")
	b.WriteString(m.styles.EntryCoeff.Render(token))
	return b.String()
}

// Selected returns the entry under the cursor
func (m EntriesModel) Selected() (entry.Entry, bool) {
	if m.list.cursor >= len(m.visible) {
		return entry.Entry{}, false
	}
	return m.entries[m.visible[m.list.cursor]], true
}

// Visible returns the number of entries passing the filter
func (m EntriesModel) Visible() int {
	return len(m.visible)
}

// IsInputMode returns true while the topic filter captures keys
func (m EntriesModel) IsInputMode() bool {
	return m.filtering
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.moveCursor(0)
}
