// Package tui provides the interactive report viewer for the tlreport application.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/tlreport/internal/service"
	"github.com/xolan/tlreport/internal/tui/ui"
	"github.com/xolan/tlreport/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabSummary Tab = iota
	TabEntries
	TabConfig
)

var tabNames = []string{"Summary", "Entries", "Config"}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services
	path     string

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	loading   bool
	loadErr   error

	// View models
	summaryView views.SummaryModel
	entriesView views.EntriesModel
	configView  views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model showing the report for path
func New(services *service.Services, path string) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()
	loc := services.Report.Location()

	return Model{
		services:      services,
		path:          path,
		activeTab:     TabSummary,
		loading:       true,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		summaryView:   views.NewSummaryModel(loc, styles, keys),
		entriesView:   views.NewEntriesModel(loc, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadReport(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		capturingKeys := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturingKeys:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturingKeys:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Refresh) && !capturingKeys:
			m.loading = true
			return m, m.loadReport()

		case key.Matches(msg, m.keys.NextTab) && !capturingKeys:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturingKeys:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturingKeys:
			m.activeTab = TabSummary
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturingKeys:
			m.activeTab = TabEntries
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturingKeys:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := max(1, m.height-6) // tabs, status bar and padding
		m.summaryView.SetSize(m.width-4, contentHeight)
		m.entriesView.SetSize(m.width-4, contentHeight)
		m.configView.SetSize(m.width-4, contentHeight)
		return m, nil

	case ui.ReportLoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		m.summaryView, _ = m.summaryView.Update(msg)
		m.entriesView, _ = m.entriesView.Update(msg)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.summaryView, _ = m.summaryView.Update(themeMsg)
		m.entriesView, _ = m.entriesView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)

	case ui.ThemeSavedMsg:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd
	}

	switch m.activeTab {
	case TabSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabSummary:
		b.WriteString(m.summaryView.View())
	case TabEntries:
		b.WriteString(m.entriesView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar followed by the input file name
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	tabs = append(tabs, m.styles.StatusHelp.Render(filepath.Base(m.path)))
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// viewHints returns the bindings worth showing for tab, relabelled for
// what they do there
func (m Model) viewHints(tab Tab, capturing bool) []key.Binding {
	k := m.keys
	if capturing {
		switch tab {
		case TabEntries:
			return []key.Binding{
				ui.Relabel(k.Select, "enter", "apply"),
				ui.Relabel(k.Back, "esc", "clear"),
			}
		case TabConfig:
			return []key.Binding{
				ui.Relabel(k.Up, "↑/↓", "navigate"),
				k.Select,
				ui.Relabel(k.Back, "esc", "cancel"),
			}
		}
		return nil
	}

	switch tab {
	case TabSummary:
		return []key.Binding{
			ui.Relabel(k.Down, "j/k", "scroll"),
			ui.Relabel(k.Top, "g/G", "top/bottom"),
		}
	case TabEntries:
		return []key.Binding{
			ui.Relabel(k.Down, "j/k", "navigate"),
			ui.Relabel(k.Top, "g/G", "first/last"),
			k.Search,
		}
	case TabConfig:
		return []key.Binding{ui.Relabel(k.Theme, "t/enter", "themes")}
	}
	return nil
}

// renderStatusBar renders the key hints at the bottom
func (m Model) renderStatusBar() string {
	capturing := m.isCapturingKeys()
	hints := m.viewHints(m.activeTab, capturing)
	if !capturing {
		hints = append(hints,
			m.keys.Refresh,
			ui.Relabel(m.keys.Tab1, "1-3", "views"),
			m.keys.Help,
			m.keys.Quit)
	}

	parts := make([]string, 0, len(hints)+1)
	for _, h := range hints {
		parts = append(parts, m.renderKeyHelp(h))
	}

	if m.loading {
		parts = append(parts, m.styles.StatusHelp.Render("loading..."))
	} else if m.loadErr != nil {
		parts = append(parts, m.styles.Error.Render("load failed"))
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - 4 - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(b key.Binding) string {
	h := b.Help()
	return m.styles.StatusKey.Render(h.Key) + " " + m.styles.StatusHelp.Render(h.Desc)
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabEntries:
		return m.entriesView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabSummary:
		return m.summaryView.Init()
	case TabEntries:
		return m.entriesView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// loadReport reads and aggregates the input file
func (m Model) loadReport() tea.Cmd {
	services, path := m.services, m.path
	return func() tea.Msg {
		report, err := services.Report.Generate(path)
		return ui.ReportLoadedMsg{Path: path, Report: report, Err: err}
	}
}

// saveThemeConfig persists the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		return ui.ThemeSavedMsg{ThemeName: themeName, Err: services.Config.SetTheme(themeName)}
	}
}

// renderHelpOverlay renders the keyboard shortcuts for the active view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	section := func(title string, bindings []key.Binding) {
		if len(bindings) == 0 {
			return
		}
		help.WriteString(m.styles.StatLabel.Render(title))
		help.WriteString("\n")
		for _, b := range bindings {
			h := b.Help()
			fmt.Fprintf(&help, "  %-10s %s\n", h.Key, h.Desc)
		}
		help.WriteString("\n")
	}

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	section("Global:", m.keys.GlobalHelp())
	name := tabNames[m.activeTab]
	section(name+":", m.viewHints(m.activeTab, false))
	section(name+" (input):", m.viewHints(m.activeTab, true))

	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the report viewer for path
func Run(services *service.Services, path string) error {
	p := tea.NewProgram(New(services, path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
