package views

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/tlreport/internal/cli"
	"github.com/xolan/tlreport/internal/config"
	"github.com/xolan/tlreport/internal/service"
	"github.com/xolan/tlreport/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes shown at once
const maxVisibleThemes = 10

// ConfigModel shows the effective configuration and the theme selector
type ConfigModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width     int
	height    int
	config    config.Config
	info      config.LoadInfo
	path      string
	exists    bool
	themeName string
	saveErr   error

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeList      scrollList
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		themes:    themeProvider.AvailableThemes(),
		themeName: themeProvider.CurrentName(),
	}
	m.resetCursor()
	return m
}

// configLoadedMsg carries a snapshot of the config service
type configLoadedMsg struct {
	config config.Config
	info   config.LoadInfo
	path   string
	exists bool
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}
		if key.Matches(msg, m.keys.Select) || key.Matches(msg, m.keys.Theme) {
			m.selectingTheme = true
			m.resetCursor()
			return m, nil
		}

	case configLoadedMsg:
		m.config = msg.config
		m.info = msg.info
		m.path = msg.path
		m.exists = msg.exists

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.resetCursor()

	case ui.ThemeSavedMsg:
		m.saveErr = msg.Err
		if msg.Err == nil {
			m.config.Theme = msg.ThemeName
			m.exists = true
		}
	}

	return m, nil
}

// handleThemeSelection handles keys while the theme selector is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.themeList.move(-1, len(m.themes), maxVisibleThemes)
	case key.Matches(msg, m.keys.Down):
		m.themeList.move(1, len(m.themes), maxVisibleThemes)
	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		if theme := m.SelectedTheme(); theme != "" {
			return m, requestThemeChange(theme)
		}
	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetCursor()
	}
	return m, nil
}

// resetCursor points the selector at the active theme
func (m *ConfigModel) resetCursor() {
	m.themeList.jump(max(slices.Index(m.themes, m.themeName), 0), len(m.themes), maxVisibleThemes)
}

func requestThemeChange(themeName string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: themeName}
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(renderStat(m.styles, "Config file:", m.path))
	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n")
	if m.info.DotEnvFound {
		b.WriteString(renderStat(m.styles, "Env file:", m.info.DotEnvPath))
	}
	b.WriteString("\n")

	b.WriteString(rule(m.width))
	b.WriteString("\n\n")

	rate := cli.FormatNumber(m.config.HourlyRate)
	if m.config.HourlyRate == 0 {
		rate += " (not set)"
	}
	b.WriteString(renderStat(m.styles, "hourly_rate:", rate))
	b.WriteString(renderStat(m.styles, "timezone:", m.config.Timezone))
	layout := m.config.DateLayout
	if layout == "" {
		layout = "(built-in formats)"
	}
	b.WriteString(renderStat(m.styles, "date_layout:", layout))
	b.WriteString(renderStat(m.styles, "debug:", fmt.Sprintf("%t", m.config.Debug)))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
		return b.String()
	}

	b.WriteString(renderStat(m.styles, "theme:", m.themeName))
	if m.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Could not save theme: %v", m.saveErr)))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Press Enter or 't' to change theme"))

	return b.String()
}

// renderThemeSelector renders the scrolling theme list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(renderStat(m.styles, "theme:", "Select a theme"))
	b.WriteString("\n")

	start := m.themeList.offset
	end := min(start+maxVisibleThemes, len(m.themes))

	if start > 0 {
		b.WriteString(m.styles.StatusHelp.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		theme := m.themes[i]
		current := ""
		if theme == m.themeName {
			current = m.styles.Success.Render(" (current)")
		}
		if i == m.themeList.cursor {
			b.WriteString(m.styles.EntrySelected.Render("▸ " + theme))
		} else {
			b.WriteString("  " + m.styles.StatValue.Render(theme))
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	if end < len(m.themes) {
		b.WriteString(m.styles.StatusHelp.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render("↑/↓ navigate  Enter select  Esc cancel"))

	return b.String()
}

// IsInputMode returns true while the theme selector is open
func (m ConfigModel) IsInputMode() bool {
	return m.selectingTheme
}

// SelectedTheme returns the theme under the selector cursor
func (m ConfigModel) SelectedTheme() string {
	if m.themeList.cursor >= len(m.themes) {
		return ""
	}
	return m.themes[m.themeList.cursor]
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadConfig snapshots the config service
func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		return configLoadedMsg{
			config: m.services.Config.Get(),
			info:   m.services.Config.Info(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
		}
	}
}
