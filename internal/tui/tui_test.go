package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/tlreport/internal/config"
	"github.com/xolan/tlreport/internal/service"
	"github.com/xolan/tlreport/internal/storage"
	"github.com/xolan/tlreport/internal/tui/ui"
)

const sampleSessions = `[
  {"start": "2024-01-15T09:00:00Z", "end": "2024-01-15T11:00:00Z", "note": "1x meeting"},
  {"start": "2024-01-15T11:00:00Z", "end": "2024-01-15T12:00:00Z", "note": "0.5x^ more"},
  {"start": "2024-01-15T13:00:00Z", "end": "2024-01-15T15:00:00Z", "note": "1 coding"}
]`

func setupTestServices(t *testing.T) (*service.Services, string) {
	t.Helper()
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "sessions.json")
	if err := os.WriteFile(inputPath, []byte(sampleSessions), 0644); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(tmpDir, "config.toml")
	cfg := config.DefaultConfig()
	cfg.HourlyRate = 10
	cfg.Timezone = "UTC"
	return service.NewServicesWithConfig(configPath, cfg, config.LoadInfo{ConfigPath: configPath}), inputPath
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	services, path := setupTestServices(t)
	model := New(services, path)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.Update(model.loadReport()())
	return updated.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	services, path := setupTestServices(t)
	model := New(services, path)

	if model.activeTab != TabSummary {
		t.Errorf("expected initial tab to be Summary, got %d", model.activeTab)
	}
	if !model.loading {
		t.Error("expected model to start loading")
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
	if model.themeProvider.CurrentName() != ui.DefaultTheme {
		t.Errorf("expected default theme, got %q", model.themeProvider.CurrentName())
	}
}

func TestInit(t *testing.T) {
	services, path := setupTestServices(t)
	model := New(services, path)

	if model.Init() == nil {
		t.Error("expected Init to return a command")
	}
}

func TestLoadReport(t *testing.T) {
	services, path := setupTestServices(t)
	model := New(services, path)

	msg, ok := model.loadReport()().(ui.ReportLoadedMsg)
	if !ok {
		t.Fatal("expected ReportLoadedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}
	if msg.Report.TotalCost != 45 {
		t.Errorf("expected cost 45, got %v", msg.Report.TotalCost)
	}
	if msg.Path != path {
		t.Errorf("expected path %q, got %q", path, msg.Path)
	}
}

func TestLoadReport_MissingFile(t *testing.T) {
	services, _ := setupTestServices(t)
	model := New(services, filepath.Join(t.TempDir(), "missing.json"))

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.Update(model.loadReport()())
	m := updated.(Model)

	if m.loading {
		t.Error("expected loading to finish")
	}
	if !errors.Is(m.loadErr, storage.ErrNotFound) {
		t.Errorf("expected not found error, got %v", m.loadErr)
	}
	if !strings.Contains(m.View(), "load failed") {
		t.Errorf("expected failure in status bar, got %q", m.View())
	}
}

func TestUpdate_ReportLoadedReachesViews(t *testing.T) {
	m := loadedModel(t)

	if m.summaryView.Report() == nil {
		t.Error("expected summary view to receive the report")
	}
	if m.entriesView.Visible() != 3 {
		t.Errorf("expected entries view to list 3 entries, got %d", m.entriesView.Visible())
	}
	if !strings.Contains(m.View(), "Total cost:") {
		t.Errorf("expected summary in view, got %q", m.View())
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	services, path := setupTestServices(t)
	model := New(services, path)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := updated.(Model)

	if m.width != 100 || m.height != 50 {
		t.Errorf("expected 100x50, got %dx%d", m.width, m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	m := loadedModel(t)

	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(keyRunes("?"))
	m = updated.(Model)
	if !m.showHelp {
		t.Fatal("expected help to be shown")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Errorf("expected help overlay, got %q", m.View())
	}

	updated, _ = m.Update(keyRunes("?"))
	if updated.(Model).showHelp {
		t.Error("expected help to be hidden")
	}
}

func TestRenderHelpOverlay_PerView(t *testing.T) {
	tests := []struct {
		tab      Tab
		expected []string
	}{
		{TabSummary, []string{"Summary:", "top/bottom"}},
		{TabEntries, []string{"Entries:", "filter topics", "Entries (input):", "apply"}},
		{TabConfig, []string{"Config:", "themes", "Config (input):", "cancel"}},
	}

	for _, tt := range tests {
		t.Run(tabNames[tt.tab], func(t *testing.T) {
			m := loadedModel(t)
			m.activeTab = tt.tab

			help := m.renderHelpOverlay()
			for _, want := range append(tt.expected, "Global:", "switch views") {
				if !strings.Contains(help, want) {
					t.Errorf("expected %q in help, got %q", want, help)
				}
			}
		})
	}
}

func TestUpdate_RefreshKey(t *testing.T) {
	m := loadedModel(t)

	updated, cmd := m.Update(keyRunes("r"))
	if !updated.(Model).loading {
		t.Error("expected reload to set loading")
	}
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	if _, ok := cmd().(ui.ReportLoadedMsg); !ok {
		t.Error("expected reload to produce ReportLoadedMsg")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	tests := []struct {
		name     string
		start    Tab
		msg      tea.KeyMsg
		expected Tab
	}{
		{"next", TabSummary, tea.KeyMsg{Type: tea.KeyTab}, TabEntries},
		{"next wraps", TabConfig, tea.KeyMsg{Type: tea.KeyTab}, TabSummary},
		{"prev", TabEntries, tea.KeyMsg{Type: tea.KeyShiftTab}, TabSummary},
		{"prev wraps", TabSummary, tea.KeyMsg{Type: tea.KeyShiftTab}, TabConfig},
		{"direct 1", TabConfig, keyRunes("1"), TabSummary},
		{"direct 2", TabSummary, keyRunes("2"), TabEntries},
		{"direct 3", TabSummary, keyRunes("3"), TabConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadedModel(t)
			m.activeTab = tt.start

			updated, _ := m.Update(tt.msg)
			if got := updated.(Model).activeTab; got != tt.expected {
				t.Errorf("expected tab %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestUpdate_FilterCapturesGlobalKeys(t *testing.T) {
	m := loadedModel(t)
	m.activeTab = TabEntries

	updated, _ := m.Update(keyRunes("/"))
	m = updated.(Model)
	if !m.isCapturingKeys() {
		t.Fatal("expected entries filter to capture keys")
	}

	// These would quit, reload and switch tabs outside the filter
	for _, k := range []string{"q", "r", "3"} {
		updated, _ = m.Update(keyRunes(k))
		m = updated.(Model)
	}
	if m.activeTab != TabEntries {
		t.Errorf("expected to stay on Entries, got %d", m.activeTab)
	}
	if m.loading {
		t.Error("expected no reload while filtering")
	}
	if !m.entriesView.IsInputMode() {
		t.Error("expected filter to stay focused")
	}
	if !strings.Contains(m.renderStatusBar(), "apply") {
		t.Errorf("expected filter hints in status bar, got %q", m.renderStatusBar())
	}
}

func TestUpdate_ThemeChange(t *testing.T) {
	m := loadedModel(t)

	updated, cmd := m.Update(ui.ThemeChangeRequestMsg{ThemeName: "nord"})
	m = updated.(Model)

	if m.themeProvider.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", m.themeProvider.CurrentName())
	}
	if cmd == nil {
		t.Fatal("expected save command")
	}

	saved, ok := cmd().(ui.ThemeSavedMsg)
	if !ok {
		t.Fatal("expected ThemeSavedMsg")
	}
	if saved.Err != nil {
		t.Fatalf("unexpected save error: %v", saved.Err)
	}
	if m.services.Config.Get().Theme != "nord" {
		t.Errorf("expected config theme 'nord', got %q", m.services.Config.Get().Theme)
	}

	content, err := os.ReadFile(m.services.Config.GetPath())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `theme = "nord"`) {
		t.Errorf("expected theme in config file, got %q", content)
	}

	// The effective rate of 10 was never in the file and must not leak into it
	fileCfg, err := config.LoadFile(m.services.Config.GetPath())
	if err != nil {
		t.Fatal(err)
	}
	if fileCfg.HourlyRate != 0 || fileCfg.Timezone != config.DefaultConfig().Timezone {
		t.Errorf("expected only the theme to be saved, got %+v", fileCfg)
	}
	if m.services.Config.Get().HourlyRate != 10 {
		t.Errorf("expected effective rate 10 to be kept, got %v", m.services.Config.Get().HourlyRate)
	}

	updated, _ = m.Update(saved)
	m = updated.(Model)
	m.activeTab = TabConfig
	if !strings.Contains(m.View(), "File exists") {
		t.Errorf("expected config view to see the saved file, got %q", m.View())
	}
}

func TestView_Loading(t *testing.T) {
	services, path := setupTestServices(t)
	model := New(services, path)

	if model.View() != "Loading..." {
		t.Errorf("expected 'Loading...' before the first resize, got %q", model.View())
	}
}

func TestView_AllTabs(t *testing.T) {
	tests := []struct {
		tab      Tab
		expected string
	}{
		{TabSummary, "Average coeff:"},
		{TabEntries, "Entries (3)"},
		{TabConfig, "Configuration"},
	}

	for _, tt := range tests {
		t.Run(tabNames[tt.tab], func(t *testing.T) {
			m := loadedModel(t)
			m.activeTab = tt.tab
			if tt.tab == TabConfig {
				updated, _ := m.Update(m.configView.Init()())
				m = updated.(Model)
			}

			view := m.View()
			if !strings.Contains(view, tt.expected) {
				t.Errorf("expected %q in view, got %q", tt.expected, view)
			}
			if !strings.Contains(view, "sessions.json") {
				t.Errorf("expected file name in tab bar, got %q", view)
			}
		})
	}
}

func TestRenderStatusBar(t *testing.T) {
	tests := []struct {
		tab      Tab
		expected string
	}{
		{TabSummary, "scroll"},
		{TabEntries, "filter"},
		{TabConfig, "themes"},
	}

	for _, tt := range tests {
		t.Run(tabNames[tt.tab], func(t *testing.T) {
			m := loadedModel(t)
			m.activeTab = tt.tab

			bar := m.renderStatusBar()
			for _, want := range []string{tt.expected, "reload", "quit"} {
				if !strings.Contains(bar, want) {
					t.Errorf("expected %q in status bar, got %q", want, bar)
				}
			}
		})
	}
}

func TestInitCurrentView(t *testing.T) {
	m := loadedModel(t)

	m.activeTab = TabConfig
	if m.initCurrentView() == nil {
		t.Error("expected config view to reload its snapshot")
	}

	m.activeTab = Tab(99)
	if m.initCurrentView() != nil {
		t.Error("expected nil for an unknown tab")
	}
}
