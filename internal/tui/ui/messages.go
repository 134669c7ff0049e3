package ui

import "github.com/xolan/tlreport/internal/stats"

// ReportLoadedMsg carries the result of reading and aggregating the input file
type ReportLoadedMsg struct {
	Path   string
	Report *stats.Report
	Err    error
}

// ReloadRequestMsg asks the root model to re-read the input file
type ReloadRequestMsg struct{}

// ThemeChangeRequestMsg is sent when a view asks for a different theme
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views after the theme changed
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// ThemeSavedMsg reports the result of persisting the theme to the config file
type ThemeSavedMsg struct {
	ThemeName string
	Err       error
}
