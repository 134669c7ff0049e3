package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when the configured theme is empty or unknown
const DefaultTheme = "dracula"

// ThemeProvider tracks the active bubbletint theme of the report viewer
type ThemeProvider struct {
	registry *tint.Registry
	ids      map[string]bool
}

// NewThemeProvider creates a provider starting at initialTheme. Unknown or
// empty names fall back to DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	ids := make(map[string]bool, len(all))
	var fallback tint.Tint
	for _, t := range all {
		ids[t.ID()] = true
		if t.ID() == DefaultTheme {
			fallback = t
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	tp := &ThemeProvider{
		registry: tint.NewRegistry(fallback, all...),
		ids:      ids,
	}
	if initialTheme != "" {
		tp.registry.SetTintID(initialTheme)
	}
	return tp
}

// Has reports whether name is a known theme
func (tp *ThemeProvider) Has(name string) bool {
	return tp.ids[name]
}

// SetTheme switches to name and reports whether it exists
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// NextTheme cycles forward and returns the new theme name
func (tp *ThemeProvider) NextTheme() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// PreviousTheme cycles backward and returns the new theme name
func (tp *ThemeProvider) PreviousTheme() string {
	tp.registry.PreviousTint()
	return tp.registry.ID()
}

// CurrentName returns the ID of the active theme
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the human-readable name of the active theme
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns all theme IDs, sorted
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := make([]string, 0, len(tp.ids))
	for id := range tp.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Registry exposes the bubbletint registry for direct color access
func (tp *ThemeProvider) Registry() *tint.Registry {
	return tp.registry
}

// Styles builds the view styles for the active theme
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
