package ui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
	}{
		// Navigation
		{"Up", keys.Up},
		{"Down", keys.Down},
		{"PageUp", keys.PageUp},
		{"PageDown", keys.PageDown},
		{"Top", keys.Top},
		{"Bottom", keys.Bottom},

		// Tab navigation
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Tab1", keys.Tab1},
		{"Tab2", keys.Tab2},
		{"Tab3", keys.Tab3},

		// Actions
		{"Select", keys.Select},
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},
		{"Refresh", keys.Refresh},
		{"Search", keys.Search},
		{"Theme", keys.Theme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("expected keys for binding %s", tt.name)
			}
			help := tt.binding.Help()
			if help.Key == "" {
				t.Errorf("expected help key for binding %s", tt.name)
			}
			if help.Desc == "" {
				t.Errorf("expected help description for binding %s", tt.name)
			}
		})
	}
}

func TestKeyBindingsMatch(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"Quit q", keys.Quit, "q"},
		{"Quit ctrl+c", keys.Quit, "ctrl+c"},
		{"Up k", keys.Up, "k"},
		{"Up arrow", keys.Up, "up"},
		{"Down j", keys.Down, "j"},
		{"Down arrow", keys.Down, "down"},
		{"Top g", keys.Top, "g"},
		{"Bottom G", keys.Bottom, "G"},
		{"Select enter", keys.Select, "enter"},
		{"Back esc", keys.Back, "esc"},
		{"Help ?", keys.Help, "?"},
		{"Tab1 1", keys.Tab1, "1"},
		{"Tab3 3", keys.Tab3, "3"},
		{"NextTab tab", keys.NextTab, "tab"},
		{"PrevTab shift+tab", keys.PrevTab, "shift+tab"},
		{"Refresh r", keys.Refresh, "r"},
		{"Search /", keys.Search, "/"},
		{"Theme t", keys.Theme, "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Contains(tt.binding.Keys(), tt.key) {
				t.Errorf("expected binding %s to include key %s, got keys %v", tt.name, tt.key, tt.binding.Keys())
			}
		})
	}
}

func TestNoDuplicateGlobalKeys(t *testing.T) {
	keys := DefaultKeyMap()

	seen := map[string]string{}
	global := map[string]key.Binding{
		"Quit":    keys.Quit,
		"Help":    keys.Help,
		"Refresh": keys.Refresh,
		"NextTab": keys.NextTab,
		"PrevTab": keys.PrevTab,
		"Tab1":    keys.Tab1,
		"Tab2":    keys.Tab2,
		"Tab3":    keys.Tab3,
	}
	for name, b := range global {
		for _, k := range b.Keys() {
			if other, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}

func TestRelabel(t *testing.T) {
	keys := DefaultKeyMap()

	b := Relabel(keys.Select, "enter", "apply")
	if b.Help().Desc != "apply" {
		t.Errorf("expected desc 'apply', got %q", b.Help().Desc)
	}
	if keys.Select.Help().Desc != "select" {
		t.Errorf("expected original binding untouched, got %q", keys.Select.Help().Desc)
	}
	if !slices.Equal(b.Keys(), keys.Select.Keys()) {
		t.Errorf("expected keys to be kept, got %v", b.Keys())
	}
}

func TestGlobalHelp(t *testing.T) {
	var descs []string
	for _, b := range DefaultKeyMap().GlobalHelp() {
		descs = append(descs, b.Help().Desc)
	}
	for _, want := range []string{"switch views", "reload", "toggle help", "quit"} {
		if !slices.Contains(descs, want) {
			t.Errorf("expected %q in global help, got %v", want, descs)
		}
	}
}
