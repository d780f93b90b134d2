package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/journal/internal/config"
)

func TestResolveThemeDefaultDark(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})

	if theme.Primary != lipgloss.Color("15") {
		t.Errorf("expected white primary, got %q", theme.Primary)
	}
	if theme.Danger != lipgloss.Color("9") {
		t.Errorf("expected red danger, got %q", theme.Danger)
	}
	if theme.Accent != lipgloss.Color("11") {
		t.Errorf("expected yellow accent, got %q", theme.Accent)
	}
}

func TestResolveThemeEmptyPreset(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	if theme != presets["default-dark"] {
		t.Errorf("expected default-dark for empty preset, got %+v", theme)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	cfg := config.ThemeConfig{
		Preset:  "default-dark",
		Primary: "#FF0000",
		Accent:  "#00FF00",
		Danger:  "#0000FF",
		Muted:   "#777777",
	}
	theme := ResolveTheme(cfg)

	if string(theme.Primary) != "#FF0000" {
		t.Errorf("expected primary '#FF0000', got %q", string(theme.Primary))
	}
	if string(theme.Accent) != "#00FF00" {
		t.Errorf("expected accent '#00FF00', got %q", string(theme.Accent))
	}
	if string(theme.Danger) != "#0000FF" {
		t.Errorf("expected danger '#0000FF', got %q", string(theme.Danger))
	}
	if string(theme.Muted) != "#777777" {
		t.Errorf("expected muted '#777777', got %q", string(theme.Muted))
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "nonexistent"})
	if theme != presets["default-dark"] {
		t.Errorf("expected fallback to default-dark, got %+v", theme)
	}
}

func TestAllPresetsComplete(t *testing.T) {
	for name, p := range presets {
		if p.Primary == "" || p.Accent == "" || p.Danger == "" || p.Muted == "" {
			t.Errorf("preset %q has an empty color: %+v", name, p)
		}
		if p.Primary == p.Danger {
			t.Errorf("preset %q: existing and missing rows share a color", name)
		}
	}
}
