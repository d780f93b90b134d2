package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/journal/internal/config"
)

// Theme holds resolved lipgloss colors for picker rendering.
type Theme struct {
	Primary lipgloss.Color // rows whose file exists
	Accent  lipgloss.Color // selection arrow
	Danger  lipgloss.Color // rows whose file is missing
	Muted   lipgloss.Color // instruction line
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary: lipgloss.Color("15"),
		Accent:  lipgloss.Color("11"),
		Danger:  lipgloss.Color("9"),
		Muted:   lipgloss.Color("245"),
	},
	"default-light": {
		Primary: lipgloss.Color("0"),
		Accent:  lipgloss.Color("3"),
		Danger:  lipgloss.Color("1"),
		Muted:   lipgloss.Color("240"),
	},
	"dracula": {
		Primary: lipgloss.Color("#F8F8F2"),
		Accent:  lipgloss.Color("#F1FA8C"),
		Danger:  lipgloss.Color("#FF5555"),
		Muted:   lipgloss.Color("#6272A4"),
	},
	"catppuccin-mocha": {
		Primary: lipgloss.Color("#CDD6F4"),
		Accent:  lipgloss.Color("#F9E2AF"),
		Danger:  lipgloss.Color("#F38BA8"),
		Muted:   lipgloss.Color("#6C7086"),
	},
	"gruvbox-dark": {
		Primary: lipgloss.Color("#EBDBB2"),
		Accent:  lipgloss.Color("#FABD2F"),
		Danger:  lipgloss.Color("#FB4934"),
		Muted:   lipgloss.Color("#928374"),
	},
	"gruvbox-light": {
		Primary: lipgloss.Color("#3C3836"),
		Accent:  lipgloss.Color("#D79921"),
		Danger:  lipgloss.Color("#CC241D"),
		Muted:   lipgloss.Color("#928374"),
	},
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	preset := cfg.Preset
	if preset == "" {
		preset = "default-dark"
	}

	theme, ok := presets[preset]
	if !ok {
		theme = presets["default-dark"]
	}

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Danger != "" {
		theme.Danger = lipgloss.Color(cfg.Danger)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}

	return theme
}

// ExistingStyle returns the style for rows whose file exists.
func (t Theme) ExistingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary)
}

// MissingStyle returns the style for rows whose file does not exist yet.
func (t Theme) MissingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger)
}

// CursorStyle returns the style for the selection arrow.
func (t Theme) CursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}
