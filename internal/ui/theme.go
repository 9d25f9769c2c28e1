package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/recipebox/internal/model"
)

// Theme names.
const (
	Dark  = "dark"
	Light = "light"
	Mono  = "mono"
)

// Themes lists the selectable theme names.
var Themes = []string{Dark, Light, Mono}

// Theme bundles palette, star glyphs and borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Info lipgloss.Style
	Selected, Label, Star, StarEmpty           lipgloss.Style
	Easy, Medium, Hard                         lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	StarFull, StarHalf, StarOff string
}

var current = build(Dark)

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	switch strings.ToLower(name) {
	case Dark, Light, Mono:
		return true
	}
	return false
}

// SetTheme switches the active theme. Unknown names fall back to dark.
func SetTheme(name string) {
	current = build(strings.ToLower(name))
}

// Current is the active theme.
func Current() Theme { return current }

// Toggle flips between dark and light. Mono toggles to dark.
func Toggle(name string) string {
	if name == Dark {
		return Light
	}
	return Dark
}

func build(name string) Theme {
	switch name {
	case Light:
		return Theme{
			Name:      Light,
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("91")),
			Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("97")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
			Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
			Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("91")),
			Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Star:      lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
			StarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Easy:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			Medium:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			Hard:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")),

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("250"),
			StarFull:    "★",
			StarHalf:    "⯪",
			StarOff:     "☆",
		}
	case Mono:
		plain := lipgloss.NewStyle()
		return Theme{
			Name:      Mono,
			Title:     plain.Bold(true),
			Muted:     plain,
			Accent:    plain,
			Success:   plain,
			Error:     plain,
			Info:      plain,
			Selected:  plain.Reverse(true),
			Label:     plain,
			Star:      plain,
			StarEmpty: plain,
			Easy:      plain,
			Medium:    plain,
			Hard:      plain,

			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			StarFull:    "*",
			StarHalf:    "+",
			StarOff:     ".",
		}
	default:
		return Theme{
			Name:      Dark,
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("183")),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Star:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			StarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Easy:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Medium:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Hard:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			StarFull:    "★",
			StarHalf:    "⯪",
			StarOff:     "☆",
		}
	}
}

// DifficultyStyle returns the badge style for d.
func (t Theme) DifficultyStyle(d model.Difficulty) lipgloss.Style {
	switch d {
	case model.Medium:
		return t.Medium
	case model.Hard:
		return t.Hard
	default:
		return t.Easy
	}
}
