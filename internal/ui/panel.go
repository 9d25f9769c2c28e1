package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/rating"
	"github.com/idilsaglam/recipebox/internal/view"
)

// StarCells is the width of one rendered star, glyph plus gap. Pointer hit
// testing relies on it: the first cell of a slot is the left half.
const StarCells = 2

// PanelStyle frames content with the current theme's border.
func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
}

// Panel draws a framed box around lines using the current theme.
func Panel(lines []string) string {
	return PanelStyle().Render(strings.Join(lines, "\n"))
}

// Stars renders five star slots, each StarCells wide.
func Stars(states [rating.Max]rating.State) string {
	var b strings.Builder
	for _, s := range states {
		var glyph string
		switch s {
		case rating.Full:
			glyph = current.Star.Render(current.StarFull)
		case rating.Half:
			glyph = current.Star.Render(current.StarHalf)
		default:
			glyph = current.StarEmpty.Render(current.StarOff)
		}
		b.WriteString(glyph)
		b.WriteString(strings.Repeat(" ", StarCells-1))
	}
	return b.String()
}

// Badge renders a difficulty label in its color.
func Badge(d model.Difficulty) string {
	return current.DifficultyStyle(d).Render(view.DifficultyLabel(d))
}

// CardLines renders a list card as a title line and a meta line.
func CardLines(c view.Card, selected bool) (string, string) {
	title := c.Title
	prefix := "  "
	if selected {
		prefix = current.Selected.Render("> ")
		title = current.Selected.Render(title)
	}
	meta := strings.Join([]string{
		current.Muted.Render(c.Duration),
		Badge(c.Difficulty),
		Stars(c.Stars) + current.Muted.Render(c.RatingText),
	}, current.Muted.Render("  ·  "))
	return prefix + title, "  " + meta
}

// EmptyState renders the "no recipes" block.
func EmptyState() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		current.Title.Render(view.EmptyHeading),
		current.Muted.Render(view.EmptyHint),
	)
}

// Truncate cuts s to width cells, adding an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
