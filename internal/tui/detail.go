package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/rating"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/validate"
	"github.com/idilsaglam/recipebox/internal/view"
)

// Screen position of the first star cell. The panel border takes row 0 and
// column 0, padding column 1; the stars sit on the fourth body row.
const (
	starsX = 2
	starsY = 4
)

type detailScreen struct {
	recipe *model.Recipe
	widget *rating.Widget
}

// starHit maps a terminal cell to a star and a position within it. Each
// star spans ui.StarCells columns; the first is its left half.
func starHit(x, y int) (star int, xFraction float64, ok bool) {
	col := x - starsX
	if y != starsY || col < 0 || col >= rating.Max*ui.StarCells {
		return 0, 0, false
	}
	star = col/ui.StarCells + 1
	within := col % ui.StarCells
	xFraction = (float64(within) + 0.5) / float64(ui.StarCells)
	return star, xFraction, true
}

func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	r, err := m.repo.Get(id)
	if err != nil {
		m.log.Warn("open recipe", zap.String("id", id), zap.Error(err))
		m.screen = screenList
		m.reload()
		return m, m.takeNotice()
	}
	m.detail = &detailScreen{recipe: &r}
	m.detail.widget = rating.NewWidget(m.detail.recipe, m.repo)
	m.screen = screenDetail
	return m, nil
}

func (m Model) openEdit(id string) (tea.Model, tea.Cmd) {
	r, err := m.repo.Get(id)
	if err != nil {
		m.screen = screenList
		m.reload()
		return m, m.takeNotice()
	}
	return m.openForm(validate.FormFromRecipe(r), true)
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	w := m.detail.widget
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		star, frac, onStar := starHit(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionMotion:
			if onStar {
				w.Move(star, frac)
			} else if w.Previewing() {
				w.Leave()
			}
		case tea.MouseActionPress:
			if onStar && msg.Button == tea.MouseButtonLeft {
				return m.afterCommit(w.Press(star, frac))
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.dkeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.dkeys.Lower):
			w.Nudge(-1)
		case key.Matches(msg, m.dkeys.Raise):
			w.Nudge(1)
		case key.Matches(msg, m.dkeys.Commit):
			return m.afterCommit(w.Commit())
		case key.Matches(msg, m.dkeys.Digit):
			return m.afterCommit(w.Set(float64(msg.Runes[0] - '0')))
		case key.Matches(msg, m.dkeys.Edit):
			return m.openForm(validate.FormFromRecipe(*m.detail.recipe), true)
		case key.Matches(msg, m.dkeys.Delete):
			m.askDelete(m.detail.recipe.ID, screenDetail)
		case key.Matches(msg, m.dkeys.Back):
			w.Leave()
			m.screen = screenList
			m.detail = nil
			m.reload()
		}
	}
	return m, nil
}

// afterCommit refreshes the list behind the detail screen once a rating
// was written and surfaces any save failure.
func (m Model) afterCommit(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.log.Warn("save rating", zap.String("id", m.detail.recipe.ID), zap.Error(err))
	}
	m.reload()
	return m, m.takeNotice()
}

func (m Model) viewDetail() string {
	t := ui.Current()
	d := view.NewDetail(*m.detail.recipe, m.detail.widget.Display())
	width := m.innerWidth() - 2

	label := t.Muted.Render(d.Rating.Text)
	if d.Rating.Preview {
		label = t.Accent.Render(d.Rating.Text)
	}

	lines := []string{
		t.Title.Render(ui.Truncate(d.Title, width)),
		ui.Truncate(strings.Join([]string{
			ui.Badge(d.Difficulty),
			t.Label.Render("Prep ") + d.Prep,
			t.Label.Render("Cook ") + d.Cook,
			t.Label.Render("Total ") + d.Total,
		}, t.Muted.Render("  ·  ")), width),
		"",
		ui.Stars(d.Rating.Stars) + label,
		"",
	}
	if d.Description != "" {
		lines = append(lines, d.Description, "")
	}
	if d.ImageURL != "" {
		lines = append(lines, t.Muted.Render(ui.Truncate(d.ImageURL, width)), "")
	}

	lines = append(lines, t.Accent.Render("Ingredients"))
	if len(d.Ingredients) == 0 {
		lines = append(lines, t.Muted.Render(view.NoIngredients))
	}
	for _, ing := range d.Ingredients {
		lines = append(lines, "  • "+ing)
	}

	lines = append(lines, "", t.Accent.Render("Steps"))
	if len(d.Steps) == 0 {
		lines = append(lines, t.Muted.Render(view.NoSteps))
	}
	for i, step := range d.Steps {
		lines = append(lines, fmt.Sprintf("  %2d. %s", i+1, step))
	}
	return strings.Join(lines, "\n")
}
