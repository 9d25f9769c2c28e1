package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/view"
)

// askDelete switches to the delete confirmation for id. Declining returns
// to back.
func (m *Model) askDelete(id string, back screen) {
	m.pendingDelete = id
	m.back = back
	m.screen = screenConfirm
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case km.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(km, m.ckeys.Yes):
		id := m.pendingDelete
		m.pendingDelete = ""
		if _, err := m.repo.Delete(id); err != nil {
			m.log.Warn("delete recipe", zap.String("id", id), zap.Error(err))
		}
		m.detail = nil
		m.screen = screenList
		m.reload()
		return m, m.takeNotice()
	case key.Matches(km, m.ckeys.No):
		m.pendingDelete = ""
		m.screen = m.back
	}
	return m, nil
}

func (m Model) viewConfirm() string {
	t := ui.Current()
	title := m.pendingDelete
	for _, r := range m.recipes {
		if r.ID == m.pendingDelete {
			title = r.Title
			break
		}
	}
	return t.Error.Render(view.ConfirmDelete) + "\n\n" +
		t.Title.Render(ui.Truncate(title, m.innerWidth()-2)) + "\n\n" +
		t.Muted.Render("y delete · n keep")
}
