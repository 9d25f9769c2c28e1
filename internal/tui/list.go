package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/recipebox/internal/filter"
	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/validate"
	"github.com/idilsaglam/recipebox/internal/view"
)

// cardItem adapts a view.Card to bubbles/list.Item
type cardItem struct{ view.Card }

func (i cardItem) FilterValue() string { return i.Title }

// cardDelegate renders a card as a title line and a meta line.
type cardDelegate struct{ width int }

func (d cardDelegate) Height() int                               { return 2 }
func (d cardDelegate) Spacing() int                              { return 1 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(cardItem)
	if !ok {
		return
	}
	c := it.Card
	c.Title = ui.Truncate(c.Title, d.width-2)
	title, meta := ui.CardLines(c, index == m.Index())
	fmt.Fprint(w, title+"\n"+meta)
}

func (m Model) newList() list.Model {
	l := list.New(nil, cardDelegate{width: m.innerWidth()}, m.innerWidth(), max(m.height-6, 4))
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = m.lkeys.extra
	l.AdditionalFullHelpKeys = m.lkeys.extra
	styleList(&l)
	return l
}

func styleList(l *list.Model) {
	t := ui.Current()
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
}

// restyleList reapplies the theme while keeping items and selection.
func (m Model) restyleList() list.Model {
	l := m.list
	styleList(&l)
	return l
}

// refreshList rebuilds list items from the collection and the criteria.
func (m *Model) refreshList() {
	lv := view.NewList(m.recipes, m.criteria)
	items := make([]list.Item, len(lv.Cards))
	for i, c := range lv.Cards {
		items[i] = cardItem{c}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = m.listTitle(lv)
}

func (m Model) listTitle(lv view.List) string {
	title := fmt.Sprintf("Recipes  %d", lv.Shown)
	if lv.Shown != lv.Total {
		title = fmt.Sprintf("Recipes  %d of %d", lv.Shown, lv.Total)
	}
	return title
}

// filterSummary describes the active filters, or "" when none are set.
func (m Model) filterSummary() string {
	c := m.criteria.Normalize()
	var parts []string
	if c.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", m.criteria.Search))
	}
	if c.Difficulty != filter.All {
		parts = append(parts, view.DifficultyLabel(model.Difficulty(c.Difficulty)))
	}
	if c.MaxTotalMinutes > 0 {
		parts = append(parts, "≤ "+view.FormatDuration(c.MaxTotalMinutes))
	}
	return strings.Join(parts, " · ")
}

func (m Model) selectedCard() (view.Card, bool) {
	it, ok := m.list.SelectedItem().(cardItem)
	if !ok {
		return view.Card{}, false
	}
	return it.Card, true
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.search.active {
		return m.updateSearch(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.lkeys.Quit):
			return m, tea.Quit
		case key.Matches(km, m.lkeys.Open):
			if c, ok := m.selectedCard(); ok {
				return m.openDetail(c.ID)
			}
			return m, nil
		case key.Matches(km, m.lkeys.Add):
			return m.openForm(validate.NewForm(), false)
		case key.Matches(km, m.lkeys.Edit):
			if c, ok := m.selectedCard(); ok {
				return m.openEdit(c.ID)
			}
			return m, nil
		case key.Matches(km, m.lkeys.Delete):
			if c, ok := m.selectedCard(); ok {
				m.askDelete(c.ID, screenList)
			}
			return m, nil
		case key.Matches(km, m.lkeys.Search):
			return m, m.search.focus(m.criteria.Search)
		case key.Matches(km, m.lkeys.Difficulty):
			m.criteria.Difficulty = filter.NextDifficulty(m.criteria.Difficulty)
			m.refreshList()
			return m, nil
		case key.Matches(km, m.lkeys.Time):
			m.criteria.MaxTotalMinutes = filter.NextBucket(m.criteria.MaxTotalMinutes)
			m.refreshList()
			return m, nil
		case key.Matches(km, m.lkeys.Clear):
			m.criteria = filter.Criteria{Difficulty: filter.All}
			m.refreshList()
			return m, nil
		case key.Matches(km, m.lkeys.Theme):
			return m, m.toggleTheme()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) viewList() string {
	t := ui.Current()
	var lines []string
	if m.search.active {
		lines = append(lines, m.search.input.View())
	} else if s := m.filterSummary(); s != "" {
		lines = append(lines, t.Accent.Render("Filters: ")+t.Muted.Render(s))
	}
	if len(m.list.Items()) == 0 {
		lines = append(lines, t.Title.Render(m.list.Title), "", ui.EmptyState(), "",
			t.Muted.Render("a add · c clear filters · q quit"))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, m.list.View())
	return strings.Join(lines, "\n")
}

// searchBar is the inline search input. The list filters live as the user
// types; enter keeps the term, esc restores the previous one.
type searchBar struct {
	input  textinput.Model
	active bool
	before string
}

func newSearchBar() searchBar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search recipes..."
	ti.CharLimit = 100
	return searchBar{input: ti}
}

func (s *searchBar) setWidth(w int) { s.input.Width = max(w-4, 10) }

func (s *searchBar) focus(current string) tea.Cmd {
	s.active = true
	s.before = current
	s.input.SetValue(current)
	s.input.CursorEnd()
	return s.input.Focus()
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			m.search.active = false
			m.search.input.Blur()
			return m, nil
		case "esc":
			m.search.active = false
			m.search.input.Blur()
			m.criteria.Search = m.search.before
			m.refreshList()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	if m.search.input.Value() != m.criteria.Search {
		m.criteria.Search = m.search.input.Value()
		m.refreshList()
	}
	return m, cmd
}
