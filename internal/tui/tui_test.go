package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/idilsaglam/recipebox/internal/recipe"
	"github.com/idilsaglam/recipebox/internal/store/memstore"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/validate"
	"github.com/idilsaglam/recipebox/internal/view"
)

type harness struct {
	store *memstore.Store
	repo  *recipe.Repository
}

func newHarness(t *testing.T) (Model, harness) {
	t.Helper()
	return newHarnessWith(t, memstore.New(0))
}

func newHarnessWith(t *testing.T, s *memstore.Store) (Model, harness) {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme(ui.Dark) })
	notices := &recipe.Notices{}
	repo := recipe.New(s, zaptest.NewLogger(t), notices, recipe.Options{})
	m := New(Options{Repo: repo, Notices: notices, Prefs: s, Mouse: true, Log: zaptest.NewLogger(t)})
	return m, harness{store: s, repo: repo}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
	right    = tea.KeyMsg{Type: tea.KeyRight}
	save     = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func titles(m Model) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(cardItem).Title)
	}
	return out
}

func TestNewSeedsOnFirstRun(t *testing.T) {
	m, h := newHarness(t)

	assert.Equal(t, screenList, m.screen)
	assert.Len(t, m.list.Items(), 4)
	assert.Equal(t, "Recipes  4", m.list.Title)
	_, ok, err := h.store.Get(recipe.DefaultKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, m.View(), "Classic Dal & Rice")
}

func TestNewRepairsCorruptStore(t *testing.T) {
	s := memstore.New(0)
	require.NoError(t, s.Set(recipe.DefaultKey, "{oops"))

	m, _ := newHarnessWith(t, s)

	assert.Len(t, m.list.Items(), 4)
	require.NotNil(t, m.notice)
	assert.Equal(t, recipe.Error, m.notice.Severity)
}

func TestSearchFiltersLiveAndEscRestores(t *testing.T) {
	m, _ := newHarness(t)

	m = send(m, runes("/"), runes("dal"))
	assert.True(t, m.search.active)
	assert.Equal(t, []string{"Classic Dal & Rice"}, titles(m))
	assert.Equal(t, "Recipes  1 of 4", m.list.Title)

	m = send(m, esc)
	assert.False(t, m.search.active)
	assert.Len(t, m.list.Items(), 4)

	m = send(m, runes("/"), runes("BREAD"), enter)
	assert.False(t, m.search.active)
	assert.Equal(t, "BREAD", m.criteria.Search)
	assert.Equal(t, []string{"Chocolate Banana Bread"}, titles(m))
	assert.Contains(t, m.View(), `search "BREAD"`)
}

func TestDifficultyAndTimeFilters(t *testing.T) {
	m, _ := newHarness(t)

	m = send(m, runes("f"))
	assert.Equal(t, []string{"Classic Dal & Rice", "Chocolate Banana Bread"}, titles(m))
	m = send(m, runes("f"))
	assert.Equal(t, []string{"Violet Velvet Cake", "Paneer Butter Masala"}, titles(m))
	m = send(m, runes("f"))
	assert.Empty(t, titles(m))
	assert.Contains(t, m.View(), view.EmptyHeading)

	m = send(m, runes("c"))
	assert.Len(t, titles(m), 4)

	m = send(m, runes("m"), runes("m"), runes("m"))
	assert.Equal(t, 60, m.criteria.MaxTotalMinutes)
	assert.Equal(t, []string{"Classic Dal & Rice", "Violet Velvet Cake", "Paneer Butter Masala"}, titles(m))
}

func TestOpenDetailAndBack(t *testing.T) {
	m, _ := newHarness(t)

	m = send(m, enter)
	require.Equal(t, screenDetail, m.screen)
	assert.Equal(t, "classic-dal-rice", m.detail.recipe.ID)
	assert.Contains(t, m.View(), "Ingredients")

	m = send(m, esc)
	assert.Equal(t, screenList, m.screen)
	assert.Nil(t, m.detail)
}

func TestMouseHoverPreviewsAndPressCommits(t *testing.T) {
	m, h := newHarness(t)
	m = send(m, enter)

	// third star, left half
	hover := tea.MouseMsg{X: starsX + 4, Y: starsY, Action: tea.MouseActionMotion}
	m = send(m, hover)
	assert.True(t, m.detail.widget.Previewing())
	assert.Equal(t, 2.5, m.detail.widget.Shown())
	stored, err := h.repo.Get("classic-dal-rice")
	require.NoError(t, err)
	assert.Equal(t, 4.0, stored.Rating, "hover must not persist")

	m = send(m, tea.MouseMsg{X: starsX + 4, Y: 0, Action: tea.MouseActionMotion})
	assert.False(t, m.detail.widget.Previewing())
	assert.Equal(t, 4.0, m.detail.widget.Shown())

	m = send(m, tea.MouseMsg{X: starsX + 5, Y: starsY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 3.0, m.detail.widget.Current())
	stored, err = h.repo.Get("classic-dal-rice")
	require.NoError(t, err)
	assert.Equal(t, 3.0, stored.Rating)
}

func TestMouseIgnoredWhenDisabled(t *testing.T) {
	m, _ := newHarness(t)
	m.mouse = false
	m = send(m, enter, tea.MouseMsg{X: starsX, Y: starsY, Action: tea.MouseActionMotion})
	assert.False(t, m.detail.widget.Previewing())
}

func TestKeyboardRating(t *testing.T) {
	m, h := newHarness(t)
	m = send(m, enter)

	m = send(m, left)
	assert.True(t, m.detail.widget.Previewing())
	assert.Equal(t, 3.5, m.detail.widget.Shown())

	m = send(m, enter)
	stored, err := h.repo.Get("classic-dal-rice")
	require.NoError(t, err)
	assert.Equal(t, 3.5, stored.Rating)

	m = send(m, runes("5"))
	stored, err = h.repo.Get("classic-dal-rice")
	require.NoError(t, err)
	assert.Equal(t, 5.0, stored.Rating)

	m = send(m, esc)
	card, ok := m.selectedCard()
	require.True(t, ok)
	assert.Equal(t, "classic-dal-rice", card.ID)
	assert.Equal(t, "5.0/5", card.RatingText)
}

func TestRatingSaveFailureShowsNotice(t *testing.T) {
	m, h := newHarness(t)
	m = send(m, enter)
	h.store.FailWith = errors.New("disk gone")

	m = send(m, runes("2"))

	require.NotNil(t, m.notice)
	assert.Equal(t, recipe.Error, m.notice.Severity)
}

func TestDeleteConfirm(t *testing.T) {
	m, _ := newHarness(t)

	m = send(m, runes("d"))
	require.Equal(t, screenConfirm, m.screen)
	assert.Contains(t, m.View(), view.ConfirmDelete)
	assert.Contains(t, m.View(), "Classic Dal & Rice")

	m = send(m, runes("n"))
	assert.Equal(t, screenList, m.screen)
	assert.Len(t, titles(m), 4)

	m = send(m, runes("d"), runes("y"))
	assert.Equal(t, screenList, m.screen)
	assert.NotContains(t, titles(m), "Classic Dal & Rice")
	require.NotNil(t, m.notice)
	assert.Equal(t, `Recipe "Classic Dal & Rice" deleted successfully!`, m.notice.Message)
}

func TestDeleteFromDetailDeclineReturnsToDetail(t *testing.T) {
	m, _ := newHarness(t)

	m = send(m, enter, runes("d"), esc)
	assert.Equal(t, screenDetail, m.screen)

	m = send(m, runes("d"), runes("Y"))
	assert.Equal(t, screenList, m.screen)
	assert.Nil(t, m.detail)
	assert.Len(t, titles(m), 3)
}

func TestFormSubmitWithErrors(t *testing.T) {
	m, _ := newHarness(t)

	m = send(m, runes("a"))
	require.Equal(t, screenForm, m.screen)
	assert.Contains(t, m.View(), "Add New Recipe")

	m = send(m, save)
	assert.Equal(t, screenForm, m.screen)
	require.NotNil(t, m.notice)
	assert.Equal(t, view.FormHasErrors, m.notice.Message)
	assert.Equal(t, "Recipe title is required", m.form.errs[validate.Title])
	assert.Contains(t, m.form.errs, validate.PrepTime)
	assert.NotContains(t, m.form.errs, validate.CookTime)
	assert.Equal(t, fTitle, m.form.focus)
}

func TestFormBlurValidatesAndTypingClears(t *testing.T) {
	m, _ := newHarness(t)

	m = send(m, runes("a"), runes("x"), tab)
	assert.Equal(t, "Title must be at least 2 characters long", m.form.errs[validate.Title])
	assert.Equal(t, fDescription, m.form.focus)

	m = send(m, shiftTab, runes("y"))
	assert.NotContains(t, m.form.errs, validate.Title)
}

func TestFormAddsRecipe(t *testing.T) {
	m, h := newHarness(t)

	m = send(m, runes("a"),
		runes("Toast"), tab,
		runes("Crisp golden bread"), tab,
		runes("Bread"), tab,
		runes("Toast it"), tab,
		tab, runes("5"), tab,
		tab, tab,
		right,
	)
	assert.Equal(t, fDifficulty, m.form.focus)
	m = send(m, save)

	require.Equal(t, screenList, m.screen)
	assert.Nil(t, m.form)
	assert.Len(t, titles(m), 5)
	card, ok := m.selectedCard()
	require.True(t, ok)
	assert.Equal(t, "Toast", card.Title)
	require.NotNil(t, m.notice)
	assert.Equal(t, `Recipe "Toast" added successfully!`, m.notice.Message)

	got, err := h.repo.Get(card.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.PrepTime)
	assert.Equal(t, "medium", string(got.Difficulty))
	assert.Equal(t, []string{"Bread"}, got.Ingredients)
	assert.Zero(t, got.Rating)
}

func TestFormEditKeepsRating(t *testing.T) {
	m, h := newHarness(t)

	m = send(m, enter, runes("e"))
	require.Equal(t, screenForm, m.screen)
	assert.True(t, m.form.editing)
	assert.Equal(t, "Classic Dal & Rice", m.form.title.Value())
	assert.Equal(t, "15", m.form.prepM.Value())
	assert.Contains(t, m.View(), "Edit Recipe")

	m = send(m, runes("!"), save)
	require.Equal(t, screenList, m.screen)
	got, err := h.repo.Get("classic-dal-rice")
	require.NoError(t, err)
	assert.Equal(t, "Classic Dal & Rice!", got.Title)
	assert.Equal(t, 4.0, got.Rating)
	assert.Equal(t, `Recipe "Classic Dal & Rice!" updated successfully!`, m.notice.Message)
}

func TestFormCancel(t *testing.T) {
	m, _ := newHarness(t)
	m = send(m, runes("a"), runes("Soup"), esc)
	assert.Equal(t, screenList, m.screen)
	assert.Nil(t, m.form)
	assert.Len(t, titles(m), 4)
}

func TestThemeTogglePersists(t *testing.T) {
	m, h := newHarness(t)
	require.Equal(t, ui.Dark, ui.Current().Name)

	m = send(m, runes("t"))
	assert.Equal(t, ui.Light, ui.Current().Name)
	v, ok, err := h.store.Get(ui.ThemeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ui.Light, v)

	send(m, runes("t"))
	v, _, _ = h.store.Get(ui.ThemeKey)
	assert.Equal(t, ui.Dark, v)
}

func TestFatalQuitsOnAnyKey(t *testing.T) {
	m := Fatal(errors.New("boom"))
	out := m.View()
	assert.Contains(t, out, view.FatalHeading)
	assert.Contains(t, out, "boom")

	_, cmd := m.Update(runes("x"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNoticeExpiry(t *testing.T) {
	m, _ := newHarness(t)
	m = send(m, runes("d"), runes("y"))
	require.NotNil(t, m.notice)

	m = send(m, noticeExpired{seq: m.noticeSeq - 1})
	assert.NotNil(t, m.notice, "stale timer must not clear a newer notice")

	m = send(m, noticeExpired{seq: m.noticeSeq})
	assert.Nil(t, m.notice)
}

func TestWindowResize(t *testing.T) {
	m, _ := newHarness(t)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 116, m.innerWidth())
	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 120)
	}
}

func TestStarHit(t *testing.T) {
	tests := []struct {
		x, y     int
		star     int
		fraction float64
		ok       bool
	}{
		{x: starsX, y: starsY, star: 1, fraction: 0.25, ok: true},
		{x: starsX + 1, y: starsY, star: 1, fraction: 0.75, ok: true},
		{x: starsX + 9, y: starsY, star: 5, fraction: 0.75, ok: true},
		{x: starsX + 10, y: starsY},
		{x: starsX - 1, y: starsY},
		{x: starsX, y: starsY + 1},
	}
	for _, tt := range tests {
		star, frac, ok := starHit(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.star, star, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.fraction, frac, "(%d,%d)", tt.x, tt.y)
	}
}
