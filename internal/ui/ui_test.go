package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/recipebox/internal/rating"
	"github.com/idilsaglam/recipebox/internal/recipe"
	"github.com/idilsaglam/recipebox/internal/store/memstore"
	"github.com/idilsaglam/recipebox/internal/view"
)

func useTheme(t *testing.T, name string) {
	t.Helper()
	prev := Current().Name
	SetTheme(name)
	t.Cleanup(func() { SetTheme(prev) })
}

func TestSetThemeFallsBackToDark(t *testing.T) {
	useTheme(t, "neon")
	assert.Equal(t, Dark, Current().Name)

	SetTheme("LIGHT")
	assert.Equal(t, Light, Current().Name)
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Light, Toggle(Dark))
	assert.Equal(t, Dark, Toggle(Light))
	assert.Equal(t, Dark, Toggle(Mono))
}

func TestStarsWidth(t *testing.T) {
	useTheme(t, Mono)
	got := Stars(rating.Stars(2.5))
	assert.Equal(t, "* * + . . ", got)
	assert.Equal(t, rating.Max*StarCells, lipgloss.Width(got))
}

func TestThemePreference(t *testing.T) {
	s := memstore.New(0)

	name, err := StoredTheme(s)
	require.NoError(t, err)
	assert.Equal(t, Dark, name)

	require.NoError(t, StoreTheme(s, "Light"))
	v, _, _ := s.Get(ThemeKey)
	assert.Equal(t, "light", v)

	name, err = StoredTheme(s)
	require.NoError(t, err)
	assert.Equal(t, Light, name)

	assert.Error(t, StoreTheme(s, "sepia"))

	require.NoError(t, s.Set(ThemeKey, "garbage"))
	name, err = StoredTheme(s)
	require.NoError(t, err)
	assert.Equal(t, Dark, name)
}

func TestResolveTheme(t *testing.T) {
	s := memstore.New(0)
	require.NoError(t, StoreTheme(s, Light))
	assert.Equal(t, Mono, ResolveTheme("mono", s))
	assert.Equal(t, Light, ResolveTheme("", s))
}

func TestStoreThemeSetFailure(t *testing.T) {
	s := memstore.New(0)
	s.FailWith = errors.New("read-only")
	assert.ErrorContains(t, StoreTheme(s, Dark), "read-only")
}

func TestNotifierRoutesBySeverity(t *testing.T) {
	SetColorForcing(false, true)
	t.Cleanup(func() { SetColorForcing(false, false) })

	var out, errOut bytes.Buffer
	n := Notifier(&out, &errOut)
	n.Notify(recipe.Notice{Severity: recipe.Success, Message: "saved"})
	n.Notify(recipe.Notice{Severity: recipe.Error, Message: "broken"})
	n.Notify(recipe.Notice{Severity: recipe.Info, Message: "fyi"})

	assert.Equal(t, "✔ saved\nℹ fyi\n", out.String())
	assert.Equal(t, "✖ broken\n", errOut.String())
}

func TestCardLinesAndEmptyState(t *testing.T) {
	useTheme(t, Mono)
	c := view.NewCard(recipe.Samples()[0])
	title, meta := CardLines(c, true)
	assert.Contains(t, title, "Classic Dal & Rice")
	assert.True(t, strings.HasPrefix(title, "> ") || strings.Contains(title, ">"))
	assert.Contains(t, meta, "45m")
	assert.Contains(t, meta, "Easy")
	assert.Contains(t, meta, "4.0/5")

	empty := EmptyState()
	assert.Contains(t, empty, view.EmptyHeading)
	assert.Contains(t, empty, view.EmptyHint)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "abc", Truncate("abc", 0))
}
