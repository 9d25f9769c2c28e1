package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/recipebox/internal/filter"
	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/rating"
	"github.com/idilsaglam/recipebox/internal/recipe"
)

func TestFormatDuration(t *testing.T) {
	for in, want := range map[int]string{
		-4:   "0m",
		0:    "0m",
		1:    "1m",
		45:   "45m",
		60:   "1h",
		90:   "1h 30m",
		120:  "2h",
		1440: "24h",
		1439: "23h 59m",
	} {
		assert.Equal(t, want, FormatDuration(in), "FormatDuration(%d)", in)
	}
}

func TestDifficultyLabel(t *testing.T) {
	assert.Equal(t, "Easy", DifficultyLabel(model.Easy))
	assert.Equal(t, "Medium", DifficultyLabel(model.Medium))
	assert.Equal(t, "Hard", DifficultyLabel(model.Hard))
	assert.Equal(t, "Easy", DifficultyLabel("impossible"))
}

func TestNewCard(t *testing.T) {
	c := NewCard(model.Recipe{
		ID: "x", Title: "Toast", PrepTime: 5, CookTime: 70,
		Difficulty: "weird", Rating: 3.5,
	})
	assert.Equal(t, "1h 15m", c.Duration)
	assert.Equal(t, model.Easy, c.Difficulty)
	assert.Equal(t, "Easy", c.Label)
	assert.Equal(t, "3.5/5", c.RatingText)
	assert.Equal(t, [rating.Max]rating.State{rating.Full, rating.Full, rating.Full, rating.Half, rating.Empty}, c.Stars)

	unrated := NewCard(model.Recipe{Title: "Water"})
	assert.Equal(t, "No rating", unrated.RatingText)
	assert.Equal(t, "0m", unrated.Duration)
}

func TestNewListEmptyState(t *testing.T) {
	l := NewList(recipe.Samples(), filter.Criteria{Search: "sushi"})
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Shown)
	assert.Equal(t, 4, l.Total)

	l = NewList(nil, filter.Criteria{})
	assert.True(t, l.Empty())
}

func TestNewListKeepsOrder(t *testing.T) {
	l := NewList(recipe.Samples(), filter.Criteria{Difficulty: "easy"})
	require.Len(t, l.Cards, 2)
	assert.Equal(t, "classic-dal-rice", l.Cards[0].ID)
	assert.Equal(t, "chocolate-banana-bread", l.Cards[1].ID)
	assert.Equal(t, "Easy", l.Cards[0].Label)
	assert.Equal(t, "45m", l.Cards[0].Duration)
	assert.Equal(t, "1h 10m", l.Cards[1].Duration)
}

func TestStaticDetail(t *testing.T) {
	r := recipe.Samples()[0]
	d := StaticDetail(r)
	assert.Equal(t, "15m", d.Prep)
	assert.Equal(t, "30m", d.Cook)
	assert.Equal(t, "45m", d.Total)
	assert.Equal(t, "Your rating: 4.0 / 5", d.Rating.Text)
	assert.False(t, d.Rating.Preview)
	assert.Equal(t, r.Ingredients, d.Ingredients)
}

func TestNewDetailWithPreview(t *testing.T) {
	r := recipe.Samples()[0]
	w := rating.NewWidget(&r, nil)
	w.Move(2, 0.1)
	d := NewDetail(r, w.Display())
	assert.True(t, d.Rating.Preview)
	assert.Equal(t, "1.5 / 5", d.Rating.Text)
}

func TestFormTitle(t *testing.T) {
	assert.Equal(t, "Add New Recipe", FormTitle(false))
	assert.Equal(t, "Edit Recipe", FormTitle(true))
}

func TestMarkdown(t *testing.T) {
	md := Markdown(recipe.Samples()[0])
	assert.True(t, strings.HasPrefix(md, "# Classic Dal & Rice\n"))
	assert.Contains(t, md, "**Easy** · Prep 15m · Cook 30m · Total 45m · Your rating: 4.0 / 5")
	assert.Contains(t, md, "## Ingredients\n\n- ")
	assert.Contains(t, md, "## Steps\n\n1. ")

	bare := Markdown(model.Recipe{Title: "Bare", Difficulty: model.Hard})
	assert.Contains(t, bare, "_"+NoIngredients+"_")
	assert.Contains(t, bare, "_"+NoSteps+"_")
	assert.NotContains(t, bare, "![")

	all := MarkdownAll(recipe.Samples()[:2])
	assert.Equal(t, 1, strings.Count(all, "\n---\n"))
}
