// Package view turns recipes into plain render values. Nothing here draws;
// the TUI and the CLI style these values their own way.
package view

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/idilsaglam/recipebox/internal/filter"
	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/rating"
)

// Fixed user-facing copy.
const (
	EmptyHeading  = "No recipes found"
	EmptyHint     = "Try adjusting your search or add a new recipe."
	ConfirmDelete = "Are you sure you want to delete this recipe? This action cannot be undone."
	FormHasErrors = "Please fix the errors in the form before submitting."
	FatalHeading  = "Something went wrong"
	FatalHint     = "Please restart recipebox. Your saved recipes were not modified."
	NoIngredients = "No ingredients listed."
	NoSteps       = "No steps listed."
)

var titleCaser = cases.Title(language.English)

// FormatDuration renders minutes as "0m", "45m", "2h" or "1h 30m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// DifficultyLabel capitalizes d for display. Unknown levels show as Easy.
func DifficultyLabel(d model.Difficulty) string {
	if !d.Valid() {
		d = model.Easy
	}
	return titleCaser.String(string(d))
}

// Card is one entry of the recipe list.
type Card struct {
	ID          string
	Title       string
	Description string
	Duration    string
	Difficulty  model.Difficulty
	Label       string
	Stars       [rating.Max]rating.State
	RatingText  string
	ImageURL    string
}

// NewCard builds the card for r.
func NewCard(r model.Recipe) Card {
	d := r.Difficulty
	if !d.Valid() {
		d = model.Easy
	}
	return Card{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Duration:    FormatDuration(r.TotalTime()),
		Difficulty:  d,
		Label:       DifficultyLabel(d),
		Stars:       rating.Stars(rating.Normalize(r.Rating)),
		RatingText:  rating.CardText(r.Rating),
		ImageURL:    r.ImageURL,
	}
}

// List is the home screen: the filtered cards, or the empty state.
type List struct {
	Cards    []Card
	Shown    int
	Total    int
	Criteria filter.Criteria
}

// Empty reports whether the empty state should be shown instead of cards.
func (l List) Empty() bool { return len(l.Cards) == 0 }

// NewList filters recipes by c and builds their cards in order.
func NewList(recipes []model.Recipe, c filter.Criteria) List {
	matched := filter.Recipes(recipes, c)
	cards := make([]Card, len(matched))
	for i, r := range matched {
		cards[i] = NewCard(r)
	}
	return List{Cards: cards, Shown: len(cards), Total: len(recipes), Criteria: c.Normalize()}
}

// Detail is the full recipe screen.
type Detail struct {
	ID          string
	Title       string
	Description string
	Label       string
	Difficulty  model.Difficulty
	Prep        string
	Cook        string
	Total       string
	Ingredients []string
	Steps       []string
	ImageURL    string
	Rating      rating.Display
}

// NewDetail builds the detail screen for r with the rating widget's current
// display.
func NewDetail(r model.Recipe, d rating.Display) Detail {
	card := NewCard(r)
	return Detail{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Label:       card.Label,
		Difficulty:  card.Difficulty,
		Prep:        FormatDuration(r.PrepTime),
		Cook:        FormatDuration(r.CookTime),
		Total:       card.Duration,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		ImageURL:    r.ImageURL,
		Rating:      d,
	}
}

// StaticDetail is NewDetail with the stored rating and no preview.
func StaticDetail(r model.Recipe) Detail {
	v := rating.Normalize(r.Rating)
	return NewDetail(r, rating.Display{
		Stars: rating.Stars(v),
		Text:  rating.DetailText(v, false),
		Value: v,
	})
}

// FormTitle is the heading of the add/edit form.
func FormTitle(editing bool) string {
	if editing {
		return "Edit Recipe"
	}
	return "Add New Recipe"
}
