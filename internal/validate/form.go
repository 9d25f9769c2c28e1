package validate

import (
	"strconv"
	"strings"

	"github.com/idilsaglam/recipebox/internal/model"
)

// Form is raw recipe input as typed by the user. Ingredients and Steps hold
// one entry per line; the time boxes hold whatever was typed.
type Form struct {
	ID          string
	Title       string
	Description string
	Ingredients string
	Steps       string
	PrepHours   string
	PrepMinutes string
	CookHours   string
	CookMinutes string
	Difficulty  string
	ImageURL    string
}

// NewForm is the blank form for a new recipe.
func NewForm() Form {
	return Form{Difficulty: string(model.Easy)}
}

// FormFromRecipe fills the edit form for r.
func FormFromRecipe(r model.Recipe) Form {
	d := r.Difficulty
	if !d.Valid() {
		d = model.Easy
	}
	return Form{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: strings.Join(r.Ingredients, "\n"),
		Steps:       strings.Join(r.Steps, "\n"),
		PrepHours:   blankZero(r.PrepTime / 60),
		PrepMinutes: blankZero(r.PrepTime % 60),
		CookHours:   blankZero(r.CookTime / 60),
		CookMinutes: blankZero(r.CookTime % 60),
		Difficulty:  string(d),
		ImageURL:    r.ImageURL,
	}
}

func blankZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
