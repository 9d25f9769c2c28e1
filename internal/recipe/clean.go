package recipe

import (
	"github.com/google/uuid"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/rating"
)

// Field limits shared by cleaning and form validation.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
	MaxIngredients    = 50
	MaxIngredientLen  = 200
	MaxSteps          = 100
	MaxStepLen        = 500
	MaxMinutes        = 1440
	MaxImageURLLen    = 500

	DefaultTitle = "Untitled Recipe"
)

// NewID returns a fresh recipe identifier.
func NewID() string {
	return "recipe-" + uuid.NewString()
}

// Clean forces every field of r into its legal range. It never rejects:
// this is the safety net in front of every write, looser than form
// validation (an empty description or a zero prep time survive). Clean is
// idempotent.
func Clean(r model.Recipe) model.Recipe {
	out := model.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Description: truncate(r.Description, MaxDescriptionLen),
		Ingredients: capLines(r.Ingredients, MaxIngredients, MaxIngredientLen),
		Steps:       capLines(r.Steps, MaxSteps, MaxStepLen),
		PrepTime:    clampMinutes(r.PrepTime),
		CookTime:    clampMinutes(r.CookTime),
		Difficulty:  r.Difficulty,
		ImageURL:    truncate(r.ImageURL, MaxImageURLLen),
		Rating:      rating.Normalize(r.Rating),
	}
	if out.ID == "" {
		out.ID = NewID()
	}
	if out.Title == "" {
		out.Title = DefaultTitle
	}
	out.Title = truncate(out.Title, MaxTitleLen)
	if !out.Difficulty.Valid() {
		out.Difficulty = model.Easy
	}
	return out
}

// truncate cuts s to at most n code points.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func capLines(in []string, maxItems, maxLen int) []string {
	if len(in) > maxItems {
		in = in[:maxItems]
	}
	out := make([]string, len(in))
	for i, line := range in {
		out[i] = truncate(line, maxLen)
	}
	return out
}

func clampMinutes(m int) int {
	return max(0, min(MaxMinutes, m))
}
