// Package validate checks recipe form input field by field and turns a
// valid form into a draft recipe.
package validate

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/recipe"
)

// Field identifiers, in form order.
const (
	Title       = "title"
	Description = "description"
	Ingredients = "ingredients"
	Steps       = "steps"
	PrepTime    = "prep-time"
	CookTime    = "cook-time"
	Difficulty  = "difficulty"
	ImageURL    = "image-url"
)

// Fields lists every field id in the order forms show them.
var Fields = []string{Title, Description, Ingredients, Steps, PrepTime, CookTime, Difficulty, ImageURL}

const (
	minTitleLen       = 2
	minDescriptionLen = 10
	minPrepMinutes    = 1

	countBound = 1 << 20
)

// FieldError is a validation failure attached to one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors holds every failing field of a form, in field order.
type FieldErrors []*FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// For returns the error on field, or nil.
func (fe FieldErrors) For(field string) *FieldError {
	for _, e := range fe {
		if e.Field == field {
			return e
		}
	}
	return nil
}

func fail(field, msg string) *FieldError {
	return &FieldError{Field: field, Message: msg}
}

// Field validates a single field of f. It returns nil when the field is
// valid or the id is unknown.
func Field(f Form, field string) *FieldError {
	switch field {
	case Title:
		return checkTitle(f.Title)
	case Description:
		return checkDescription(f.Description)
	case Ingredients:
		_, err := checkLines(Ingredients, f.Ingredients, recipe.MaxIngredients, recipe.MaxIngredientLen,
			"At least one ingredient is required",
			"Maximum 50 ingredients allowed",
			"Each ingredient must be less than 200 characters")
		return err
	case Steps:
		_, err := checkLines(Steps, f.Steps, recipe.MaxSteps, recipe.MaxStepLen,
			"At least one step is required",
			"Maximum 100 steps allowed",
			"Each step must be less than 500 characters")
		return err
	case PrepTime:
		_, err := checkPrep(f)
		return err
	case CookTime:
		_, err := checkCook(f)
		return err
	case Difficulty:
		return checkDifficulty(f.Difficulty)
	case ImageURL:
		return checkImageURL(f.ImageURL)
	}
	return nil
}

// Check validates every field without stopping at the first failure. With
// no errors it returns the draft recipe the form describes: text trimmed,
// blank lines dropped and times in minutes. The draft carries the form's
// id, which is empty for a new recipe.
func Check(f Form) (model.Recipe, FieldErrors) {
	var errs FieldErrors
	for _, field := range Fields {
		if err := Field(f, field); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return model.Recipe{}, errs
	}

	prep, _ := checkPrep(f)
	cook, _ := checkCook(f)
	ingredients, _ := checkLines(Ingredients, f.Ingredients, recipe.MaxIngredients, recipe.MaxIngredientLen, "", "", "")
	steps, _ := checkLines(Steps, f.Steps, recipe.MaxSteps, recipe.MaxStepLen, "", "", "")
	return model.Recipe{
		ID:          strings.TrimSpace(f.ID),
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Ingredients: ingredients,
		Steps:       steps,
		PrepTime:    prep,
		CookTime:    cook,
		Difficulty:  model.Difficulty(strings.TrimSpace(f.Difficulty)),
		ImageURL:    strings.TrimSpace(f.ImageURL),
	}, nil
}

func length(s string) int { return utf8.RuneCountInString(s) }

func checkTitle(v string) *FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return fail(Title, "Recipe title is required")
	case length(v) < minTitleLen:
		return fail(Title, "Title must be at least 2 characters long")
	case length(v) > recipe.MaxTitleLen:
		return fail(Title, "Title must be less than 100 characters")
	}
	return nil
}

func checkDescription(v string) *FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return fail(Description, "Description is required")
	case length(v) < minDescriptionLen:
		return fail(Description, "Description must be at least 10 characters long")
	case length(v) > recipe.MaxDescriptionLen:
		return fail(Description, "Description must be less than 500 characters")
	}
	return nil
}

// SplitLines splits text on newlines, trims each line and drops blank
// ones.
func SplitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func checkLines(field, text string, maxItems, maxLen int, none, tooMany, tooLong string) ([]string, *FieldError) {
	lines := SplitLines(text)
	switch {
	case len(lines) == 0:
		return nil, fail(field, none)
	case len(lines) > maxItems:
		return nil, fail(field, tooMany)
	}
	for _, line := range lines {
		if length(line) > maxLen {
			return nil, fail(field, tooLong)
		}
	}
	return lines, nil
}

// parseCount reads an hours or minutes box. Blank is 0.
func parseCount(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func totalMinutes(hours, minutes string) (int, bool) {
	h, ok := parseCount(hours)
	if !ok {
		return 0, false
	}
	m, ok := parseCount(minutes)
	if !ok {
		return 0, false
	}
	// bounded so h*60+m cannot overflow
	h = max(min(h, countBound), -countBound)
	m = max(min(m, countBound), -countBound)
	return h*60 + m, true
}

func checkPrep(f Form) (int, *FieldError) {
	total, ok := totalMinutes(f.PrepHours, f.PrepMinutes)
	switch {
	case !ok:
		return 0, fail(PrepTime, "Prep time must be a valid number")
	case total < minPrepMinutes:
		return 0, fail(PrepTime, "Prep time must be at least 1 minute")
	case total > recipe.MaxMinutes:
		return 0, fail(PrepTime, "Prep time cannot exceed 24 hours (1440 minutes)")
	}
	return total, nil
}

func checkCook(f Form) (int, *FieldError) {
	total, ok := totalMinutes(f.CookHours, f.CookMinutes)
	switch {
	case !ok:
		return 0, fail(CookTime, "Cook time must be a valid number")
	case total < 0:
		return 0, fail(CookTime, "Cook time cannot be negative")
	case total > recipe.MaxMinutes:
		return 0, fail(CookTime, "Cook time cannot exceed 24 hours (1440 minutes)")
	}
	return total, nil
}

func checkDifficulty(v string) *FieldError {
	if !model.Difficulty(strings.TrimSpace(v)).Valid() {
		return fail(Difficulty, "Please select a difficulty level")
	}
	return nil
}

func checkImageURL(v string) *FieldError {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !IsWebURL(v) {
		return fail(ImageURL, "Please enter a valid URL starting with http:// or https://")
	}
	if length(v) > recipe.MaxImageURLLen {
		return fail(ImageURL, "Image URL must be less than 500 characters")
	}
	return nil
}

// IsWebURL reports whether s is an absolute http or https URL with a host.
func IsWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
