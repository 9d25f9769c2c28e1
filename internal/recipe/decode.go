package recipe

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/idilsaglam/recipebox/internal/model"
)

// record is one persisted element as found on disk, before any typing.
// A nil record stands for an element that was not a JSON object.
type record map[string]any

// parseBlob splits a persisted value into its elements. Anything other
// than a JSON array is corrupt.
func parseBlob(blob string) ([]record, error) {
	var v any
	if err := json.Unmarshal([]byte(blob), &v); err != nil {
		return nil, fmt.Errorf("parse stored recipes: %w: %w", ErrDataCorrupted, err)
	}
	elems, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("stored recipes are a %T, not an array: %w", v, ErrDataCorrupted)
	}
	out := make([]record, len(elems))
	for i, e := range elems {
		if m, ok := e.(map[string]any); ok {
			out[i] = m
		}
	}
	return out, nil
}

// wellFormed is the minimal structural check the repair pass applies.
func (rec record) wellFormed() bool {
	if rec == nil {
		return false
	}
	id, ok := rec["id"].(string)
	if !ok || id == "" {
		return false
	}
	title, ok := rec["title"].(string)
	if !ok || title == "" {
		return false
	}
	for _, key := range []string{"prepTime", "cookTime"} {
		n, ok := rec[key].(float64)
		if !ok || n < 0 {
			return false
		}
	}
	d, ok := rec["difficulty"].(string)
	return ok && model.Difficulty(d).Valid()
}

// toRecipe decodes leniently: numeric strings are parsed, wrong types fall
// back to zero values and non-string list items are dropped. The result
// still needs Clean.
func (rec record) toRecipe() model.Recipe {
	return model.Recipe{
		ID:          str(rec["id"]),
		Title:       str(rec["title"]),
		Description: str(rec["description"]),
		Ingredients: lines(rec["ingredients"]),
		Steps:       lines(rec["steps"]),
		PrepTime:    minutes(rec["prepTime"]),
		CookTime:    minutes(rec["cookTime"]),
		Difficulty:  model.Difficulty(str(rec["difficulty"])),
		ImageURL:    str(rec["imageUrl"]),
		Rating:      number(rec["rating"]),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func lines(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// number reads a JSON number or a numeric string; anything else is 0.
func number(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// minutes truncates toward zero after clamping, so huge or fractional
// values still land on a legal integer.
func minutes(v any) int {
	f := number(v)
	if math.IsNaN(f) {
		return 0
	}
	f = math.Max(0, math.Min(MaxMinutes, f))
	return int(f)
}
