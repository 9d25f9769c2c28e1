// Package filter narrows a recipe list by search text, difficulty and
// total time.
package filter

import (
	"strings"

	"github.com/idilsaglam/recipebox/internal/model"
)

// All disables the difficulty filter.
const All = "all"

// TimeBuckets are the total-time limits offered as presets, in minutes.
// 0 means no limit.
var TimeBuckets = []int{0, 15, 30, 60, 120}

// Criteria selects recipes. The zero value matches every titled recipe.
type Criteria struct {
	Search          string
	Difficulty      string
	MaxTotalMinutes int
}

// Normalize lowercases the search term and maps an empty difficulty to
// All. The search term is not trimmed.
func (c Criteria) Normalize() Criteria {
	c.Search = strings.ToLower(c.Search)
	if c.Difficulty == "" {
		c.Difficulty = All
	}
	if c.MaxTotalMinutes < 0 {
		c.MaxTotalMinutes = 0
	}
	return c
}

// Active reports whether c filters anything out.
func (c Criteria) Active() bool {
	c = c.Normalize()
	return c.Search != "" || c.Difficulty != All || c.MaxTotalMinutes > 0
}

// Match reports whether r passes c. Recipes without a title never match.
func (c Criteria) Match(r model.Recipe) bool {
	c = c.Normalize()
	if r.Title == "" {
		return false
	}
	if c.Search != "" &&
		!strings.Contains(strings.ToLower(r.Title), c.Search) &&
		!strings.Contains(strings.ToLower(r.Description), c.Search) {
		return false
	}
	if c.Difficulty != All && string(r.Difficulty) != c.Difficulty {
		return false
	}
	if c.MaxTotalMinutes > 0 && r.TotalTime() > c.MaxTotalMinutes {
		return false
	}
	return true
}

// Recipes returns the recipes matching c in their original order. The
// input is not modified.
func Recipes(recipes []model.Recipe, c Criteria) []model.Recipe {
	c = c.Normalize()
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// NextBucket returns the preset after limit, wrapping around.
func NextBucket(limit int) int {
	for i, b := range TimeBuckets {
		if b == limit {
			return TimeBuckets[(i+1)%len(TimeBuckets)]
		}
	}
	return TimeBuckets[0]
}

// NextDifficulty cycles all → easy → medium → hard → all.
func NextDifficulty(d string) string {
	switch d {
	case "", All:
		return string(model.Easy)
	case string(model.Easy):
		return string(model.Medium)
	case string(model.Medium):
		return string(model.Hard)
	}
	return All
}
