package model

// Difficulty is the effort level of a recipe.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the legal levels in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Recipe is the persisted unit of the catalog.
// The JSON names are the on-disk names; keep them stable.
type Recipe struct {
	ID          string     `json:"id" yaml:"id,omitempty"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Ingredients []string   `json:"ingredients" yaml:"ingredients"`
	Steps       []string   `json:"steps" yaml:"steps"`
	PrepTime    int        `json:"prepTime" yaml:"prepTime"`
	CookTime    int        `json:"cookTime" yaml:"cookTime"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	ImageURL    string     `json:"imageUrl" yaml:"imageUrl,omitempty"`
	Rating      float64    `json:"rating" yaml:"rating"`
}

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int { return r.PrepTime + r.CookTime }

// Clone returns a copy that shares no slices with r.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = cloneLines(r.Ingredients)
	out.Steps = cloneLines(r.Steps)
	return out
}

func cloneLines(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
