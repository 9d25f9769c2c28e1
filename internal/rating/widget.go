package rating

import "github.com/idilsaglam/recipebox/internal/model"

// Committer persists a committed rating. The recipe repository satisfies it.
type Committer interface {
	SetRating(id string, rating float64) error
}

// Widget is the interactive rating control for one recipe. Pointer moves
// only change the preview; a press commits and persists.
type Widget struct {
	recipe     *model.Recipe
	committer  Committer
	current    float64
	preview    float64
	previewing bool
}

// NewWidget starts from the recipe's stored rating.
func NewWidget(r *model.Recipe, c Committer) *Widget {
	return &Widget{
		recipe:    r,
		committer: c,
		current:   Normalize(r.Rating),
	}
}

// Current is the committed rating.
func (w *Widget) Current() float64 { return w.current }

// Previewing reports whether a transient preview is shown.
func (w *Widget) Previewing() bool { return w.previewing }

// Shown is the rating currently displayed.
func (w *Widget) Shown() float64 {
	if w.previewing {
		return w.preview
	}
	return w.current
}

// Move previews the rating under the pointer.
func (w *Widget) Move(star int, xFraction float64) {
	if star < 1 || star > Max {
		return
	}
	w.preview = FromPointer(star, xFraction)
	w.previewing = true
}

// Leave drops any preview and shows the committed rating again.
func (w *Widget) Leave() {
	w.previewing = false
	w.preview = 0
}

// Press commits the rating under the pointer. Out-of-range stars are
// ignored and return a nil error with no change.
func (w *Widget) Press(star int, xFraction float64) error {
	if star < 1 || star > Max {
		return nil
	}
	return w.commit(FromPointer(star, xFraction))
}

// Nudge moves the preview by delta half-star steps, starting from whatever
// is shown. It is the keyboard counterpart of Move.
func (w *Widget) Nudge(steps int) {
	w.preview = Normalize(w.Shown() + float64(steps)*Step)
	w.previewing = true
}

// Commit persists the shown rating. Without a preview it re-saves the
// current value.
func (w *Widget) Commit() error {
	return w.commit(w.Shown())
}

// Set commits an explicit value, e.g. from a digit key.
func (w *Widget) Set(v float64) error {
	return w.commit(Normalize(v))
}

func (w *Widget) commit(v float64) error {
	w.current = v
	w.previewing = false
	w.preview = 0
	w.recipe.Rating = v
	if w.committer == nil {
		return nil
	}
	return w.committer.SetRating(w.recipe.ID, v)
}

// Display is what the widget renders right now.
type Display struct {
	Stars   [Max]State
	Text    string
	Preview bool
	Value   float64
}

// Display returns the stars and label for the shown rating.
func (w *Widget) Display() Display {
	v := w.Shown()
	return Display{
		Stars:   Stars(v),
		Text:    DetailText(v, w.previewing),
		Preview: w.previewing,
		Value:   v,
	}
}
