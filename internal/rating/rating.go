// Package rating implements half-star ratings: normalization, the
// three-state star rendering rule and the pointer-driven rating widget.
package rating

import (
	"fmt"
	"math"
)

const (
	// Max is the number of stars and the highest rating.
	Max = 5
	// Step is the rating granularity.
	Step = 0.5
)

// Normalize clamps v to [0, Max] and rounds it to the nearest half star.
// NaN becomes 0.
func Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(0, math.Min(Max, v))
	return math.Round(v*2) / 2
}

// FromPointer turns a pointer position over a star into a rating. star is
// 1-based; xFraction is the horizontal position within the glyph, 0 at the
// left edge and 1 at the right. The left half selects a half star.
func FromPointer(star int, xFraction float64) float64 {
	raw := float64(star)
	if xFraction <= 0.5 {
		raw -= Step
	}
	return Normalize(raw)
}

// State is how a single star renders.
type State int

const (
	Empty State = iota
	Half
	Full
)

func (s State) String() string {
	switch s {
	case Full:
		return "full"
	case Half:
		return "half"
	default:
		return "empty"
	}
}

// StarState decides how the star at 1-based position renders for rating.
func StarState(rating float64, position int) State {
	p := float64(position)
	switch {
	case rating >= p:
		return Full
	case rating+Step >= p:
		return Half
	default:
		return Empty
	}
}

// Stars returns the state of every star for rating.
func Stars(rating float64) [Max]State {
	var out [Max]State
	for i := range out {
		out[i] = StarState(rating, i+1)
	}
	return out
}

// CardText is the compact read-only label used on list cards.
func CardText(r float64) string {
	r = Normalize(r)
	if r == 0 {
		return "No rating"
	}
	return fmt.Sprintf("%.1f/5", r)
}

// DetailText is the label under the interactive stars. Previews show the
// bare value; committed ratings are prefixed.
func DetailText(r float64, preview bool) string {
	r = Normalize(r)
	if preview {
		return fmt.Sprintf("%.1f / 5", r)
	}
	if r == 0 {
		return "No rating yet"
	}
	return fmt.Sprintf("Your rating: %.1f / 5", r)
}
