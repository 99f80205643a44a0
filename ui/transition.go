package ui

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// TransitionDuration is how long the background takes to change colour.
	TransitionDuration = 300 * time.Millisecond

	// TransitionFrames is the number of intermediate colours shown.
	TransitionFrames = 6
)

// Blend returns the colour t of the way from "from" to "to", in hex.
// t is clamped to [0, 1]. If either colour cannot be parsed, "to" is returned
// unchanged.
func Blend(from, to string, t float64) string {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	return a.BlendLab(b, t).Clamped().Hex()
}
