// Package breakpoint models named viewport-width thresholds and resolves a
// width to the single breakpoint it falls into.
package breakpoint

import (
	"sort"

	"breakpoint-indicator/log"
	"breakpoint-indicator/source"
)

const (
	// DefaultAlertColor is the badge colour for the open-ended ranges.
	DefaultAlertColor = "#A51E2C"
	// NeutralColor is the badge colour when no breakpoint is configured.
	NeutralColor = "#202124"
	// DefaultUnit is appended to every width shown in the badge.
	DefaultUnit = "px"
)

// Candidate is a breakpoint name and colour before its threshold is known.
type Candidate struct {
	Name  string `json:"name"`
	Theme string `json:"theme"`
}

// DefaultCandidates returns the reference breakpoint names, smallest first.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "min", Theme: "#F37252"},
		{Name: "small", Theme: "#F07E00"},
		{Name: "small-medium", Theme: "#577D56"},
		{Name: "medium", Theme: "#2A465C"},
		{Name: "large", Theme: "#56425E"},
		{Name: "max", Theme: "#944D6D"},
	}
}

// Breakpoint is one configured threshold. The upper bound of its range is
// Threshold, inclusive.
type Breakpoint struct {
	Name      string
	Theme     string
	Threshold int
	// Index is the position in the owning Set.
	Index int

	prev, next int
}

// HasPrevious reports whether a smaller breakpoint exists.
func (b Breakpoint) HasPrevious() bool { return b.prev >= 0 }

// HasNext reports whether a larger breakpoint exists.
func (b Breakpoint) HasNext() bool { return b.next >= 0 }

// Matches reports whether width falls within this breakpoint's upper bound.
func (b Breakpoint) Matches(width int) bool { return width <= b.Threshold }

// Set is an immutable list of breakpoints, ascending by threshold.
type Set struct {
	items []Breakpoint
}

// Build looks up a threshold for every candidate, drops the ones without a
// usable value, sorts the rest ascending and links neighbours.
// Candidates with equal thresholds keep their input order.
func Build(candidates []Candidate, src source.Source) *Set {
	items := make([]Breakpoint, 0, len(candidates))
	for _, c := range candidates {
		threshold, ok := src.Lookup(c.Name)
		if !ok {
			log.SourceTrace("no threshold for %q, skipping", c.Name)
			continue
		}
		items = append(items, Breakpoint{
			Name:      c.Name,
			Theme:     c.Theme,
			Threshold: threshold,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Threshold < items[j].Threshold
	})

	for i := range items {
		items[i].Index = i
		items[i].prev = i - 1
		items[i].next = i + 1
		if items[i].next == len(items) {
			items[i].next = -1
		}
	}

	return &Set{items: items}
}

// Len returns the number of breakpoints.
func (s *Set) Len() int { return len(s.items) }

// Empty reports whether no breakpoint survived configuration.
func (s *Set) Empty() bool { return len(s.items) == 0 }

// At returns the breakpoint at position i.
func (s *Set) At(i int) Breakpoint { return s.items[i] }

// All returns a copy of the breakpoints, smallest first.
func (s *Set) All() []Breakpoint {
	out := make([]Breakpoint, len(s.items))
	copy(out, s.items)
	return out
}

// Previous returns the next smaller breakpoint.
func (s *Set) Previous(b Breakpoint) (Breakpoint, bool) {
	if !b.HasPrevious() {
		return Breakpoint{}, false
	}
	return s.items[b.prev], true
}

// Next returns the next larger breakpoint.
func (s *Set) Next(b Breakpoint) (Breakpoint, bool) {
	if !b.HasNext() {
		return Breakpoint{}, false
	}
	return s.items[b.next], true
}

// Evaluate returns the current breakpoint for width: the smallest one whose
// threshold is >= width, or the largest when width exceeds all of them.
// ok is false only for an empty set.
func (s *Set) Evaluate(width int) (current Breakpoint, ok bool) {
	for _, b := range s.items {
		if b.Matches(width) || !b.HasNext() {
			log.EvalTrace("width=%d current=%s threshold=%d", width, b.Name, b.Threshold)
			return b, true
		}
	}
	log.EvalTrace("width=%d no breakpoints configured", width)
	return Breakpoint{}, false
}
