package inspect

import (
	"fmt"
	"strings"
	"time"

	"breakpoint-indicator/breakpoint"

	"github.com/charmbracelet/lipgloss"
)

// Snapshot is the indicator state after one evaluation.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`

	Terminal TerminalInfo `json:"terminal"`

	// Current is the name of the current breakpoint, empty when none is configured.
	Current string `json:"current,omitempty"`
	Text    string `json:"text"`
	Alert   bool   `json:"alert"`

	Breakpoints []BreakpointInfo `json:"breakpoints"`

	// Target is the colour the badge is settling on.
	Target string     `json:"target"`
	Badge  *StyleInfo `json:"badge,omitempty"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BreakpointInfo describes one configured breakpoint.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Theme     string `json:"theme"`
	// Matches is width <= threshold.
	Matches bool `json:"matches"`
	// Active marks the current breakpoint.
	Active bool `json:"active"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp:   time.Now(),
		Version:     "1.0.0",
		Breakpoints: []BreakpointInfo{},
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithBreakpoints records the set and the evaluation result for d.Width.
func (s *Snapshot) WithBreakpoints(set *breakpoint.Set, d breakpoint.Display) *Snapshot {
	s.Text = d.Text
	s.Alert = d.Alert
	if d.Found {
		s.Current = d.Current.Name
	}

	s.Breakpoints = s.Breakpoints[:0]
	for _, b := range set.All() {
		s.Breakpoints = append(s.Breakpoints, BreakpointInfo{
			Name:      b.Name,
			Threshold: b.Threshold,
			Theme:     b.Theme,
			Matches:   b.Matches(d.Width),
			Active:    d.Found && b.Index == d.Current.Index,
		})
	}
	return s
}

// WithBadge records the badge target colour and its current style.
func (s *Snapshot) WithBadge(target string, style lipgloss.Style) *Snapshot {
	s.Target = target
	s.Badge = ExtractStyleInfo(style)
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== Breakpoint Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))
	b.WriteString(fmt.Sprintf("Badge: %s\n", s.Text))

	b.WriteString("\n--- Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		b.WriteString(fmt.Sprintf("  %s %s (threshold: %d, matches: %v)\n", status, bp.Name, bp.Threshold, bp.Matches))
	}

	return b.String()
}
