// Package harness drives Bubble Tea models in tests: it feeds them resize
// and key messages and runs the commands they return.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing
type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// New creates a Harness and sends the initial window size, the way a
// running program does on startup.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	h := &Harness{t: t, model: model}
	h.Resize(width, height)
	return h
}

// SendMsg sends a tea.Msg to the model and updates it
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a key press message
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Resize simulates a terminal resize
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Settle runs cmd and every command it produces, feeding the resulting
// messages back into the model, until nothing is left or limit messages
// have been delivered. Batches are flattened. It returns the number of
// messages delivered. Commands that block (such as tea.Tick) are run
// synchronously, so use short durations in tests.
func (h *Harness) Settle(cmd tea.Cmd, limit int) int {
	h.t.Helper()

	queue := []tea.Cmd{cmd}
	delivered := 0
	for len(queue) > 0 && delivered < limit {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		}
		delivered++
		queue = append(queue, h.SendMsg(msg))
	}
	return delivered
}

// View returns the current rendered view
func (h *Harness) View() string {
	return h.model.View()
}

// Model returns the underlying model (for type assertions)
func (h *Harness) Model() tea.Model {
	return h.model
}

// Width returns the current width
func (h *Harness) Width() int {
	return h.width
}

// Height returns the current height
func (h *Harness) Height() int {
	return h.height
}

// TerminalSize represents a terminal size for testing
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// CommonSizes covers the default breakpoints: below the smallest, inside
// each range, and beyond the largest.
var CommonSizes = []TerminalSize{
	{Name: "tiny", Width: 40, Height: 12},
	{Name: "minimum", Width: 80, Height: 24},
	{Name: "compact", Width: 100, Height: 30},
	{Name: "standard", Width: 120, Height: 40},
	{Name: "large", Width: 140, Height: 50},
	{Name: "wide", Width: 200, Height: 24},
}

// RunWithSizes runs a test function for each terminal size
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs a test function for all common terminal sizes
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}
