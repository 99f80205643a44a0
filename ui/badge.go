package ui

import (
	"time"

	"breakpoint-indicator/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameMsg advances a badge colour transition.
type FrameMsg struct {
	seq int
}

// Badge is the single-line label drawn in the corner of the screen.
type Badge struct {
	text string

	// current is the colour on screen, target the colour being faded to.
	current string
	target  string
	from    string

	frame    int
	frames   int
	duration time.Duration
	// seq invalidates frames from a superseded transition.
	seq int
}

// NewBadge creates a badge that fades between colours over TransitionDuration.
func NewBadge() *Badge {
	return &Badge{
		frames:   TransitionFrames,
		duration: TransitionDuration,
	}
}

// SetAnimation changes the fade length. A zero duration switches colours
// immediately.
func (b *Badge) SetAnimation(duration time.Duration, frames int) {
	if frames < 1 {
		frames = 1
	}
	b.duration = duration
	b.frames = frames
}

// Set changes the badge text and starts fading towards color when it differs
// from the current target. The first colour is applied without a fade.
func (b *Badge) Set(text, color string) tea.Cmd {
	b.text = text
	if color == b.target {
		return nil
	}

	b.seq++
	b.target = color
	b.frame = 0
	b.from = b.current

	if b.current == "" || b.duration <= 0 {
		b.current = color
		return nil
	}
	return b.tick()
}

func (b *Badge) tick() tea.Cmd {
	seq := b.seq
	return tea.Tick(b.duration/time.Duration(b.frames), func(time.Time) tea.Msg {
		return FrameMsg{seq: seq}
	})
}

// Update handles transition frames. Other messages are ignored.
func (b *Badge) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.seq != b.seq || b.current == b.target {
		return nil
	}

	b.frame++
	if b.frame >= b.frames {
		b.current = b.target
		return nil
	}
	b.current = Blend(b.from, b.target, float64(b.frame)/float64(b.frames))
	return b.tick()
}

// Text returns the badge text.
func (b *Badge) Text() string { return b.text }

// Color returns the colour currently on screen.
func (b *Badge) Color() string { return b.current }

// Target returns the colour the badge is fading towards.
func (b *Badge) Target() string { return b.target }

// Transitioning reports whether a fade is in progress.
func (b *Badge) Transitioning() bool { return b.current != b.target }

// Style returns the style the badge renders with.
func (b *Badge) Style() lipgloss.Style {
	return BadgeStyle(lipgloss.Color(b.current))
}

// View renders the badge, or "" when it has no text.
func (b *Badge) View() string {
	if b.text == "" {
		return ""
	}
	done := log.GetProfiler().StartRender("badge")
	defer done()
	return b.Style().Render(b.text)
}
