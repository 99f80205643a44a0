package app

import (
	"breakpoint-indicator/breakpoint"
	"breakpoint-indicator/inspect"
	"breakpoint-indicator/log"
	"breakpoint-indicator/source"
	"breakpoint-indicator/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// ReloadMsg replaces the indicator's breakpoint set, e.g. after the
// stylesheet changed on disk.
type ReloadMsg struct {
	Set *breakpoint.Set
}

// Indicator keeps the badge in sync with the terminal width. It only observes
// messages; it never consumes keys or mouse events.
type Indicator struct {
	set   *breakpoint.Set
	opts  breakpoint.Options
	badge *ui.Badge

	width, height int
	sized         bool
	display       breakpoint.Display
}

// NewIndicator builds the breakpoint set for candidates from src. The set is
// fixed until a ReloadMsg arrives.
func NewIndicator(candidates []breakpoint.Candidate, src source.Source, opts breakpoint.Options) *Indicator {
	set := breakpoint.Build(candidates, src)
	log.InfoLog.Printf("built %d of %d breakpoints", set.Len(), len(candidates))
	return &Indicator{
		set:   set,
		opts:  opts,
		badge: ui.NewBadge(),
	}
}

// Badge exposes the badge, mainly so callers can tune its animation.
func (i *Indicator) Badge() *ui.Badge { return i.badge }

// Set returns the breakpoint set in use.
func (i *Indicator) Set() *breakpoint.Set { return i.set }

// Display returns the result of the last evaluation.
func (i *Indicator) Display() breakpoint.Display { return i.display }

// Size returns the last terminal size seen.
func (i *Indicator) Size() (width, height int) { return i.width, i.height }

// HandleMsg updates the indicator for resize, resume, reload and animation
// messages. All other messages are ignored.
func (i *Indicator) HandleMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		i.width, i.height = msg.Width, msg.Height
		i.sized = true
		return i.evaluate()
	case tea.ResumeMsg:
		// The terminal may have changed shape while we were suspended.
		return tea.WindowSize()
	case ReloadMsg:
		if msg.Set == nil {
			return nil
		}
		log.InfoLog.Printf("reloaded %d breakpoints", msg.Set.Len())
		i.set = msg.Set
		if !i.sized {
			return nil
		}
		return i.evaluate()
	case ui.FrameMsg:
		return i.badge.Update(msg)
	}
	return nil
}

func (i *Indicator) evaluate() tea.Cmd {
	i.display = i.set.Describe(i.width, i.opts)
	log.RenderTrace("badge", "text=%q color=%s", i.display.Text, i.display.Color)

	cmd := i.badge.Set(i.display.Text, i.display.Color)

	if inspect.IsEnabled() {
		snap := inspect.NewSnapshot().
			WithTerminal(i.width, i.height).
			WithBreakpoints(i.set, i.display).
			WithBadge(i.badge.Target(), i.badge.Style())
		if err := inspect.WriteSnapshot(snap); err != nil {
			log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
		}
	}

	return cmd
}

// View renders the badge alone.
func (i *Indicator) View() string {
	if !i.sized {
		return ""
	}
	return i.badge.View()
}

// Overlay draws the badge over the bottom-right corner of host.
func (i *Indicator) Overlay(host string) string {
	if !i.sized {
		return host
	}
	return ui.Overlay(host, i.badge.View(), i.width, i.height)
}
