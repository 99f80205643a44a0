package app

import (
	"context"
	"fmt"
	"strings"

	"breakpoint-indicator/breakpoint"
	"breakpoint-indicator/config"
	"breakpoint-indicator/log"
	"breakpoint-indicator/source"
	"breakpoint-indicator/ui"
	"breakpoint-indicator/watcher"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings is everything Run needs besides the config file.
type Settings struct {
	Config *config.Config
	// Overrides take precedence over every other threshold source.
	Overrides source.Map
	// NoAnimation switches badge colours without fading.
	NoAnimation bool
}

// Sources returns where thresholds are looked up for cfg. Overrides, the
// environment and the stylesheet form one chain, highest priority first, and
// a name none of them sets is left out. The static config thresholds are a
// separate fallback. They apply only when that chain configures no candidate
// at all, so they are never mixed with a partial stylesheet.
func Sources(cfg *config.Config, overrides source.Map) source.Source {
	chain := source.Chain{overrides, source.Env{}}
	if cfg.Stylesheet != "" {
		sheet, err := source.LoadStylesheet(cfg.Stylesheet)
		if err != nil {
			log.WarningLog.Printf("ignoring stylesheet: %v", err)
		} else {
			log.InfoLog.Printf("loaded %d breakpoint properties from %s", sheet.Len(), sheet.Path)
			chain = append(chain, sheet)
		}
	}

	names := make([]string, len(cfg.Candidates))
	for i, c := range cfg.Candidates {
		names[i] = c.Name
	}
	if source.Any(chain, names) {
		return chain
	}
	log.InfoLog.Printf("no breakpoints set by flags, environment or stylesheet, using config thresholds")
	return source.Map(cfg.Thresholds)
}

// NewFromSettings builds an Indicator from the config and CLI overrides.
func NewFromSettings(s Settings) *Indicator {
	ind := NewIndicator(s.Config.Candidates, Sources(s.Config, s.Overrides), s.Config.Options())
	if s.NoAnimation {
		ind.Badge().SetAnimation(0, 1)
	}
	return ind
}

// Run shows the badge full-screen until the user quits.
func Run(ctx context.Context, s Settings) error {
	ind := NewFromSettings(s)

	p := tea.NewProgram(
		Mount(newCanvas(ind), ind),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if s.Config.Watch && s.Config.Stylesheet != "" {
		w, err := watcher.Watch(s.Config.Stylesheet, 0, func() {
			p.Send(ReloadMsg{Set: breakpoint.Build(s.Config.Candidates, Sources(s.Config, s.Overrides))})
		})
		if err != nil {
			log.WarningLog.Printf("stylesheet will not be reloaded: %v", err)
		} else {
			defer w.Close()
		}
	}

	_, err := p.Run()
	return err
}

type keyMap struct {
	Quit key.Binding
	Copy key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Copy: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
}

// canvas is the host screen in standalone mode: a short help line and the
// configured breakpoints with the current one marked.
type canvas struct {
	indicator *Indicator
	copy      func(string) error
	status    string
}

func newCanvas(ind *Indicator) *canvas {
	return &canvas{indicator: ind, copy: clipboard.WriteAll}
}

func (c *canvas) Init() tea.Cmd {
	return nil
}

func (c *canvas) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return c, tea.Quit
		case key.Matches(msg, keys.Copy):
			text := c.indicator.Display().Text
			if err := c.copy(text); err != nil {
				log.WarningLog.Printf("failed to copy to clipboard: %v", err)
				c.status = "copy failed"
			} else {
				c.status = "copied"
			}
		}
	case tea.WindowSizeMsg:
		c.status = ""
	}
	return c, nil
}

func (c *canvas) View() string {
	var b strings.Builder

	help := fmt.Sprintf("%s %s • %s %s",
		keys.Quit.Help().Key, keys.Quit.Help().Desc,
		keys.Copy.Help().Key, keys.Copy.Help().Desc)
	if c.status != "" {
		help += " • " + c.status
	}
	b.WriteString(ui.HintStyle.Render(help))
	b.WriteString("\n\n")

	set := c.indicator.Set()
	if set.Empty() {
		b.WriteString(ui.HintStyle.Render("no breakpoints configured"))
		return b.String()
	}

	d := c.indicator.Display()
	for _, bp := range set.All() {
		marker := "  "
		if d.Found && bp.Index == d.Current.Index {
			marker = "▶ "
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(bp.Theme)).Render("■")
		b.WriteString(fmt.Sprintf("%s%s %s ≤ %d\n", marker, swatch, breakpoint.TitleCase(bp.Name), bp.Threshold))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
