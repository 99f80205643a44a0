package app

import (
	"breakpoint-indicator/log"
	"breakpoint-indicator/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// mounted draws an Indicator over a host model.
type mounted struct {
	host      tea.Model
	indicator *Indicator
}

// Mount wraps host so the indicator badge is drawn over its bottom-right
// corner. Every message still reaches host unchanged, so the badge never
// takes keyboard or mouse input away from it. Only the indicator's own
// animation and reload messages are kept from host.
func Mount(host tea.Model, indicator *Indicator) tea.Model {
	return &mounted{host: host, indicator: indicator}
}

func (m *mounted) Init() tea.Cmd {
	return m.host.Init()
}

func (m *mounted) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	indicatorCmd := m.indicator.HandleMsg(msg)

	switch msg.(type) {
	case ui.FrameMsg, ReloadMsg:
		return m, indicatorCmd
	}

	var hostCmd tea.Cmd
	m.host, hostCmd = m.host.Update(msg)
	return m, tea.Batch(indicatorCmd, hostCmd)
}

func (m *mounted) View() string {
	done := log.GetProfiler().StartRender("mounted")
	defer done()
	return m.indicator.Overlay(m.host.View())
}
