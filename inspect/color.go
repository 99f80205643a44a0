package inspect

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleInfo is the badge style as the terminal will see it.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	Padding    []int  `json:"padding,omitempty"` // [top, right, bottom, left]
	// Profile is the colour profile the badge is rendered with. Under
	// "ascii" the background colour is not shown at all.
	Profile string `json:"profile"`
}

// ExtractStyleInfo reads the colours and padding of style.
func ExtractStyleInfo(style lipgloss.Style) *StyleInfo {
	info := &StyleInfo{
		Foreground: colorToString(style.GetForeground()),
		Background: colorToString(style.GetBackground()),
		Profile:    profileName(lipgloss.ColorProfile()),
	}
	if top, right, bottom, left := style.GetPadding(); top+right+bottom+left > 0 {
		info.Padding = []int{top, right, bottom, left}
	}
	return info
}

func colorToString(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return ""
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return v.Light + "|" + v.Dark
	}
	return fmt.Sprintf("%v", c)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	}
	return "ascii"
}
