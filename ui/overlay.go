package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// Overlay draws badge over the bottom-right corner of a width x height view.
// The host view is padded or cut to height lines so the badge always lands on
// the last row. Host text under the badge is hidden; everything else is kept.
func Overlay(host, badge string, width, height int) string {
	if width <= 0 || badge == "" {
		return host
	}

	lines := strings.Split(host, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	last := len(lines) - 1
	lines[last] = placeRight(lines[last], badge, width)
	return strings.Join(lines, "\n")
}

// placeRight keeps the left part of line and puts badge flush right.
func placeRight(line, badge string, width int) string {
	badgeWidth := lipgloss.Width(badge)
	if badgeWidth >= width {
		return truncate.String(badge, uint(width))
	}

	room := width - badgeWidth
	left := truncate.String(line, uint(room))
	if strings.Contains(left, "\x1b[") {
		left += resetSeq
	}
	if w := lipgloss.Width(left); w < room {
		left += strings.Repeat(" ", room-w)
	}
	return left + badge
}
