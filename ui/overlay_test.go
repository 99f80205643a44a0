package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayPlacesBadgeBottomRight(t *testing.T) {
	host := "first line\nsecond line"

	out := Overlay(host, "[badge]", 20, 4)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "first line", lines[0])
	assert.Equal(t, "second line", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, strings.Repeat(" ", 13)+"[badge]", lines[3])
	assert.Equal(t, 20, lipgloss.Width(lines[3]))
}

func TestOverlayKeepsLeftOfLastRow(t *testing.T) {
	host := "top\nstatus bar text that is long"

	out := Overlay(host, "[b]", 12, 2)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "top", lines[0])
	assert.Equal(t, "status ba[b]", lines[1])
}

func TestOverlayCutsTallHost(t *testing.T) {
	host := "1\n2\n3\n4\n5"

	out := Overlay(host, "B", 5, 3)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "3   B", lines[2])
}

func TestOverlayBadgeWiderThanScreen(t *testing.T) {
	out := Overlay("", "0123456789", 4, 1)
	assert.Equal(t, "0123", out)
}

func TestOverlayNoWidth(t *testing.T) {
	assert.Equal(t, "host", Overlay("host", "badge", 0, 10))
	assert.Equal(t, "host", Overlay("host", "", 10, 10))
}

func TestOverlayWithoutHeightUsesLastHostLine(t *testing.T) {
	out := Overlay("a\nb", "X", 3, 0)
	assert.Equal(t, "a\nb X", out)
}

func TestOverlayResetsStyledHostLine(t *testing.T) {
	host := "\x1b[31mred text running on\x1b[0m"

	out := Overlay(host, "B", 6, 1)

	assert.True(t, strings.HasSuffix(out, resetSeq+"B"), "host styling must be closed before the badge: %q", out)
}
