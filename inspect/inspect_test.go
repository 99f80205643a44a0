package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"breakpoint-indicator/breakpoint"
	"breakpoint-indicator/source"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *breakpoint.Set {
	return breakpoint.Build(breakpoint.DefaultCandidates(), source.Map{"small": 480, "medium": 768, "large": 1200})
}

func TestSnapshotBreakpoints(t *testing.T) {
	set := testSet()
	d := set.Describe(500, breakpoint.Options{})

	snap := NewSnapshot().WithTerminal(500, 40).WithBreakpoints(set, d)

	assert.Equal(t, "medium", snap.Current)
	assert.Equal(t, d.Text, snap.Text)
	assert.False(t, snap.Alert)
	require.Len(t, snap.Breakpoints, 3)

	assert.Equal(t, BreakpointInfo{Name: "small", Threshold: 480, Theme: "#F07E00"}, snap.Breakpoints[0])
	assert.Equal(t, BreakpointInfo{Name: "medium", Threshold: 768, Theme: "#2A465C", Matches: true, Active: true}, snap.Breakpoints[1])
	assert.Equal(t, BreakpointInfo{Name: "large", Threshold: 1200, Theme: "#56425E", Matches: true}, snap.Breakpoints[2])
}

func TestSnapshotEmptySet(t *testing.T) {
	set := breakpoint.Build(nil, source.Map{})
	snap := NewSnapshot().WithBreakpoints(set, set.Describe(80, breakpoint.Options{}))

	assert.Empty(t, snap.Current)
	assert.Empty(t, snap.Breakpoints)
	assert.Equal(t, "Viewport: 80px", snap.Text)
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#A51E2C")).
		Padding(0, 1)

	lipgloss.SetColorProfile(termenv.Ascii)
	info := ExtractStyleInfo(style)
	assert.Equal(t, "#FFFFFF", info.Foreground)
	assert.Equal(t, "#A51E2C", info.Background)
	assert.Equal(t, []int{0, 1, 0, 1}, info.Padding)
	assert.Equal(t, "ascii", info.Profile)
	assert.Equal(t, "#111|#EEE", colorToString(lipgloss.AdaptiveColor{Light: "#111", Dark: "#EEE"}))

	empty := ExtractStyleInfo(lipgloss.NewStyle())
	assert.Empty(t, empty.Foreground)
	assert.Nil(t, empty.Padding)
}

func TestWriteSnapshotToPath(t *testing.T) {
	set := testSet()
	snap := NewSnapshot().
		WithTerminal(2000, 50).
		WithBreakpoints(set, set.Describe(2000, breakpoint.Options{})).
		WithBadge(breakpoint.DefaultAlertColor, lipgloss.NewStyle().Background(lipgloss.Color(breakpoint.DefaultAlertColor)))

	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, WriteSnapshotToPath(snap, path))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be renamed into place")
	assert.Equal(t, "large", got.Current)
	assert.True(t, got.Alert)
	assert.Equal(t, breakpoint.DefaultAlertColor, got.Target)
	assert.Equal(t, breakpoint.DefaultAlertColor, got.Badge.Background)
}

func TestToText(t *testing.T) {
	set := testSet()
	snap := NewSnapshot().WithTerminal(300, 24).WithBreakpoints(set, set.Describe(300, breakpoint.Options{}))

	text := snap.ToText()
	assert.Contains(t, text, "Terminal: 300x24")
	assert.Contains(t, text, "Badge: Viewport: 300px | Small: 480px and below")
	assert.Contains(t, text, "[X] small (threshold: 480, matches: true)")
	assert.Contains(t, text, "[ ] large (threshold: 1200, matches: true)")
}

func TestReadSnapshotErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadSnapshot(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = ReadSnapshot(bad)
	assert.Error(t, err)
}
