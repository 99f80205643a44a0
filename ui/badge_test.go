package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestBadgeFirstColourIsImmediate(t *testing.T) {
	b := NewBadge()

	cmd := b.Set("Viewport: 80px", "#F07E00")

	assert.Nil(t, cmd, "first colour should not fade")
	assert.Equal(t, "#F07E00", b.Color())
	assert.False(t, b.Transitioning())
	assert.Equal(t, " Viewport: 80px ", b.View())
}

func TestBadgeFadesToNewColour(t *testing.T) {
	b := NewBadge()
	b.Set("a", "#000000")

	cmd := b.Set("b", "#FFFFFF")
	require.NotNil(t, cmd)
	assert.True(t, b.Transitioning())
	assert.Equal(t, "#000000", b.Color())
	assert.Equal(t, "#FFFFFF", b.Target())
	assert.Equal(t, "b", b.Text(), "text changes immediately")

	seen := map[string]bool{}
	for i := 0; i < TransitionFrames; i++ {
		cmd = b.Update(FrameMsg{seq: b.seq})
		seen[b.Color()] = true
	}

	assert.Nil(t, cmd, "transition should stop on the last frame")
	assert.Equal(t, "#FFFFFF", b.Color())
	assert.False(t, b.Transitioning())
	assert.Greater(t, len(seen), 2, "intermediate colours should be shown")
}

func TestBadgeIgnoresStaleFrames(t *testing.T) {
	b := NewBadge()
	b.Set("a", "#000000")
	b.Set("b", "#FFFFFF")
	stale := FrameMsg{seq: b.seq}

	b.Set("c", "#FF0000")
	before := b.Color()

	assert.Nil(t, b.Update(stale))
	assert.Equal(t, before, b.Color())
}

func TestBadgeSameColourDoesNotRestart(t *testing.T) {
	b := NewBadge()
	b.Set("a", "#F07E00")
	seq := b.seq

	assert.Nil(t, b.Set("b", "#F07E00"))
	assert.Equal(t, seq, b.seq)
	assert.Equal(t, "b", b.Text())
}

func TestBadgeWithoutAnimation(t *testing.T) {
	b := NewBadge()
	b.SetAnimation(0, 0)
	b.Set("a", "#000000")

	assert.Nil(t, b.Set("b", "#FFFFFF"))
	assert.Equal(t, "#FFFFFF", b.Color())
}

func TestBadgeEmptyText(t *testing.T) {
	b := NewBadge()
	b.Set("", "#202124")
	assert.Equal(t, "", b.View())
}

func TestBadgeStyle(t *testing.T) {
	b := NewBadge()
	b.Set("x", "#2A465C")

	style := b.Style()
	assert.Equal(t, lipgloss.Color("#2A465C"), style.GetBackground())
	assert.Equal(t, BadgeForeground, style.GetForeground())
	assert.Equal(t, 1, style.GetPaddingLeft())
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "#000000", Blend("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 1))
	assert.Equal(t, "#ffffff", Blend("not-a-colour", "#ffffff", 0.5))

	mid := Blend("#000000", "#ffffff", 0.5)
	assert.NotEqual(t, "#000000", mid)
	assert.NotEqual(t, "#ffffff", mid)
	assert.True(t, strings.HasPrefix(mid, "#"))
}

func TestTransitionTiming(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, TransitionDuration)
	assert.Equal(t, 50*time.Millisecond, TransitionDuration/TransitionFrames)
}
