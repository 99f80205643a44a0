// Package snapshot compares rendered terminal output in tests, ignoring
// colour and trailing whitespace.
package snapshot

import (
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex  = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap provides assertions on rendered output
type Snap struct {
	t *testing.T
}

// New creates a new Snap instance for the given test
func New(t *testing.T) *Snap {
	return &Snap{t: t}
}

// AssertContains checks that actual output contains the expected substring
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := Normalize(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := Normalize(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertLastLine checks the final line of the output, ignoring leading and
// trailing padding. The badge is always drawn on that line.
func (s *Snap) AssertLastLine(actual, expected string) {
	s.t.Helper()
	lines := strings.Split(Normalize(actual), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last != expected {
		s.t.Errorf("Last line mismatch.\nExpected: %q\nActual:   %q", expected, last)
	}
}

// Normalize strips ANSI codes and trailing whitespace and unifies line endings.
func Normalize(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the line count of the rendered output
func Lines(s string) int {
	return len(strings.Split(s, "\n"))
}

// Width returns the widest line in cells, ignoring escape codes.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
