// Package source supplies breakpoint thresholds from the environment the
// badge runs in: a stylesheet, environment variables, static config or flags.
package source

import (
	"os"
	"strconv"
	"strings"
)

// Source looks up the threshold configured for a breakpoint name.
// ok is false when the name is not configured or its value is unusable.
type Source interface {
	Lookup(name string) (threshold int, ok bool)
}

// Map is a static set of thresholds.
type Map map[string]int

// Lookup implements Source. Non-positive values count as not configured.
func (m Map) Lookup(name string) (int, bool) {
	v, ok := m[name]
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// Raw is a set of unparsed values such as "480px", keyed by breakpoint name.
type Raw map[string]string

// Lookup implements Source.
func (r Raw) Lookup(name string) (int, bool) {
	v, ok := r[name]
	if !ok {
		return 0, false
	}
	return ParseThreshold(v)
}

// EnvPrefix is prepended to the upper-cased breakpoint name to form the
// environment variable: small-medium reads BREAKPOINT_SMALL_MEDIUM.
const EnvPrefix = "BREAKPOINT_"

// Env reads thresholds from environment variables.
type Env struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// EnvName returns the environment variable consulted for name.
func EnvName(name string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Lookup implements Source.
func (e Env) Lookup(name string) (int, bool) {
	getenv := e.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	v := getenv(EnvName(name))
	if v == "" {
		return 0, false
	}
	return ParseThreshold(v)
}

// Chain consults each source in order and returns the first hit.
type Chain []Source

// Lookup implements Source.
func (c Chain) Lookup(name string) (int, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(name); ok {
			return v, true
		}
	}
	return 0, false
}

// Any reports whether src configures at least one of names.
func Any(src Source, names []string) bool {
	for _, name := range names {
		if _, ok := src.Lookup(name); ok {
			return true
		}
	}
	return false
}

// ParseThreshold reads the leading integer of a CSS length such as "480px"
// or " 48.5rem". Anything after the integer is ignored. Values without a
// leading integer, and values <= 0, are rejected.
func ParseThreshold(v string) (int, bool) {
	v = strings.TrimSpace(v)
	end := 0
	if end < len(v) && (v[end] == '+' || v[end] == '-') {
		end++
	}
	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
