package source

import (
	"fmt"
	"os"
	"strings"

	"breakpoint-indicator/log"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// PropertyPrefix precedes the breakpoint name in a custom property:
// --breakpoint-small: 480px;
const PropertyPrefix = "--breakpoint-"

// Stylesheet holds the breakpoint custom properties declared on the document
// root of a CSS file. Declarations inside at-rules such as @media are ignored,
// and a later declaration overrides an earlier one.
type Stylesheet struct {
	// Path is empty for stylesheets parsed from memory.
	Path   string
	values Raw
}

// ParseStylesheet extracts --breakpoint-* properties from :root and html rules.
func ParseStylesheet(data []byte) *Stylesheet {
	sheet := &Stylesheet{values: Raw{}}

	parser := css.NewParser(parse.NewInputBytes(data), false)
	atDepth := 0
	inRoot := false

	for {
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				log.SourceTrace("stylesheet parse stopped: %v", err)
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atDepth++

		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}

		case css.BeginRulesetGrammar:
			inRoot = atDepth == 0 && isRootSelector(string(tok)+joinTokens(parser.Values()))

		case css.EndRulesetGrammar:
			inRoot = false

		case css.CustomPropertyGrammar:
			if !inRoot {
				continue
			}
			prop := string(tok)
			name, ok := strings.CutPrefix(prop, PropertyPrefix)
			if !ok || name == "" {
				continue
			}
			value := strings.TrimSpace(joinTokens(parser.Values()))
			log.SourceTrace("stylesheet %s = %q", prop, value)
			sheet.values[name] = value
		}
	}
}

// LoadStylesheet reads and parses a CSS file.
func LoadStylesheet(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}
	sheet := ParseStylesheet(data)
	sheet.Path = path
	return sheet, nil
}

// Lookup implements Source.
func (s *Stylesheet) Lookup(name string) (int, bool) {
	if s == nil {
		return 0, false
	}
	return s.values.Lookup(name)
}

// Value returns the raw declared value for name.
func (s *Stylesheet) Value(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[name]
	return v, ok
}

// Len returns how many breakpoint properties were declared.
func (s *Stylesheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

func isRootSelector(selectors string) bool {
	for _, sel := range strings.Split(selectors, ",") {
		switch strings.ToLower(strings.TrimSpace(sel)) {
		case ":root", "html":
			return true
		}
	}
	return false
}

func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return sb.String()
}
