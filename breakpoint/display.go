package breakpoint

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options control how a Display is formatted.
type Options struct {
	AlertColor string
	Unit       string
}

func (o Options) withDefaults() Options {
	if o.AlertColor == "" {
		o.AlertColor = DefaultAlertColor
	}
	if o.Unit == "" {
		o.Unit = DefaultUnit
	}
	return o
}

// Display is everything the badge needs to show for one width.
type Display struct {
	Width int
	// Current is the evaluated breakpoint; zero when Found is false.
	Current Breakpoint
	Found   bool
	// Label is the title-cased breakpoint name.
	Label string
	// Range describes the current breakpoint's bounds.
	Range string
	Color string
	// Alert is set for the open-ended ranges at either end of the set.
	Alert bool
	Text  string
}

// Describe evaluates width and formats the badge text and colour.
func (s *Set) Describe(width int, opts Options) Display {
	opts = opts.withDefaults()
	viewport := fmt.Sprintf("Viewport: %d%s", width, opts.Unit)

	current, ok := s.Evaluate(width)
	if !ok {
		return Display{
			Width: width,
			Color: NeutralColor,
			Text:  viewport,
		}
	}

	d := Display{
		Width:   width,
		Current: current,
		Found:   true,
		Label:   TitleCase(current.Name),
	}

	// Overflow is checked before underflow. With a single breakpoint this
	// decides which of the two open-ended labels is shown.
	switch {
	case !current.HasNext() && !current.Matches(width):
		d.Alert = true
		d.Color = opts.AlertColor
		d.Range = fmt.Sprintf("%d%s and above", current.Threshold, opts.Unit)
	case !current.HasPrevious():
		d.Alert = true
		d.Color = opts.AlertColor
		d.Range = fmt.Sprintf("%d%s and below", current.Threshold, opts.Unit)
	default:
		prev, _ := s.Previous(current)
		d.Color = current.Theme
		d.Range = fmt.Sprintf("Between %d%s and %d%s", prev.Threshold, opts.Unit, current.Threshold, opts.Unit)
	}

	d.Text = fmt.Sprintf("%s | %s: %s", viewport, d.Label, d.Range)
	return d
}

// TitleCase turns a kebab-case or snake_case name into space separated,
// title-cased words: "small-medium" becomes "Small Medium".
func TitleCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
