package breakpoint

import (
	"testing"

	"breakpoint-indicator/source"

	"github.com/stretchr/testify/assert"
)

func referenceSet() *Set {
	return Build([]Candidate{
		{Name: "small", Theme: "#F07E00"},
		{Name: "medium", Theme: "#2A465C"},
		{Name: "large", Theme: "#56425E"},
	}, source.Map{"small": 480, "medium": 768, "large": 1200})
}

func TestDescribeScenarios(t *testing.T) {
	tests := []struct {
		name      string
		set       *Set
		width     int
		wantText  string
		wantColor string
		wantAlert bool
	}{
		{
			name:      "mid range uses theme colour",
			set:       referenceSet(),
			width:     500,
			wantText:  "Viewport: 500px | Medium: Between 480px and 768px",
			wantColor: "#2A465C",
		},
		{
			name:      "smallest breakpoint",
			set:       referenceSet(),
			width:     300,
			wantText:  "Viewport: 300px | Small: 480px and below",
			wantColor: DefaultAlertColor,
			wantAlert: true,
		},
		{
			name:      "beyond the largest breakpoint",
			set:       referenceSet(),
			width:     2000,
			wantText:  "Viewport: 2000px | Large: 1200px and above",
			wantColor: DefaultAlertColor,
			wantAlert: true,
		},
		{
			name:      "largest breakpoint while it matches",
			set:       referenceSet(),
			width:     1000,
			wantText:  "Viewport: 1000px | Large: Between 768px and 1200px",
			wantColor: "#56425E",
		},
		{
			name:      "single breakpoint that matches takes the below branch",
			set:       Build(DefaultCandidates(), source.Map{"min": 600}),
			width:     100,
			wantText:  "Viewport: 100px | Min: 600px and below",
			wantColor: DefaultAlertColor,
			wantAlert: true,
		},
		{
			name:      "single breakpoint that is exceeded takes the above branch",
			set:       Build(DefaultCandidates(), source.Map{"min": 600}),
			width:     700,
			wantText:  "Viewport: 700px | Min: 600px and above",
			wantColor: DefaultAlertColor,
			wantAlert: true,
		},
		{
			name:      "nothing configured",
			set:       Build(DefaultCandidates(), source.Map{}),
			width:     640,
			wantText:  "Viewport: 640px",
			wantColor: NeutralColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.set.Describe(tt.width, Options{})
			assert.Equal(t, tt.wantText, d.Text)
			assert.Equal(t, tt.wantColor, d.Color)
			assert.Equal(t, tt.wantAlert, d.Alert)
			assert.Equal(t, tt.width, d.Width)
		})
	}
}

func TestDescribeEmptySetHasNoCurrent(t *testing.T) {
	d := Build(nil, source.Map{}).Describe(10, Options{})
	assert.False(t, d.Found)
	assert.Empty(t, d.Label)
	assert.Empty(t, d.Range)
}

func TestDescribeIsIdempotent(t *testing.T) {
	set := referenceSet()
	for _, w := range []int{0, 480, 500, 1199, 5000} {
		first := set.Describe(w, Options{})
		second := set.Describe(w, Options{})
		assert.Equal(t, first, second, "width %d", w)
	}
}

func TestDescribeOptions(t *testing.T) {
	d := referenceSet().Describe(90, Options{AlertColor: "#FF0000", Unit: "col"})
	assert.Equal(t, "Viewport: 90col | Small: 480col and below", d.Text)
	assert.Equal(t, "#FF0000", d.Color)
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"small":        "Small",
		"small-medium": "Small Medium",
		"x-large-wide": "X Large Wide",
		"extra_large":  "Extra Large",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, TitleCase(in), "TitleCase(%q)", in)
	}
}
