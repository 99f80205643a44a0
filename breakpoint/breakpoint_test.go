package breakpoint

import (
	"math/rand"
	"sort"
	"testing"

	"breakpoint-indicator/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(s *Set) []string {
	var out []string
	for _, b := range s.All() {
		out = append(out, b.Name)
	}
	return out
}

func TestBuildFiltersAndSorts(t *testing.T) {
	set := Build(DefaultCandidates(), source.Map{
		"large":  1200,
		"small":  480,
		"medium": 768,
		// min, small-medium and max are not configured
	})

	require.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"small", "medium", "large"}, names(set))
	assert.Equal(t, "#F07E00", set.At(0).Theme, "theme colour follows the candidate")
}

func TestBuildLinksNeighbours(t *testing.T) {
	set := Build(DefaultCandidates(), source.Map{
		"min": 320, "small": 480, "small-medium": 600, "medium": 768, "large": 1200, "max": 1600,
	})

	all := set.All()
	require.Len(t, all, 6)

	first := all[0]
	assert.False(t, first.HasPrevious())
	_, ok := set.Previous(first)
	assert.False(t, ok)

	last := all[len(all)-1]
	assert.False(t, last.HasNext())
	_, ok = set.Next(last)
	assert.False(t, ok)

	for i := 0; i+1 < len(all); i++ {
		a, b := all[i], all[i+1]
		next, ok := set.Next(a)
		require.True(t, ok)
		assert.Equal(t, b.Name, next.Name, "%s.next", a.Name)

		prev, ok := set.Previous(b)
		require.True(t, ok)
		assert.Equal(t, a.Name, prev.Name, "%s.previous", b.Name)

		assert.Equal(t, i, a.Index)
	}
}

func TestBuildNothingConfigured(t *testing.T) {
	set := Build(DefaultCandidates(), source.Map{})
	assert.True(t, set.Empty())
	assert.Equal(t, 0, set.Len())

	_, ok := set.Evaluate(500)
	assert.False(t, ok)
}

func TestBuildEqualThresholdsKeepCandidateOrder(t *testing.T) {
	set := Build([]Candidate{{Name: "a"}, {Name: "b"}, {Name: "c"}}, source.Map{"a": 500, "b": 500, "c": 100})
	assert.Equal(t, []string{"c", "a", "b"}, names(set))
}

func TestBuildDoesNotShareState(t *testing.T) {
	set := Build(DefaultCandidates(), source.Map{"small": 480, "medium": 768})

	all := set.All()
	all[0].Threshold = 1

	assert.Equal(t, 480, set.At(0).Threshold, "All returns a copy")
}

func TestEvaluate(t *testing.T) {
	set := Build(DefaultCandidates(), source.Map{"small": 480, "medium": 768, "large": 1200})

	tests := []struct {
		width int
		want  string
	}{
		{0, "small"},
		{300, "small"},
		{480, "small"},
		{481, "medium"},
		{500, "medium"},
		{768, "medium"},
		{769, "large"},
		{1200, "large"},
		{2000, "large"},
	}

	for _, tt := range tests {
		got, ok := set.Evaluate(tt.width)
		require.True(t, ok)
		assert.Equal(t, tt.want, got.Name, "Evaluate(%d)", tt.width)
	}
}

// TestEvaluateProperty checks the selection rule against a brute-force
// definition on random inputs.
func TestEvaluateProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(8)
		candidates := make([]Candidate, n)
		thresholds := source.Map{}
		for i := range candidates {
			name := string(rune('a' + i))
			candidates[i] = Candidate{Name: name}
			if rng.Intn(4) > 0 {
				thresholds[name] = 1 + rng.Intn(2000)
			}
		}

		set := Build(candidates, thresholds)
		require.Equal(t, len(thresholds), set.Len())

		values := make([]int, 0, len(thresholds))
		for _, v := range thresholds {
			values = append(values, v)
		}
		sort.Ints(values)
		for i, b := range set.All() {
			assert.Equal(t, values[i], b.Threshold, "set must be ascending")
		}

		width := rng.Intn(2500)
		got, ok := set.Evaluate(width)
		if set.Empty() {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok)

		want := values[len(values)-1]
		for _, v := range values {
			if v >= width {
				want = v
				break
			}
		}
		assert.Equal(t, want, got.Threshold, "width=%d thresholds=%v", width, values)
	}
}
