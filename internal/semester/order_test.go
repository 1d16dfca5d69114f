package semester

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Label
		ok   bool
	}{
		{"Fall 2024", Label{Fall, 2024}, true},
		{"Spring 24", Label{Spring, 2024}, true},
		{"spring-2023", Label{Spring, 2023}, true},
		{"Autumn'22", Label{Fall, 2022}, true},
		{"Short 2025", Label{Summer, 2025}, true},
		{"WINTER2021", Label{Winter, 2021}, true},
		{"Semester Summer 2024", Label{Summer, 2024}, true},
		{"2024", Label{}, false},
		{"Term 5", Label{}, false},
		{"", Label{}, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.ok, ok, "Parse(%q) ok", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare("Fall 24", "Spring 24"))
	assert.Positive(t, Compare("Spring 24", "Fall 24"))
	assert.Zero(t, Compare("Spring 2024", "Spring 24"))
	assert.Negative(t, Compare("Spring 2025", "Fall 2024"))
	assert.Negative(t, Compare("Summer 2024", "Spring 2024"))
	assert.Negative(t, Compare("Spring 2024", "Winter 2024"))
}

func TestCompare_Unparseable(t *testing.T) {
	assert.Positive(t, Compare("garbage", "Winter 2001"))
	assert.Negative(t, Compare("Winter 2001", "garbage"))
	// reverse lexicographic between two unparseable labels
	assert.Negative(t, Compare("b", "a"))
	assert.Zero(t, Compare("x", "x"))
}

func TestSort(t *testing.T) {
	in := []string{"Spring 2024", "unknown", "Fall 2023", "Fall 2024", "Summer 24"}
	got := Sort(in)
	assert.Equal(t, []string{"Fall 2024", "Summer 24", "Spring 2024", "Fall 2023", "unknown"}, got)
	assert.Equal(t, "Spring 2024", in[0], "input must not be reordered")
}

func TestLatest(t *testing.T) {
	assert.Equal(t, "Fall 2024", Latest([]string{"Spring 2024", " Fall 2024 ", ""}))
	assert.Equal(t, "", Latest(nil))
}

func TestLatestN(t *testing.T) {
	labels := []string{"Spring 2024", "Fall 2023", "Spring 2024", "Fall 2024", "Summer 2024"}
	got := LatestN(labels, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Fall 2024", "Summer 2024", "Spring 2024"}, got)
	assert.Len(t, LatestN(labels, 10), 4)
	assert.Empty(t, LatestN(labels, 0))
}
