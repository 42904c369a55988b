package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIssue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Anxiety", "anxiety"},
		{"  Self Doubt ", "self doubt"},
		{"STRESS", "stress"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIssue(tt.input))
		})
	}
}

func TestRecord_Matches(t *testing.T) {
	r := Record{Issue: " Anxiety "}

	assert.True(t, r.Matches("anxiety"))
	assert.False(t, r.Matches("Anxiety"), "key must already be normalized")
	assert.False(t, r.Matches("stress"))
}

func TestCategoryIndex_FirstSeenCasingWins(t *testing.T) {
	idx := NewCategoryIndex([]Record{
		{Issue: "anxiety"},
		{Issue: "Anxiety"},
		{Issue: " ANXIETY "},
		{Issue: "Stress"},
	})

	require.Equal(t, 2, idx.Len())

	label, ok := idx.Lookup("ANXIETY")
	require.True(t, ok)
	assert.Equal(t, "anxiety", label)

	label, ok = idx.Lookup(" stress")
	require.True(t, ok)
	assert.Equal(t, "Stress", label)
}

func TestCategoryIndex_SkipsBlankIssues(t *testing.T) {
	idx := NewCategoryIndex([]Record{{Issue: ""}, {Issue: "  "}, {Issue: "Grief"}})

	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, []string{"Grief"}, idx.Sorted())
}

func TestCategoryIndex_SortedIsCaseInsensitive(t *testing.T) {
	idx := NewCategoryIndex([]Record{
		{Issue: "loneliness"},
		{Issue: "Anxiety"},
		{Issue: "burnout"},
		{Issue: "Zeal"},
		{Issue: "anger"},
	})

	sorted := idx.Sorted()

	assert.Equal(t, []string{"anger", "Anxiety", "burnout", "loneliness", "Zeal"}, sorted)

	seen := make(map[string]bool)
	for i, label := range sorted {
		key := strings.ToLower(label)
		assert.False(t, seen[key], "duplicate normalized entry %q", label)
		seen[key] = true

		if i > 0 {
			assert.LessOrEqual(t, strings.ToLower(sorted[i-1]), key)
		}
	}
}

func TestCategoryIndex_LookupUnknown(t *testing.T) {
	idx := NewCategoryIndex(nil)

	_, ok := idx.Lookup("anything")
	assert.False(t, ok)
	assert.Empty(t, idx.Sorted())
}
