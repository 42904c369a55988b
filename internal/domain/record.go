// Package domain contains core business entities and rules.
package domain

import (
	"maps"
	"slices"
	"strings"
)

// Record is one content item associated with exactly one issue.
// Optional fields hold the empty string when absent in the source.
type Record struct {
	// Issue is the category label. Never empty for a loaded record.
	Issue string

	// Quote is the quotation text.
	Quote string

	// Reference is the attribution for the quote.
	Reference string

	// VideoTitle is the display title of the linked video.
	VideoTitle string

	// VideoLink is the raw video URL as it appears in the source.
	VideoLink string

	// Tip is a short practical suggestion.
	Tip string
}

// NormalizeIssue returns the matching key for an issue label.
// Matching ignores surrounding whitespace and case.
func NormalizeIssue(issue string) string {
	return strings.ToLower(strings.TrimSpace(issue))
}

// Matches reports whether the record belongs to the given normalized issue key.
func (r *Record) Matches(key string) bool {
	return NormalizeIssue(r.Issue) == key
}

// CategoryIndex maps normalized issue keys to their canonical display form.
// The first casing seen for a key wins.
type CategoryIndex struct {
	display map[string]string
}

// NewCategoryIndex builds an index from records in load order.
func NewCategoryIndex(records []Record) *CategoryIndex {
	idx := &CategoryIndex{
		display: make(map[string]string),
	}

	for i := range records {
		idx.add(records[i].Issue)
	}

	return idx
}

func (idx *CategoryIndex) add(issue string) {
	label := strings.TrimSpace(issue)
	key := strings.ToLower(label)

	if key == "" {
		return
	}

	if _, seen := idx.display[key]; seen {
		return
	}

	idx.display[key] = label
}

// Lookup returns the canonical display form for an issue in any casing.
func (idx *CategoryIndex) Lookup(issue string) (string, bool) {
	label, ok := idx.display[NormalizeIssue(issue)]
	return label, ok
}

// Len returns the number of distinct categories.
func (idx *CategoryIndex) Len() int {
	return len(idx.display)
}

// Sorted returns the display labels in case-insensitive alphabetical order.
func (idx *CategoryIndex) Sorted() []string {
	keys := slices.Sorted(maps.Keys(idx.display))

	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		labels = append(labels, idx.display[key])
	}

	return labels
}
