package tui

import (
	"fmt"

	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// issueItem is a category in the issues list.
type issueItem string

func (i issueItem) FilterValue() string { return string(i) }
func (i issueItem) Title() string       { return string(i) }
func (i issueItem) Description() string { return "" }

// favoriteItem is a saved record in the favorites list.
type favoriteItem struct {
	fav ports.Favorite
}

func (f favoriteItem) FilterValue() string { return f.fav.Record.Issue + " " + f.fav.Record.Quote }

func (f favoriteItem) Title() string {
	return fmt.Sprintf("%s · saved %s", f.fav.Record.Issue, f.fav.SavedAt.Local().Format("Jan 2 15:04"))
}

func (f favoriteItem) Description() string {
	if f.fav.Record.Quote != "" {
		return f.fav.Record.Quote
	}

	return f.fav.Record.Tip
}
