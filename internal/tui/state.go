package tui

// state is the screen on display.
type state int

const (
	issuesState state = iota
	cardState
	favoritesState
)

func (s state) String() string {
	switch s {
	case issuesState:
		return "issues"
	case cardState:
		return "card"
	case favoritesState:
		return "favorites"
	default:
		return "unknown"
	}
}
