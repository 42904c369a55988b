package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// keymap holds every binding; help output depends on the current state.
type keymap struct {
	state state

	up, down, left, right, top, bottom key.Binding
	filter, clearFilter, acceptFilter  key.Binding

	selectIssue key.Binding
	another     key.Binding
	random      key.Binding
	refresh     key.Binding
	save        key.Binding
	favorites   key.Binding
	remove      key.Binding
	clearAll    key.Binding
	timer       key.Binding
	timerReset  key.Binding
	back        key.Binding
	showHelp    key.Binding
	quit        key.Binding
	forceQuit   key.Binding
}

func (k *keymap) setState(s state) {
	k.state = s
}

func newKeymap() *keymap {
	return &keymap{
		up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:         key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		right:        key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		top:          key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		bottom:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		filter:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		clearFilter:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		acceptFilter: key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "apply filter")),

		selectIssue: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show")),
		another:     key.NewBinding(key.WithKeys("n", " "), key.WithHelp("n", "get another")),
		random:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random issue")),
		refresh:     key.NewBinding(key.WithKeys("ctrl+r", "R"), key.WithHelp("R", "refresh issues")),
		save:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save favorite")),
		favorites:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorites")),
		remove:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		clearAll:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
		timer:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "start/stop timer")),
		timerReset:  key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "reset timer")),
		back:        key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		showHelp:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		forceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k *keymap) help() (short, full []key.Binding) {
	switch k.state {
	case issuesState:
		short = []key.Binding{k.selectIssue, k.random, k.favorites}
		full = []key.Binding{k.selectIssue, k.random, k.refresh, k.favorites, k.timer, k.timerReset, k.quit}
	case cardState:
		short = []key.Binding{k.another, k.save, k.timer, k.back, k.showHelp}
		full = []key.Binding{k.another, k.random, k.save, k.favorites, k.timer, k.timerReset, k.back, k.quit}
	case favoritesState:
		short = []key.Binding{k.remove, k.clearAll, k.back}
		full = []key.Binding{k.remove, k.clearAll, k.timer, k.back, k.quit}
	}

	return short, full
}

// ShortHelp implements help.KeyMap.
func (k *keymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

// FullHelp implements help.KeyMap.
func (k *keymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

// forList adapts the shared bindings to list navigation. Quit is left to
// the model so "q" never leaves a filter prompt.
func (k *keymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		Filter:               k.filter,
		ClearFilter:          k.clearFilter,
		CancelWhileFiltering: k.clearFilter,
		AcceptWhileFiltering: k.acceptFilter,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 key.NewBinding(key.WithDisabled()),
		ForceQuit:            key.NewBinding(key.WithDisabled()),
	}
}
