// Package tui is the terminal presentation client: pick an issue, read a
// card, save favorites and run a reflection timer.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/jsamuelsen/mental-detox/internal/app"
	"github.com/jsamuelsen/mental-detox/internal/domain"
	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// Notices for favorite operations.
const (
	noticeSaved         = "Saved to favorites."
	noticeRemoved       = "Removed from favorites."
	noticeCleared       = "Favorites cleared."
	noticeNothingToSave = "Nothing to save yet. Pick an issue first."
	noticeFavoritesFail = "Could not update favorites."
)

const (
	appTitle     = "Mental Detox"
	statusHeight = 3
	timerStep    = time.Second
)

// Session is the browse state the UI drives. *app.BrowseService implements it.
type Session interface {
	Start(ctx context.Context) ([]string, []ports.Favorite, string)
	RefreshIssues(ctx context.Context) ([]string, string)
	Select(ctx context.Context, issue string) (*domain.Record, string)
	Another(ctx context.Context) (*domain.Record, string)
	Random(ctx context.Context) (string, *domain.Record, string)
	SaveCurrent() ([]ports.Favorite, error)
	RemoveFavorite(i int) ([]ports.Favorite, error)
	ClearFavorites() error
}

var _ Session = (*app.BrowseService)(nil)

// Options configures the UI.
type Options struct {
	// TimerDuration is the reflection countdown length.
	TimerDuration time.Duration
}

type (
	startedMsg struct {
		issues    []string
		favorites []ports.Favorite
		notice    string
	}

	issuesMsg struct {
		issues []string
		notice string
	}

	recordMsg struct {
		issue  string
		record *domain.Record
		notice string
	}

	favoritesMsg struct {
		favorites []ports.Favorite
		notice    string
		err       error
	}

	timerTickMsg struct {
		seq int
	}
)

// Model is the bubbletea model for the client.
type Model struct {
	ctx     context.Context
	session Session
	keymap  *keymap
	state   state
	loading bool

	spinnerC   spinner.Model
	issuesC    list.Model
	favoritesC list.Model
	helpC      help.Model

	selected string
	record   *domain.Record
	notice   string

	timer    *domain.Timer
	timerSeq int

	width, height int
}

// New builds the model. Nothing is fetched until Init runs.
func New(ctx context.Context, session Session, opts Options) *Model {
	if opts.TimerDuration <= 0 {
		opts.TimerDuration = 15 * time.Minute
	}

	m := &Model{
		ctx:     ctx,
		session: session,
		keymap:  newKeymap(),
		timer:   domain.NewTimer(opts.TimerDuration),
		helpC:   help.New(),
	}

	m.spinnerC = spinner.New()
	m.spinnerC.Spinner = spinner.Dot
	m.spinnerC.Style = lipgloss.NewStyle().Foreground(accentColor)

	m.issuesC = m.makeList(appTitle + " · choose an issue")
	m.favoritesC = m.makeList("Favorites")
	m.favoritesC.SetFilteringEnabled(false)

	m.setState(issuesState)

	return m
}

func (m *Model) makeList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accentColor).
		Foreground(accentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = titleStyle
	l.KeyMap = m.keymap.forList()
	l.AdditionalShortHelpKeys = m.keymap.ShortHelp
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return m.keymap.FullHelp()[0]
	}
	l.SetShowStatusBar(false)

	return l
}

func (m *Model) setState(s state) {
	m.state = s
	m.keymap.setState(s)
}

// Init loads the issues and favorites.
func (m *Model) Init() tea.Cmd {
	return m.load(func() tea.Msg {
		issues, favorites, notice := m.session.Start(m.ctx)
		return startedMsg{issues: issues, favorites: favorites, notice: notice}
	})
}

// load shows the spinner while cmd runs.
func (m *Model) load(cmd tea.Cmd) tea.Cmd {
	m.loading = true
	m.notice = ""

	return tea.Batch(m.spinnerC.Tick, cmd)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinnerC, cmd = m.spinnerC.Update(msg)

		return m, cmd

	case startedMsg:
		m.loading = false
		m.notice = msg.notice

		return m, tea.Batch(m.setIssues(msg.issues), m.setFavorites(msg.favorites))

	case issuesMsg:
		m.loading = false
		m.notice = msg.notice

		return m, m.setIssues(msg.issues)

	case recordMsg:
		m.loading = false
		m.record = msg.record
		m.notice = msg.notice

		if msg.issue != "" {
			m.selected = msg.issue
		}

		m.setState(cardState)

		return m, nil

	case favoritesMsg:
		m.notice = msg.notice
		if msg.err != nil {
			return m, nil
		}

		return m, m.setFavorites(msg.favorites)

	case timerTickMsg:
		return m, m.handleTick(msg)
	}

	return m, m.updateList(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.forceQuit) {
		return tea.Quit
	}

	// An open filter prompt owns the keyboard.
	if l := m.activeList(); l != nil && l.SettingFilter() {
		return m.updateList(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.timer):
		return m.toggleTimer()
	case key.Matches(msg, m.keymap.timerReset):
		m.resetTimer()
		return nil
	}

	if m.loading {
		return nil
	}

	switch m.state {
	case issuesState:
		return m.handleIssuesKey(msg)
	case cardState:
		return m.handleCardKey(msg)
	case favoritesState:
		return m.handleFavoritesKey(msg)
	}

	return nil
}

func (m *Model) handleIssuesKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.selectIssue):
		item, ok := m.issuesC.SelectedItem().(issueItem)
		if !ok {
			m.notice = app.MsgSelectFirst
			return nil
		}

		return m.selectCmd(string(item))
	case key.Matches(msg, m.keymap.random):
		return m.randomCmd()
	case key.Matches(msg, m.keymap.refresh):
		return m.load(func() tea.Msg {
			issues, notice := m.session.RefreshIssues(m.ctx)
			return issuesMsg{issues: issues, notice: notice}
		})
	case key.Matches(msg, m.keymap.favorites):
		m.setState(favoritesState)
		return nil
	}

	return m.updateList(msg)
}

func (m *Model) handleCardKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.another):
		return m.load(func() tea.Msg {
			rec, notice := m.session.Another(m.ctx)
			return recordMsg{record: rec, notice: notice}
		})
	case key.Matches(msg, m.keymap.random):
		return m.randomCmd()
	case key.Matches(msg, m.keymap.save):
		return m.saveCmd()
	case key.Matches(msg, m.keymap.favorites):
		m.setState(favoritesState)
	case key.Matches(msg, m.keymap.back):
		m.setState(issuesState)
	case key.Matches(msg, m.keymap.showHelp):
		m.helpC.ShowAll = !m.helpC.ShowAll
	}

	return nil
}

func (m *Model) handleFavoritesKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.remove):
		if len(m.favoritesC.Items()) == 0 {
			m.notice = app.MsgNoFavorites
			return nil
		}

		i := m.favoritesC.Index()

		return func() tea.Msg {
			favs, err := m.session.RemoveFavorite(i)
			return favoritesResult(favs, err, noticeRemoved)
		}
	case key.Matches(msg, m.keymap.clearAll):
		return func() tea.Msg {
			if err := m.session.ClearFavorites(); err != nil {
				return favoritesMsg{notice: noticeFavoritesFail, err: err}
			}

			return favoritesMsg{favorites: []ports.Favorite{}, notice: noticeCleared}
		}
	case key.Matches(msg, m.keymap.back):
		if m.record != nil {
			m.setState(cardState)
		} else {
			m.setState(issuesState)
		}

		return nil
	}

	return m.updateList(msg)
}

func (m *Model) selectCmd(issue string) tea.Cmd {
	return m.load(func() tea.Msg {
		rec, notice := m.session.Select(m.ctx, issue)
		return recordMsg{issue: issue, record: rec, notice: notice}
	})
}

func (m *Model) randomCmd() tea.Cmd {
	return m.load(func() tea.Msg {
		issue, rec, notice := m.session.Random(m.ctx)
		if issue == "" {
			return issuesMsg{notice: notice}
		}

		return recordMsg{issue: issue, record: rec, notice: notice}
	})
}

func (m *Model) saveCmd() tea.Cmd {
	return func() tea.Msg {
		favs, err := m.session.SaveCurrent()
		if errors.Is(err, app.ErrNothingToSave) {
			return favoritesMsg{notice: noticeNothingToSave, err: err}
		}

		return favoritesResult(favs, err, noticeSaved)
	}
}

func favoritesResult(favs []ports.Favorite, err error, ok string) favoritesMsg {
	if err != nil {
		return favoritesMsg{notice: noticeFavoritesFail, err: err}
	}

	return favoritesMsg{favorites: favs, notice: ok}
}

func (m *Model) setIssues(issues []string) tea.Cmd {
	return m.issuesC.SetItems(lo.Map(issues, func(s string, _ int) list.Item {
		return issueItem(s)
	}))
}

func (m *Model) setFavorites(favs []ports.Favorite) tea.Cmd {
	return m.favoritesC.SetItems(lo.Map(favs, func(f ports.Favorite, _ int) list.Item {
		return favoriteItem{fav: f}
	}))
}

func (m *Model) toggleTimer() tea.Cmd {
	if m.timer.Running() {
		m.timer.Stop()
		m.timerSeq++

		return nil
	}

	m.timer.Start()
	if !m.timer.Running() {
		return nil
	}

	m.timerSeq++

	return m.tick()
}

func (m *Model) resetTimer() {
	m.timer.Reset()
	m.timerSeq++

	if m.notice == domain.TimeUpMessage {
		m.notice = ""
	}
}

// tick schedules the next countdown step. Ticks from an older start are
// dropped by sequence number.
func (m *Model) tick() tea.Cmd {
	seq := m.timerSeq

	return tea.Tick(timerStep, func(time.Time) tea.Msg {
		return timerTickMsg{seq: seq}
	})
}

func (m *Model) handleTick(msg timerTickMsg) tea.Cmd {
	if msg.seq != m.timerSeq || !m.timer.Running() {
		return nil
	}

	if m.timer.Tick(timerStep) {
		m.notice = domain.TimeUpMessage
		return nil
	}

	return m.tick()
}

func (m *Model) activeList() *list.Model {
	switch m.state {
	case issuesState:
		return &m.issuesC
	case favoritesState:
		return &m.favoritesC
	default:
		return nil
	}
}

func (m *Model) updateList(msg tea.Msg) tea.Cmd {
	l := m.activeList()
	if l == nil {
		return nil
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)

	return cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	x, y := paddingStyle.GetFrameSize()
	w, h := width-x, height-y-statusHeight

	m.issuesC.SetSize(w, h)
	m.favoritesC.SetSize(w, h)
	m.helpC.Width = w
}
