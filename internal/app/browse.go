package app

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/mental-detox/internal/domain"
	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// Neutral messages shown instead of raw errors.
const (
	MsgNoData            = "No data found for this issue yet. Try another or click Get Another."
	MsgIssuesUnavailable = "Could not load issues from the backend."
	MsgSelectFirst       = "Select an issue first."
	MsgNoVideo           = "No valid video available for this entry."
	MsgNoTip             = "No tip available for this entry."
	MsgNoFavorites       = "No favorites yet."
)

// DefaultMaxFavorites caps the saved favorites list.
const DefaultMaxFavorites = 200

var (
	// ErrNothingToSave is returned when saving a favorite with no record shown.
	ErrNothingToSave = errors.New("no record to save")

	// ErrNoFavoritesStore is returned by favorite operations when none is configured.
	ErrNoFavoritesStore = errors.New("favorites are not configured")
)

// BrowseService holds the client session: the cached category list, the
// selected category, and the record on display.
type BrowseService struct {
	client       ports.DatasetClient
	favorites    ports.FavoritesStore
	maxFavorites int
	intN         func(n int) int
	now          func() time.Time
	logger       *slog.Logger

	mu       sync.Mutex
	issues   []string
	cached   bool
	selected string
	current  *domain.Record
}

// BrowseServiceConfig holds the session dependencies.
type BrowseServiceConfig struct {
	// Client talks to the dataset service. Required.
	Client ports.DatasetClient

	// Favorites persists saved records. Optional; favorite operations
	// return ErrNoFavoritesStore without it.
	Favorites ports.FavoritesStore

	// MaxFavorites caps the list. Defaults to DefaultMaxFavorites.
	MaxFavorites int

	// IntN picks the random category. Defaults to rand.IntN.
	IntN func(n int) int

	// Now stamps saved favorites. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// NewBrowseService creates a client session.
func NewBrowseService(cfg BrowseServiceConfig) *BrowseService {
	s := &BrowseService{
		client:       cfg.Client,
		favorites:    cfg.Favorites,
		maxFavorites: cfg.MaxFavorites,
		intN:         cfg.IntN,
		now:          cfg.Now,
		logger:       cfg.Logger,
	}

	if s.maxFavorites <= 0 {
		s.maxFavorites = DefaultMaxFavorites
	}

	if s.intN == nil {
		s.intN = rand.IntN
	}

	if s.now == nil {
		s.now = time.Now
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.logger = s.logger.With(slog.String("component", "app.BrowseService"))

	return s
}

// Start loads the category list and the saved favorites concurrently.
// Failures degrade to a notice; they are logged, never returned.
func (s *BrowseService) Start(ctx context.Context) (issues []string, favorites []ports.Favorite, notice string) {
	var g errgroup.Group

	g.Go(func() error {
		issues, notice = s.Issues(ctx)
		return nil
	})

	g.Go(func() error {
		favs, err := s.Favorites()
		if err != nil && !errors.Is(err, ErrNoFavoritesStore) {
			s.logger.WarnContext(ctx, "failed to load favorites", slog.Any("error", err))
		}

		favorites = favs

		return nil
	})

	_ = g.Wait()

	return issues, favorites, notice
}

// Issues returns the cached category list, fetching it on first use.
// On failure it returns an empty list and MsgIssuesUnavailable, and the
// next call tries again.
func (s *BrowseService) Issues(ctx context.Context) ([]string, string) {
	s.mu.Lock()
	if s.cached {
		issues := slices.Clone(s.issues)
		s.mu.Unlock()

		return issues, ""
	}
	s.mu.Unlock()

	issues, err := s.client.ListIssues(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list issues", slog.Any("error", err))
		return nil, MsgIssuesUnavailable
	}

	s.mu.Lock()
	s.issues = slices.Clone(issues)
	s.cached = true
	s.mu.Unlock()

	return issues, ""
}

// RefreshIssues drops the cached list and fetches it again.
func (s *BrowseService) RefreshIssues(ctx context.Context) ([]string, string) {
	s.mu.Lock()
	s.issues = nil
	s.cached = false
	s.mu.Unlock()

	return s.Issues(ctx)
}

// Select makes issue the current category and shows one record for it.
func (s *BrowseService) Select(ctx context.Context, issue string) (*domain.Record, string) {
	s.mu.Lock()
	s.selected = issue
	s.mu.Unlock()

	return s.fetch(ctx, issue)
}

// Another shows a different random record for the current category.
// The same record may come back twice in a row.
func (s *BrowseService) Another(ctx context.Context) (*domain.Record, string) {
	issue := s.Selected()
	if issue == "" {
		return nil, MsgSelectFirst
	}

	return s.fetch(ctx, issue)
}

// Random picks a category uniformly at random and selects it.
func (s *BrowseService) Random(ctx context.Context) (string, *domain.Record, string) {
	issues, notice := s.Issues(ctx)
	if len(issues) == 0 {
		if notice == "" {
			notice = MsgIssuesUnavailable
		}

		return "", nil, notice
	}

	issue := issues[s.intN(len(issues))]
	rec, notice := s.Select(ctx, issue)

	return issue, rec, notice
}

// Selected returns the current category, or "" before the first selection.
func (s *BrowseService) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected
}

// Current returns the record on display, or nil.
func (s *BrowseService) Current() *domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *BrowseService) fetch(ctx context.Context, issue string) (*domain.Record, string) {
	rec, err := s.client.Sample(ctx, issue)

	s.mu.Lock()
	s.current = rec
	s.mu.Unlock()

	if err != nil {
		level := slog.LevelWarn
		if domain.IsNotFound(err) {
			level = slog.LevelInfo
		}

		s.logger.Log(ctx, level, "failed to fetch record", slog.String("issue", issue), slog.Any("error", err))

		return nil, MsgNoData
	}

	return rec, ""
}

// Favorites returns the saved records, newest first.
func (s *BrowseService) Favorites() ([]ports.Favorite, error) {
	if s.favorites == nil {
		return nil, ErrNoFavoritesStore
	}

	return s.favorites.List()
}

// SaveCurrent prepends the record on display to the favorites and trims the
// list to its cap. Duplicates are allowed.
func (s *BrowseService) SaveCurrent() ([]ports.Favorite, error) {
	rec := s.Current()
	if rec == nil {
		return nil, ErrNothingToSave
	}

	favs, err := s.Favorites()
	if err != nil {
		return nil, err
	}

	favs = append([]ports.Favorite{{Record: *rec, SavedAt: s.now()}}, favs...)
	if len(favs) > s.maxFavorites {
		favs = favs[:s.maxFavorites]
	}

	if err := s.favorites.Save(favs); err != nil {
		return nil, err
	}

	return favs, nil
}

// RemoveFavorite deletes the favorite at index i (0 is newest).
func (s *BrowseService) RemoveFavorite(i int) ([]ports.Favorite, error) {
	favs, err := s.Favorites()
	if err != nil {
		return nil, err
	}

	if i < 0 || i >= len(favs) {
		return nil, domain.NewValidationErrorWithValue("index", "out of range", i)
	}

	favs = slices.Delete(favs, i, i+1)
	if err := s.favorites.Save(favs); err != nil {
		return nil, err
	}

	return favs, nil
}

// ClearFavorites removes every favorite.
func (s *BrowseService) ClearFavorites() error {
	if s.favorites == nil {
		return ErrNoFavoritesStore
	}

	return s.favorites.Save(nil)
}
