// Package favorites persists the client's saved records as a JSON file.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/jsamuelsen/mental-detox/internal/domain"
	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// fileVersion is written to every file and checked on read.
const fileVersion = 1

// File and directory permissions for the favorites file.
const (
	dirPerm  = 0o755
	filePerm = 0o600
)

// ErrUnsupportedVersion is returned when the file was written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported favorites file version")

type fileContents struct {
	Version   int     `json:"version"`
	Favorites []entry `json:"favorites"`
}

type entry struct {
	Issue      string    `json:"issue"`
	Quote      string    `json:"quote,omitempty"`
	Reference  string    `json:"reference,omitempty"`
	VideoTitle string    `json:"video_title,omitempty"`
	VideoLink  string    `json:"video_link,omitempty"`
	Tip        string    `json:"tip,omitempty"`
	SavedAt    time.Time `json:"saved_at"`
}

// Config configures a Store.
type Config struct {
	// Path is the JSON file location. Parent directories are created on save.
	Path string

	// MaxEntries caps what Save writes. Zero means no cap.
	MaxEntries int

	// Fs is the filesystem to use. Defaults to the OS filesystem.
	Fs afero.Fs

	Logger *slog.Logger
}

// Store implements ports.FavoritesStore over a single JSON file.
type Store struct {
	path       string
	maxEntries int
	fs         afero.Fs
	logger     *slog.Logger

	mu sync.Mutex
}

var _ ports.FavoritesStore = (*Store)(nil)

// New creates a Store. Nothing is read until List is called.
func New(cfg Config) *Store {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		path:       cfg.Path,
		maxEntries: cfg.MaxEntries,
		fs:         fsys,
		logger:     logger.With(slog.String("component", "favorites.Store")),
	}
}

// Path returns the file location.
func (s *Store) Path() string {
	return s.path
}

// List returns the saved favorites, newest first. A missing file is an
// empty list.
func (s *Store) List() ([]ports.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []ports.Favorite{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading favorites %s: %w", s.path, err)
	}

	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("parsing favorites %s: %w", s.path, err)
	}

	if contents.Version > fileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, contents.Version)
	}

	return lo.Map(contents.Favorites, func(e entry, _ int) ports.Favorite {
		return ports.Favorite{
			Record: domain.Record{
				Issue:      e.Issue,
				Quote:      e.Quote,
				Reference:  e.Reference,
				VideoTitle: e.VideoTitle,
				VideoLink:  e.VideoLink,
				Tip:        e.Tip,
			},
			SavedAt: e.SavedAt,
		}
	}), nil
}

// Save replaces the file contents. The write goes to a sibling temp file
// that is renamed over the target.
func (s *Store) Save(favorites []ports.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxEntries > 0 && len(favorites) > s.maxEntries {
		favorites = favorites[:s.maxEntries]
	}

	contents := fileContents{
		Version: fileVersion,
		Favorites: lo.Map(favorites, func(f ports.Favorite, _ int) entry {
			return entry{
				Issue:      f.Record.Issue,
				Quote:      f.Record.Quote,
				Reference:  f.Record.Reference,
				VideoTitle: f.Record.VideoTitle,
				VideoLink:  f.Record.VideoLink,
				Tip:        f.Record.Tip,
				SavedAt:    f.SavedAt.UTC(),
			}
		}),
	}

	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("creating favorites directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, filePerm); err != nil {
		return fmt.Errorf("writing favorites: %w", err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replacing favorites: %w", err)
	}

	s.logger.Debug("favorites saved", slog.Int("count", len(favorites)))

	return nil
}
