// Package csvstore loads the content dataset from a CSV file into an
// immutable in-memory snapshot.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/jsamuelsen/mental-detox/internal/domain"
	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// Column names in the source header.
const (
	ColumnIssue      = "issue"
	ColumnQuote      = "quote"
	ColumnReference  = "reference"
	ColumnVideoTitle = "video_title"
	ColumnVideoLink  = "video_link"
	ColumnTip        = "tip"
)

// checkerName identifies the store in health responses.
const checkerName = "dataset"

// utf8BOM is stripped from the first header cell when present.
const utf8BOM = "\ufeff"

// RequiredColumns must all be present in the header for the file to load.
var RequiredColumns = []string{
	ColumnIssue,
	ColumnQuote,
	ColumnReference,
	ColumnVideoTitle,
	ColumnVideoLink,
	ColumnTip,
}

// missingMarkers are cell values treated as absent, matching common
// spreadsheet exports.
var missingMarkers = []string{"NA", "N/A", "n/a", "#N/A", "NaN", "nan", "null", "NULL", "None"}

var (
	// ErrMissingColumns is returned when the header lacks a required column.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrEmptyFile is returned when the file has no header row.
	ErrEmptyFile = errors.New("file has no header row")

	// errNotLoaded is reported before Load has run.
	errNotLoaded = errors.New("dataset has not been loaded")
)

// Config configures a Store.
type Config struct {
	// Path is the location of the CSV file.
	Path string

	// Fs is the filesystem to read from. Defaults to the OS filesystem.
	Fs afero.Fs

	// Logger is an optional logger. If nil, a default logger is used.
	Logger *slog.Logger
}

// Store holds the current dataset snapshot.
// The snapshot is published once by Load and read without locking afterwards.
type Store struct {
	path     string
	fs       afero.Fs
	logger   *slog.Logger
	snapshot atomic.Pointer[Snapshot]
}

// New creates a store. Call Load before serving requests.
func New(cfg Config) *Store {
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		path:   cfg.Path,
		fs:     fs,
		logger: logger.With(slog.String("component", "csvstore.Store")),
	}
	s.snapshot.Store(&Snapshot{path: cfg.Path, loadErr: errNotLoaded})

	return s
}

// Load reads and validates the source file and publishes the resulting snapshot.
// On failure the store stays in the not-loaded state and the cause is returned
// as a domain.UnavailableError; the process keeps running.
func (s *Store) Load(ctx context.Context) error {
	logger := s.logger.With(slog.String("path", s.path))

	snap, err := s.read()
	if err != nil {
		loadErr := domain.NewUnavailableError(checkerName, err.Error())
		s.snapshot.Store(&Snapshot{path: s.path, loadErr: loadErr})

		logger.ErrorContext(ctx, "failed to load dataset", slog.Any("error", err))

		return loadErr
	}

	s.snapshot.Store(snap)

	logger.InfoContext(ctx, "dataset loaded",
		slog.Int("records", len(snap.records)),
		slog.Int("categories", snap.index.Len()),
		slog.Int("skipped_rows", snap.skipped),
	)

	return nil
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() ports.DatasetSnapshot {
	return s.snapshot.Load()
}

// Current returns the concrete snapshot, including load metadata.
func (s *Store) Current() *Snapshot {
	return s.snapshot.Load()
}

// Name returns the health check name for this store.
// Implements ports.HealthChecker.
func (s *Store) Name() string {
	return checkerName
}

// Check reports the load error, if any.
// Implements ports.HealthChecker.
func (s *Store) Check(_ context.Context) error {
	return s.snapshot.Load().LoadError()
}

func (s *Store) read() (*Snapshot, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("csv file not found at %s", s.path)
		}

		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, skipped, err := Parse(f)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		path:     s.path,
		records:  records,
		index:    domain.NewCategoryIndex(records),
		skipped:  skipped,
		loadedAt: time.Now(),
	}, nil
}

// Parse decodes CSV content into records.
// Rows whose issue is blank are dropped and counted in skipped.
// Short rows are tolerated; missing trailing cells are absent fields.
// A bare quote inside an unquoted field is kept as a literal character.
func Parse(r io.Reader) (records []domain.Record, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, ErrEmptyFile
	}

	if err != nil {
		return nil, 0, fmt.Errorf("reading csv header: %w", err)
	}

	columns := headerIndex(header)

	missing := lo.Reject(RequiredColumns, func(name string, _ int) bool {
		_, ok := columns[name]
		return ok
	})
	if len(missing) > 0 {
		return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, 0, fmt.Errorf("reading csv row: %w", readErr)
		}

		cell := func(name string) string {
			i := columns[name]
			if i >= len(row) {
				return ""
			}

			return clean(row[i])
		}

		rec := domain.Record{
			Issue:      cell(ColumnIssue),
			Quote:      cell(ColumnQuote),
			Reference:  cell(ColumnReference),
			VideoTitle: cell(ColumnVideoTitle),
			VideoLink:  cell(ColumnVideoLink),
			Tip:        cell(ColumnTip),
		}

		if rec.Issue == "" {
			skipped++
			continue
		}

		records = append(records, rec)
	}

	return records, skipped, nil
}

// headerIndex maps trimmed column names to their position. The first
// occurrence of a duplicated name wins.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}

		name = strings.TrimSpace(name)
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	return columns
}

// clean matches missing markers against the raw cell, so a padded " NA "
// survives as the text "NA".
func clean(value string) string {
	if lo.Contains(missingMarkers, value) {
		return ""
	}

	return strings.TrimSpace(value)
}
