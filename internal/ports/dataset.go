// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for anything that may block
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/mental-detox/internal/domain"
)

// DatasetSnapshot is the immutable in-memory view of the source file.
// Implementations load it once and never mutate it afterwards.
type DatasetSnapshot interface {
	// Loaded reports whether the source file was read and validated.
	Loaded() bool

	// Records returns every loaded record in file order.
	// The returned slice must not be modified by callers.
	Records() []domain.Record

	// Index returns the category index built from Records.
	Index() *domain.CategoryIndex

	// LoadError returns the reason the snapshot is not loaded, or nil.
	LoadError() error
}

// DatasetSource publishes the current snapshot.
type DatasetSource interface {
	Snapshot() DatasetSnapshot
}

// DatasetClient is the presentation client's view of the dataset service.
type DatasetClient interface {
	// ListIssues returns the category labels in display order.
	// Returns domain.ErrUnavailable if the service cannot answer.
	ListIssues(ctx context.Context) ([]string, error)

	// Sample returns one random record for the issue.
	// Returns domain.ErrNotFound for unknown issues and
	// domain.ErrUnavailable on transport failures.
	Sample(ctx context.Context, issue string) (*domain.Record, error)
}

// Favorite is a record the user saved on this machine.
type Favorite struct {
	Record  domain.Record
	SavedAt time.Time
}

// FavoritesStore persists the client's saved records, newest first.
type FavoritesStore interface {
	// List returns the saved favorites, newest first.
	List() ([]Favorite, error)

	// Save replaces the stored favorites.
	Save(favorites []Favorite) error
}
