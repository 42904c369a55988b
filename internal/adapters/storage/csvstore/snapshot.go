package csvstore

import (
	"time"

	"github.com/jsamuelsen/mental-detox/internal/domain"
)

// Snapshot is an immutable view of one load of the source file.
type Snapshot struct {
	path     string
	records  []domain.Record
	index    *domain.CategoryIndex
	skipped  int
	loadedAt time.Time
	loadErr  error
}

// Loaded reports whether the file was read and validated.
func (s *Snapshot) Loaded() bool {
	return s.loadErr == nil
}

// Records returns the loaded records in file order.
func (s *Snapshot) Records() []domain.Record {
	return s.records
}

// Index returns the category index. It is empty when not loaded.
func (s *Snapshot) Index() *domain.CategoryIndex {
	if s.index == nil {
		return domain.NewCategoryIndex(nil)
	}

	return s.index
}

// LoadError returns why the snapshot is not loaded, or nil.
func (s *Snapshot) LoadError() error {
	return s.loadErr
}

// Path returns the source file location.
func (s *Snapshot) Path() string {
	return s.path
}

// Skipped returns how many rows were dropped for a blank issue.
func (s *Snapshot) Skipped() int {
	return s.skipped
}

// LoadedAt returns when the snapshot was built. Zero when not loaded.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}
