package journal

import (
	"context"
	"time"

	"github.com/origami-app/origami/internal/models"
)

// Repository describes persistence for journal entries. Implementations
// are backed by the local SQLite database.
type Repository interface {
	// Create inserts a new entry and returns its assigned id. A zero
	// CreatedAt is stamped with the current time; a non-zero CreatedAt is
	// kept as-is, which is how past dates are backfilled.
	Create(ctx context.Context, e *models.JournalEntry) (int64, error)

	// GetAll returns every entry, newest first.
	GetAll(ctx context.Context) ([]models.JournalEntry, error)

	// GetByDate returns the entry whose CreatedAt falls on the given
	// calendar day, or nil when there is none. If duplicates exist the
	// most recent one wins; uniqueness per day is an application-level
	// convention, not a schema constraint.
	GetByDate(ctx context.Context, day time.Time) (*models.JournalEntry, error)

	// Search returns entries whose content or title contains the query,
	// case-insensitively, newest first.
	Search(ctx context.Context, query string) ([]models.JournalEntry, error)

	// Update applies the non-nil fields of patch and refreshes updated_at.
	Update(ctx context.Context, id int64, patch models.JournalEntryPatch) error

	// Delete removes the entry.
	Delete(ctx context.Context, id int64) error
}
