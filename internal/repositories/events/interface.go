package events

import (
	"context"
	"time"

	"github.com/origami-app/origami/internal/models"
)

// Repository manages calendar event rows.
type Repository interface {
	// Create inserts an event and returns its assigned id.
	Create(ctx context.Context, event *models.CalendarEvent) (int64, error)
	// GetAll returns every event ordered by event date ascending.
	GetAll(ctx context.Context) ([]models.CalendarEvent, error)
	// GetByDate returns the events scheduled on the given calendar day.
	GetByDate(ctx context.Context, date time.Time) ([]models.CalendarEvent, error)
	// GetUpcoming returns up to limit events on or after the given day,
	// soonest first.
	GetUpcoming(ctx context.Context, from time.Time, limit int) ([]models.CalendarEvent, error)
	// Update applies the non-empty fields of the patch.
	Update(ctx context.Context, id int64, patch *models.CalendarEventPatch) error
	// Delete removes the event with the given id.
	Delete(ctx context.Context, id int64) error
}
