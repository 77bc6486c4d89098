package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/models"
	"github.com/origami-app/origami/internal/repositories/events"
)

// CalendarService manages dated events.
type CalendarService struct {
	repo events.Repository
}

func NewCalendarService(repo events.Repository) *CalendarService {
	return &CalendarService{repo: repo}
}

// Add schedules an event on the given day.
func (s *CalendarService) Add(ctx context.Context, title, description string, day time.Time, priority string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("%w: event title cannot be empty", common.ErrValidation)
	}
	switch priority {
	case "", models.PriorityNormal, models.PriorityNextImportant, models.PriorityImportant:
	default:
		return 0, fmt.Errorf("%w: unknown priority %q", common.ErrValidation, priority)
	}

	return s.repo.Create(ctx, &models.CalendarEvent{
		Title:       title,
		Description: strings.TrimSpace(description),
		EventDate:   day,
		Priority:    priority,
	})
}

// List returns all events in date order.
func (s *CalendarService) List(ctx context.Context) ([]models.CalendarEvent, error) {
	return s.repo.GetAll(ctx)
}

// OnDate returns the events scheduled for the given day.
func (s *CalendarService) OnDate(ctx context.Context, day time.Time) ([]models.CalendarEvent, error) {
	return s.repo.GetByDate(ctx, day)
}

// Upcoming returns up to limit events from the given day onwards.
func (s *CalendarService) Upcoming(ctx context.Context, from time.Time, limit int) ([]models.CalendarEvent, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.GetUpcoming(ctx, from, limit)
}

// Update applies the patch to an event.
func (s *CalendarService) Update(ctx context.Context, id int64, patch *models.CalendarEventPatch) error {
	if patch.Priority != nil {
		switch *patch.Priority {
		case models.PriorityNormal, models.PriorityNextImportant, models.PriorityImportant:
		default:
			return fmt.Errorf("%w: unknown priority %q", common.ErrValidation, *patch.Priority)
		}
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes an event.
func (s *CalendarService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
