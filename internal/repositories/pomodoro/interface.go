package pomodoro

import (
	"context"

	"github.com/origami-app/origami/internal/models"
)

// Repository persists focus-timer sessions.
type Repository interface {
	// Create records the start of a session and returns its assigned id.
	Create(ctx context.Context, session *models.PomodoroSession) (int64, error)
	// Complete marks the session finished and stamps its end time.
	Complete(ctx context.Context, id int64) error
	// Recent returns up to limit sessions, newest first.
	Recent(ctx context.Context, limit int) ([]models.PomodoroSession, error)
	// CountCompleted returns the number of completed sessions.
	CountCompleted(ctx context.Context) (int, error)
}
