package todos

import (
	"context"

	"github.com/origami-app/origami/internal/models"
)

// Repository describes persistence for todo items.
type Repository interface {
	// Create inserts a new todo and returns its assigned id.
	Create(ctx context.Context, t *models.Todo) (int64, error)

	// GetAll returns every todo, newest first.
	GetAll(ctx context.Context) ([]models.Todo, error)

	// SetCompleted flips the completion flag and refreshes updated_at.
	SetCompleted(ctx context.Context, id int64, completed bool) error

	// Rename changes the title and refreshes updated_at.
	Rename(ctx context.Context, id int64, title string) error

	// Delete removes the todo.
	Delete(ctx context.Context, id int64) error
}
