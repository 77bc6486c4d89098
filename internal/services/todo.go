package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/models"
	"github.com/origami-app/origami/internal/repositories/todos"
)

// TodoService manages the task list.
type TodoService struct {
	repo todos.Repository
}

func NewTodoService(repo todos.Repository) *TodoService {
	return &TodoService{repo: repo}
}

// Add creates a new task. The title must be non-empty and the priority,
// when given, must be 1-3; zero defaults to low.
func (s *TodoService) Add(ctx context.Context, title, description string, priority int, dueDate *time.Time) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("%w: task title cannot be empty", common.ErrValidation)
	}
	if priority == 0 {
		priority = 1
	}
	if priority < 1 || priority > 3 {
		return 0, fmt.Errorf("%w: priority must be between 1 and 3", common.ErrValidation)
	}

	return s.repo.Create(ctx, &models.Todo{
		Title:       title,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		DueDate:     dueDate,
	})
}

// List returns every task, newest first.
func (s *TodoService) List(ctx context.Context) ([]models.Todo, error) {
	return s.repo.GetAll(ctx)
}

// Toggle flips the completion state of the task.
func (s *TodoService) Toggle(ctx context.Context, id int64) error {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, todo := range all {
		if todo.ID == id {
			return s.repo.SetCompleted(ctx, id, !todo.Completed)
		}
	}
	return common.ErrNotFound
}

// Rename changes the task title.
func (s *TodoService) Rename(ctx context.Context, id int64, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: task title cannot be empty", common.ErrValidation)
	}
	return s.repo.Rename(ctx, id, title)
}

// Delete removes the task.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
