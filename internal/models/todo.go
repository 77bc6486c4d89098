package models

import "time"

// Todo is a task list item.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool

	// Priority is 1 (low) to 3 (high).
	Priority int

	// DueDate is optional.
	DueDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
