package models

import "time"

// Event priorities, in decreasing order of urgency.
const (
	PriorityImportant     = "important"
	PriorityNextImportant = "next_important"
	PriorityNormal        = "normal"
)

// CalendarEvent is a dated item on the calendar.
type CalendarEvent struct {
	ID          int64
	Title       string
	Description string

	// EventDate carries only the calendar date; the time part is zero.
	EventDate time.Time

	// Priority is one of the Priority* constants.
	Priority string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalendarEventPatch describes a partial update; nil fields stay untouched.
type CalendarEventPatch struct {
	Title       *string
	Description *string
	Priority    *string
}

// IsZero reports whether the patch changes nothing.
func (p CalendarEventPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil
}

// PriorityDisplay returns the human-readable label for the priority.
func (e *CalendarEvent) PriorityDisplay() string {
	switch e.Priority {
	case PriorityImportant:
		return "Important"
	case PriorityNextImportant:
		return "Next Important"
	default:
		return "Normal"
	}
}

// FormattedDate renders the event date as "January 15, 2024".
func (e *CalendarEvent) FormattedDate() string {
	return e.EventDate.Format("January 2, 2006")
}
