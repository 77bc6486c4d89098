package models

import "time"

// PomodoroSession records one focus-timer run.
type PomodoroSession struct {
	ID int64

	// Duration is the planned length of the session.
	Duration time.Duration

	// TaskDescription says what the session was spent on. May be empty.
	TaskDescription string

	Completed bool
	StartedAt time.Time

	// EndedAt is set when the session completes.
	EndedAt *time.Time
}
