package cli

import (
	"context"
	"time"
)

// StartReminderWatcher periodically surfaces today's calendar events
// and overdue tasks. It respects the notifications toggle in settings
// and stops when ctx is cancelled.
func (a *App) StartReminderWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkReminders(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkReminders(ctx context.Context) {
	enabled, err := a.profile.NotificationsEnabled(ctx)
	if err != nil {
		a.logger.Warn(ctx, "reminder check skipped", "error", err)
		return
	}
	if !enabled {
		return
	}

	today, err := a.calendar.OnDate(ctx, time.Now())
	if err != nil {
		a.logger.Warn(ctx, "reminder check failed", "error", err)
		return
	}

	for _, e := range today {
		Warning("Today: %s [%s]", e.Title, e.PriorityDisplay())
	}

	tasks, err := a.todos.List(ctx)
	if err != nil {
		a.logger.Warn(ctx, "reminder check failed", "error", err)
		return
	}
	now := time.Now()
	for _, t := range tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}
		if !t.DueDate.After(now) {
			Warning("Due: %s", t.Title)
		}
	}
}
