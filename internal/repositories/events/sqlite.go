package events

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/dbx"
	"github.com/origami-app/origami/internal/models"
)

const eventColumns = "id, title, description, event_date, priority, created_at, updated_at"

// SQLiteRepository stores calendar events in sqlite.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, event *models.CalendarEvent) (int64, error) {
	now := time.Now()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	if event.Priority == "" {
		event.Priority = models.PriorityNormal
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO calendar_events (title, description, event_date, priority, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.Title, event.Description, dbx.FormatTime(dayStart(event.EventDate)),
		event.Priority, dbx.FormatTime(event.CreatedAt), dbx.FormatTime(event.UpdatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	event.ID = id
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM calendar_events ORDER BY event_date ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *SQLiteRepository) GetByDate(ctx context.Context, date time.Time) ([]models.CalendarEvent, error) {
	from, to := dayRange(date)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM calendar_events WHERE event_date >= ? AND event_date < ? ORDER BY id ASC",
		dbx.FormatTime(from), dbx.FormatTime(to))
	if err != nil {
		return nil, fmt.Errorf("query events by date: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *SQLiteRepository) GetUpcoming(ctx context.Context, from time.Time, limit int) ([]models.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM calendar_events WHERE event_date >= ? ORDER BY event_date ASC, id ASC LIMIT ?",
		dbx.FormatTime(dayStart(from)), limit)
	if err != nil {
		return nil, fmt.Errorf("query upcoming events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, patch *models.CalendarEventPatch) error {
	if patch == nil || patch.IsZero() {
		return nil
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if patch.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Priority != nil {
		set = append(set, "priority = ?")
		args = append(args, *patch.Priority)
	}
	set = append(set, "updated_at = ?")
	args = append(args, dbx.FormatTime(time.Now()), id)

	result, err := r.db.ExecContext(ctx,
		"UPDATE calendar_events SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM calendar_events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func dayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func dayRange(t time.Time) (time.Time, time.Time) {
	from := dayStart(t)
	return from, from.AddDate(0, 0, 1)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.CalendarEvent, error) {
	var (
		event                         models.CalendarEvent
		eventDate, createdAt, updated string
	)
	err := row.Scan(&event.ID, &event.Title, &event.Description, &eventDate,
		&event.Priority, &createdAt, &updated)
	if err != nil {
		return nil, err
	}
	if event.EventDate, err = dbx.ParseTime(eventDate); err != nil {
		return nil, err
	}
	if event.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, err
	}
	if event.UpdatedAt, err = dbx.ParseTime(updated); err != nil {
		return nil, err
	}
	return &event, nil
}

func collectEvents(rows *sql.Rows) ([]models.CalendarEvent, error) {
	var result []models.CalendarEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *event)
	}
	return result, rows.Err()
}
