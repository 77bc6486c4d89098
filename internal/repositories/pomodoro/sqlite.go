package pomodoro

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/dbx"
	"github.com/origami-app/origami/internal/models"
)

// SQLiteRepository stores pomodoro sessions in sqlite. Durations are
// persisted as whole seconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, session *models.PomodoroSession) (int64, error) {
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO pomodoro_sessions (duration, task_description, completed, started_at)
		 VALUES (?, ?, ?, ?)`,
		int64(session.Duration/time.Second), session.TaskDescription,
		session.Completed, dbx.FormatTime(session.StartedAt))
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	session.ID = id
	return id, nil
}

func (r *SQLiteRepository) Complete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE pomodoro_sessions SET completed = 1, ended_at = ? WHERE id = ?",
		dbx.FormatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
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

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]models.PomodoroSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, duration, task_description, completed, started_at, ended_at
		 FROM pomodoro_sessions ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var result []models.PomodoroSession
	for rows.Next() {
		var (
			s         models.PomodoroSession
			seconds   int64
			startedAt string
			endedAt   sql.NullString
		)
		if err := rows.Scan(&s.ID, &seconds, &s.TaskDescription, &s.Completed, &startedAt, &endedAt); err != nil {
			return nil, err
		}
		s.Duration = time.Duration(seconds) * time.Second
		if s.StartedAt, err = dbx.ParseTime(startedAt); err != nil {
			return nil, err
		}
		if endedAt.Valid {
			t, err := dbx.ParseTime(endedAt.String)
			if err != nil {
				return nil, err
			}
			s.EndedAt = &t
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) CountCompleted(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pomodoro_sessions WHERE completed = 1").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
