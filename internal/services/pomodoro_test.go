package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/models"
	"github.com/origami-app/origami/internal/repositories/pomodoro"
	"github.com/origami-app/origami/internal/repositories/settings"

	_ "modernc.org/sqlite"
)

func newTestPomodoro(t *testing.T) *PomodoroService {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE pomodoro_sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  duration INTEGER NOT NULL,
  task_description TEXT NOT NULL DEFAULT '',
  completed INTEGER NOT NULL DEFAULT 0,
  started_at TEXT NOT NULL,
  ended_at TEXT
);
`)
	require.NoError(t, err)

	_, err = db.Exec(`
CREATE TABLE app_settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)

	return NewPomodoroService(pomodoro.NewSQLiteRepository(db), settings.NewSQLiteRepository(db))
}

func TestPomodoroDefaultSettings(t *testing.T) {
	svc := newTestPomodoro(t)

	cfg, err := svc.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Duration)
	assert.Equal(t, 5, cfg.ShortBreak)
	assert.Equal(t, 15, cfg.LongBreak)
}

func TestPomodoroUpdateSettings(t *testing.T) {
	svc := newTestPomodoro(t)
	ctx := context.Background()

	err := svc.UpdateSettings(ctx, &models.PomodoroSettings{Duration: 0, ShortBreak: 5, LongBreak: 15})
	require.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, svc.UpdateSettings(ctx, &models.PomodoroSettings{Duration: 50, ShortBreak: 10, LongBreak: 30}))

	cfg, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Duration)
	assert.Equal(t, 10, cfg.ShortBreak)
	assert.Equal(t, 30, cfg.LongBreak)
}

func TestPomodoroStartAndFinish(t *testing.T) {
	svc := newTestPomodoro(t)
	ctx := context.Background()

	id, err := svc.Start(ctx, "deep work")
	require.NoError(t, err)

	history, err := svc.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 25*time.Minute, history[0].Duration)
	assert.Equal(t, "deep work", history[0].TaskDescription)
	assert.False(t, history[0].Completed)

	require.NoError(t, svc.Finish(ctx, id))

	count, err := svc.CompletedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.ErrorIs(t, svc.Finish(ctx, 999), common.ErrNotFound)
}
