package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origami-app/origami/internal/common"

	_ "modernc.org/sqlite"
)

func setupSettingsDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE app_settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)
	return db
}

func newTestGuard(t *testing.T) *PasswordGuard {
	t.Helper()
	return NewPasswordGuard(setupSettingsDB(t))
}

func TestOpenAccessWithoutPassword(t *testing.T) {
	g := newTestGuard(t)
	ctx := context.Background()

	has, err := g.HasPassword(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	ok, err := g.VerifyPassword(ctx, "anything")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetPassword(t *testing.T) {
	g := newTestGuard(t)
	ctx := context.Background()

	require.ErrorIs(t, g.SetPassword(ctx, "short"), common.ErrValidation)

	require.NoError(t, g.SetPassword(ctx, "abc123"))

	has, err := g.HasPassword(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	ok, err := g.VerifyPassword(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.VerifyPassword(ctx, "wrong1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLockoutAfterFiveFailures(t *testing.T) {
	g := newTestGuard(t)
	ctx := context.Background()

	require.NoError(t, g.SetPassword(ctx, "abc123"))

	for i := 0; i < 4; i++ {
		ok, err := g.VerifyPassword(ctx, "wrong!")
		require.NoError(t, err)
		assert.False(t, ok)
	}

	locked, err := g.IsLocked(ctx)
	require.NoError(t, err)
	assert.False(t, locked, "four failures must not lock")
	assert.Equal(t, 1, g.RemainingAttempts())

	ok, err := g.VerifyPassword(ctx, "wrong!")
	require.NoError(t, err)
	assert.False(t, ok)

	locked, err = g.IsLocked(ctx)
	require.NoError(t, err)
	assert.True(t, locked, "fifth failure locks")

	// correct password is refused while locked and consumes no attempt
	ok, err = g.VerifyPassword(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, ok)

	remaining, err := g.LockoutRemaining(ctx)
	require.NoError(t, err)
	assert.Greater(t, remaining, 0)
	assert.LessOrEqual(t, remaining, 60)
}

func TestLockoutExpires(t *testing.T) {
	g := newTestGuard(t)
	ctx := context.Background()

	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	g.nowFn = func() time.Time { return now }

	require.NoError(t, g.SetPassword(ctx, "abc123"))

	for i := 0; i < 5; i++ {
		_, err := g.VerifyPassword(ctx, "wrong!")
		require.NoError(t, err)
	}

	locked, err := g.IsLocked(ctx)
	require.NoError(t, err)
	require.True(t, locked)

	// one second short of the window: still locked
	now = now.Add(59 * time.Second)
	locked, err = g.IsLocked(ctx)
	require.NoError(t, err)
	assert.True(t, locked)

	// window elapsed: unlocked and failure counter reset
	now = now.Add(2 * time.Second)
	locked, err = g.IsLocked(ctx)
	require.NoError(t, err)
	assert.False(t, locked)
	assert.Equal(t, maxFailedAttempts, g.RemainingAttempts())

	ok, err := g.VerifyPassword(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockoutSurvivesRestart(t *testing.T) {
	db := setupSettingsDB(t)
	ctx := context.Background()

	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	g := NewPasswordGuard(db)
	g.nowFn = func() time.Time { return now }
	require.NoError(t, g.SetPassword(ctx, "abc123"))
	for i := 0; i < 5; i++ {
		_, err := g.VerifyPassword(ctx, "wrong!")
		require.NoError(t, err)
	}

	// a fresh guard over the same database simulates a process restart:
	// the counter is gone but the persisted lockout timestamp holds
	restarted := NewPasswordGuard(db)
	restarted.nowFn = func() time.Time { return now.Add(10 * time.Second) }

	locked, err := restarted.IsLocked(ctx)
	require.NoError(t, err)
	assert.True(t, locked)

	restarted.nowFn = func() time.Time { return now.Add(61 * time.Second) }
	locked, err = restarted.IsLocked(ctx)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestChangePassword(t *testing.T) {
	g := newTestGuard(t)
	ctx := context.Background()

	require.NoError(t, g.SetPassword(ctx, "abc123"))

	require.ErrorIs(t, g.ChangePassword(ctx, "wrong!", "newpass1"), common.ErrUnauthorized)
	assert.Equal(t, maxFailedAttempts-1, g.RemainingAttempts())

	require.NoError(t, g.ChangePassword(ctx, "abc123", "newpass1"))

	ok, err := g.VerifyPassword(ctx, "newpass1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemovePassword(t *testing.T) {
	g := newTestGuard(t)
	ctx := context.Background()

	require.NoError(t, g.SetPassword(ctx, "abc123"))

	require.ErrorIs(t, g.RemovePassword(ctx, "wrong!"), common.ErrUnauthorized)

	require.NoError(t, g.RemovePassword(ctx, "abc123"))

	has, err := g.HasPassword(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	ok, err := g.VerifyPassword(ctx, "whatever")
	require.NoError(t, err)
	assert.True(t, ok, "removing the password reopens access")
}
