// Package services contains the application services of Origami: journal
// access control, entry lifecycle, task/calendar/pomodoro management,
// profile handling and data export.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/cryptox"
	"github.com/origami-app/origami/internal/dbx"
	"github.com/origami-app/origami/internal/repositories/settings"
)

const (
	maxFailedAttempts = 5
	lockoutDuration   = 60 * time.Second
	minPasswordLength = 6
)

// PasswordGuard gates journal access behind an optional password.
//
// The failure counter lives in process memory; only the lockout
// timestamp is persisted. A restart therefore forgets accumulated
// failures but an active lockout window still holds until it elapses.
type PasswordGuard struct {
	db       *sql.DB
	settings settings.Repository

	failedAttempts int

	// nowFn is replaceable in tests to simulate the clock.
	nowFn func() time.Time
}

// NewPasswordGuard constructs a guard over the given database.
func NewPasswordGuard(db *sql.DB) *PasswordGuard {
	return &PasswordGuard{
		db:       db,
		settings: settings.NewSQLiteRepository(db),
		nowFn:    time.Now,
	}
}

// HasPassword reports whether protection is active: a hash is stored and
// the enabled flag is set.
func (g *PasswordGuard) HasPassword(ctx context.Context) (bool, error) {
	hash, err := g.settings.Get(ctx, settings.KeyJournalPasswordHash, "")
	if err != nil {
		return false, err
	}
	enabled, err := g.settings.Get(ctx, settings.KeyJournalPasswordEnabled, "false")
	if err != nil {
		return false, err
	}
	return hash != "" && enabled == "true", nil
}

// SetPassword stores the digest of password, marks protection enabled
// and resets any failure state. Passwords shorter than six characters
// are rejected with a validation error.
func (g *PasswordGuard) SetPassword(ctx context.Context, password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLength)
	}

	hash := cryptox.HashPassword(password)

	err := dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, settings.KeyJournalPasswordHash, hash); err != nil {
			return err
		}
		if err := repo.Set(ctx, settings.KeyJournalPasswordEnabled, "true"); err != nil {
			return err
		}
		return repo.Set(ctx, settings.KeyJournalLockoutTime, "0")
	})
	if err != nil {
		return err
	}

	g.failedAttempts = 0
	return nil
}

// VerifyPassword checks password against the stored digest.
//
// While a lockout window is active it returns false without consuming
// an attempt. When no hash is stored it returns true: access is open if
// protection was never configured. A mismatch increments the failure
// counter and, on the fifth consecutive failure, persists the lockout
// timestamp. A match resets all failure state.
func (g *PasswordGuard) VerifyPassword(ctx context.Context, password string) (bool, error) {
	locked, err := g.IsLocked(ctx)
	if err != nil {
		return false, err
	}
	if locked {
		return false, nil
	}

	stored, err := g.settings.Get(ctx, settings.KeyJournalPasswordHash, "")
	if err != nil {
		return false, err
	}
	if stored == "" {
		return true, nil
	}

	candidate := cryptox.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1 {
		g.failedAttempts = 0
		if err := g.settings.Set(ctx, settings.KeyJournalLockoutTime, "0"); err != nil {
			return false, err
		}
		return true, nil
	}

	g.failedAttempts++
	if g.failedAttempts >= maxFailedAttempts {
		stamp := strconv.FormatInt(g.nowFn().Unix(), 10)
		if err := g.settings.Set(ctx, settings.KeyJournalLockoutTime, stamp); err != nil {
			return false, err
		}
	}
	return false, nil
}

// ChangePassword verifies current (consuming an attempt on failure) and
// on success stores the new password.
func (g *PasswordGuard) ChangePassword(ctx context.Context, current, newPassword string) error {
	ok, err := g.VerifyPassword(ctx, current)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrUnauthorized
	}
	return g.SetPassword(ctx, newPassword)
}

// RemovePassword verifies current and on success clears the stored hash
// and disables protection.
func (g *PasswordGuard) RemovePassword(ctx context.Context, current string) error {
	ok, err := g.VerifyPassword(ctx, current)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrUnauthorized
	}

	err = dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, settings.KeyJournalPasswordHash, ""); err != nil {
			return err
		}
		if err := repo.Set(ctx, settings.KeyJournalPasswordEnabled, "false"); err != nil {
			return err
		}
		return repo.Set(ctx, settings.KeyJournalLockoutTime, "0")
	})
	if err != nil {
		return err
	}

	g.failedAttempts = 0
	return nil
}

// IsLocked reports whether the lockout window is active. Once the
// window has elapsed the persisted timestamp and the failure counter
// are cleared.
func (g *PasswordGuard) IsLocked(ctx context.Context) (bool, error) {
	raw, err := g.settings.Get(ctx, settings.KeyJournalLockoutTime, "0")
	if err != nil {
		return false, err
	}
	lockedAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || lockedAt == 0 {
		return false, nil
	}

	elapsed := g.nowFn().Sub(time.Unix(lockedAt, 0))
	if elapsed < lockoutDuration {
		return true, nil
	}

	g.failedAttempts = 0
	if err := g.settings.Set(ctx, settings.KeyJournalLockoutTime, "0"); err != nil {
		return false, err
	}
	return false, nil
}

// LockoutRemaining returns the seconds left in the lockout window, or 0
// when not locked.
func (g *PasswordGuard) LockoutRemaining(ctx context.Context) (int, error) {
	locked, err := g.IsLocked(ctx)
	if err != nil {
		return 0, err
	}
	if !locked {
		return 0, nil
	}

	raw, err := g.settings.Get(ctx, settings.KeyJournalLockoutTime, "0")
	if err != nil {
		return 0, err
	}
	lockedAt, _ := strconv.ParseInt(raw, 10, 64)

	remaining := lockoutDuration - g.nowFn().Sub(time.Unix(lockedAt, 0))
	seconds := int(remaining.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return seconds, nil
}

// RemainingAttempts returns how many verification attempts are left
// before a lockout starts.
func (g *PasswordGuard) RemainingAttempts() int {
	remaining := maxFailedAttempts - g.failedAttempts
	if remaining < 0 {
		return 0
	}
	return remaining
}
