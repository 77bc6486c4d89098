package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/dbx"
	"github.com/origami-app/origami/internal/models"
	"github.com/origami-app/origami/internal/repositories/settings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ProfileService maps the flat settings keys to a typed profile and
// back, so the rest of the code never deals with stringly-typed keys.
type ProfileService struct {
	db       *sql.DB
	settings settings.Repository
}

func NewProfileService(db *sql.DB) *ProfileService {
	return &ProfileService{db: db, settings: settings.NewSQLiteRepository(db)}
}

// Get assembles the profile from the settings store.
func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	for _, f := range []struct {
		key  string
		def  string
		dest *string
	}{
		{settings.KeyUserName, "User", &p.Name},
		{settings.KeyDisplayHandle, "", &p.Handle},
		{settings.KeyUserEmail, "", &p.Email},
		{settings.KeyMemberSince, "", &p.MemberSince},
		{settings.KeyProfileLastUpdated, "", &p.LastUpdated},
		{settings.KeyTheme, "dark", &p.Theme},
	} {
		v, err := s.settings.Get(ctx, f.key, f.def)
		if err != nil {
			return nil, err
		}
		*f.dest = v
	}
	return &p, nil
}

// Save validates and persists the profile in one transaction.
// MemberSince is stamped on the first save and never changes after;
// LastUpdated is refreshed on every save.
func (s *ProfileService) Save(ctx context.Context, p *models.Profile) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", common.ErrValidation)
	}
	email := strings.TrimSpace(p.Email)
	if email != "" && !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: malformed email address", common.ErrValidation)
	}

	now := time.Now().Format("January 2, 2006")

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)

		if err := repo.Set(ctx, settings.KeyUserName, name); err != nil {
			return err
		}
		if err := repo.Set(ctx, settings.KeyDisplayHandle, strings.TrimSpace(p.Handle)); err != nil {
			return err
		}
		if err := repo.Set(ctx, settings.KeyUserEmail, email); err != nil {
			return err
		}

		memberSince, err := repo.Get(ctx, settings.KeyMemberSince, "")
		if err != nil {
			return err
		}
		if memberSince == "" {
			if err := repo.Set(ctx, settings.KeyMemberSince, now); err != nil {
				return err
			}
		}
		return repo.Set(ctx, settings.KeyProfileLastUpdated, now)
	})
}

// Theme returns the active UI theme name.
func (s *ProfileService) Theme(ctx context.Context) (string, error) {
	return s.settings.Get(ctx, settings.KeyTheme, "dark")
}

// SetTheme switches the UI theme.
func (s *ProfileService) SetTheme(ctx context.Context, theme string) error {
	switch theme {
	case "dark", "light":
	default:
		return fmt.Errorf("%w: unknown theme %q", common.ErrValidation, theme)
	}
	return s.settings.Set(ctx, settings.KeyTheme, theme)
}

// NotificationsEnabled reports whether reminders should fire.
func (s *ProfileService) NotificationsEnabled(ctx context.Context) (bool, error) {
	v, err := s.settings.Get(ctx, settings.KeyNotificationsEnabled, "true")
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// SetNotificationsEnabled toggles reminder delivery.
func (s *ProfileService) SetNotificationsEnabled(ctx context.Context, enabled bool) error {
	v := "false"
	if enabled {
		v = "true"
	}
	return s.settings.Set(ctx, settings.KeyNotificationsEnabled, v)
}
