package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/models"
	"github.com/origami-app/origami/internal/repositories/pomodoro"
	"github.com/origami-app/origami/internal/repositories/settings"
)

// PomodoroService runs the focus timer bookkeeping: session records in
// the database, durations from the settings store.
type PomodoroService struct {
	repo     pomodoro.Repository
	settings settings.Repository
}

func NewPomodoroService(repo pomodoro.Repository, settingsRepo settings.Repository) *PomodoroService {
	return &PomodoroService{repo: repo, settings: settingsRepo}
}

// Settings returns the configured timer durations.
func (s *PomodoroService) Settings(ctx context.Context) (*models.PomodoroSettings, error) {
	duration, err := s.minutes(ctx, settings.KeyPomodoroDuration, 25)
	if err != nil {
		return nil, err
	}
	short, err := s.minutes(ctx, settings.KeyShortBreak, 5)
	if err != nil {
		return nil, err
	}
	long, err := s.minutes(ctx, settings.KeyLongBreak, 15)
	if err != nil {
		return nil, err
	}
	return &models.PomodoroSettings{Duration: duration, ShortBreak: short, LongBreak: long}, nil
}

// UpdateSettings persists new timer durations, all in minutes.
func (s *PomodoroService) UpdateSettings(ctx context.Context, cfg *models.PomodoroSettings) error {
	for _, v := range []int{cfg.Duration, cfg.ShortBreak, cfg.LongBreak} {
		if v < 1 {
			return fmt.Errorf("%w: durations must be at least one minute", common.ErrValidation)
		}
	}
	if err := s.settings.Set(ctx, settings.KeyPomodoroDuration, strconv.Itoa(cfg.Duration)); err != nil {
		return err
	}
	if err := s.settings.Set(ctx, settings.KeyShortBreak, strconv.Itoa(cfg.ShortBreak)); err != nil {
		return err
	}
	return s.settings.Set(ctx, settings.KeyLongBreak, strconv.Itoa(cfg.LongBreak))
}

// Start records the beginning of a work session with the configured
// duration and returns its id.
func (s *PomodoroService) Start(ctx context.Context, task string) (int64, error) {
	cfg, err := s.Settings(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, &models.PomodoroSession{
		Duration:        time.Duration(cfg.Duration) * time.Minute,
		TaskDescription: task,
	})
}

// Finish marks the session completed.
func (s *PomodoroService) Finish(ctx context.Context, id int64) error {
	return s.repo.Complete(ctx, id)
}

// History returns the most recent sessions.
func (s *PomodoroService) History(ctx context.Context, limit int) ([]models.PomodoroSession, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}

// CompletedCount returns how many sessions were finished.
func (s *PomodoroService) CompletedCount(ctx context.Context) (int, error) {
	return s.repo.CountCompleted(ctx)
}

func (s *PomodoroService) minutes(ctx context.Context, key string, def int) (int, error) {
	raw, err := s.settings.Get(ctx, key, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def, nil
	}
	return v, nil
}
