package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/models"
)

// Pomodoro runs the focus-timer submenu: start and finish sessions,
// review history, adjust durations.
func (a *App) Pomodoro(ctx context.Context) error {
	printlnFn("Pomodoro commands: start, finish, history, settings, back")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		printlnFn("pomodoro> ")
		if !scanner.Scan() {
			return nil
		}
		switch cmd := strings.TrimSpace(scanner.Text()); cmd {
		case "":
		case "start":
			a.startPomodoro(ctx)
		case "finish":
			a.finishPomodoro(ctx)
		case "history":
			a.pomodoroHistory(ctx)
		case "settings":
			a.pomodoroSettings(ctx)
		case "back", "exit":
			return nil
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) startPomodoro(ctx context.Context) {
	task, err := getSimpleText(a.reader, "What are you working on? (optional)", os.Stdout)
	if err != nil {
		return
	}
	id, err := a.pomodoro.Start(ctx, task)
	if err != nil {
		Error("could not start session: %v", err)
		return
	}
	cfg, err := a.pomodoro.Settings(ctx)
	if err != nil {
		Error("could not read settings: %v", err)
		return
	}
	Success("Session %d started: %d minutes of focus", id, cfg.Duration)
}

func (a *App) finishPomodoro(ctx context.Context) {
	id, err := a.promptID("Session id")
	if err != nil {
		return
	}
	if err := a.pomodoro.Finish(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No session with that id.")
			return
		}
		Error("could not finish session: %v", err)
		return
	}
	Success("Session completed")
}

func (a *App) pomodoroHistory(ctx context.Context) {
	history, err := a.pomodoro.History(ctx, 10)
	if err != nil {
		Error("history failed: %v", err)
		return
	}
	if len(history) == 0 {
		printlnFn("No sessions yet.")
		return
	}
	for _, s := range history {
		state := "running"
		if s.Completed {
			state = "done"
		}
		line := fmt.Sprintf("%d  %s  %d min  %s", s.ID, s.StartedAt.Format("2006-01-02 15:04"), int(s.Duration.Minutes()), state)
		if s.TaskDescription != "" {
			line += "  " + s.TaskDescription
		}
		printlnFn(line)
	}

	count, err := a.pomodoro.CompletedCount(ctx)
	if err == nil {
		printlnFn(fmt.Sprintf("Completed sessions: %d", count))
	}
}

func (a *App) pomodoroSettings(ctx context.Context) {
	cfg, err := a.pomodoro.Settings(ctx)
	if err != nil {
		Error("could not read settings: %v", err)
		return
	}
	printlnFn(fmt.Sprintf("Focus %d min, short break %d min, long break %d min", cfg.Duration, cfg.ShortBreak, cfg.LongBreak))

	updated := models.PomodoroSettings{}
	for _, f := range []struct {
		prompt  string
		current int
		dest    *int
	}{
		{"Focus minutes", cfg.Duration, &updated.Duration},
		{"Short break minutes", cfg.ShortBreak, &updated.ShortBreak},
		{"Long break minutes", cfg.LongBreak, &updated.LongBreak},
	} {
		raw, err := getSimpleText(a.reader, fmt.Sprintf("%s (empty keeps %d)", f.prompt, f.current), os.Stdout)
		if err != nil {
			return
		}
		if raw == "" {
			*f.dest = f.current
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			Warning("Minutes must be a number.")
			return
		}
		*f.dest = v
	}

	if err := a.pomodoro.UpdateSettings(ctx, &updated); err != nil {
		if errors.Is(err, common.ErrValidation) {
			Warning("%v", err)
			return
		}
		Error("could not save settings: %v", err)
		return
	}
	Success("Timer settings saved")
}
