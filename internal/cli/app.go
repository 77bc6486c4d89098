// Package cli implements the interactive Origami shell: a REPL over the
// task list, the password-gated journal, the calendar, the pomodoro
// timer, the profile and data export.
package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/origami-app/origami/internal/config"
	"github.com/origami-app/origami/internal/logging"
	"github.com/origami-app/origami/internal/services"
	"github.com/origami-app/origami/internal/storage"
)

// App wires the services behind the interactive shell.
type App struct {
	config  *config.Config
	storage *storage.Storage

	guard    *services.PasswordGuard
	journal  *services.JournalService
	todos    *services.TodoService
	calendar *services.CalendarService
	pomodoro *services.PomodoroService
	profile  *services.ProfileService
	export   *services.ExportService

	reader *bufio.Reader
	logger logging.Logger
}

// NewApp opens the database at the configured path and builds the
// application services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := os.MkdirAll(filepath.Dir(c.DBPath), 0o700); err != nil {
		return nil, err
	}

	logger := logging.NewDefault()

	s, err := storage.InitDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "database initialization failed", "path", c.DBPath, "error", err)
		return nil, err
	}

	guard := services.NewPasswordGuard(s.DB)
	journal := services.NewJournalService(s.Journal, guard)

	return &App{
		config:   c,
		storage:  s,
		guard:    guard,
		journal:  journal,
		todos:    services.NewTodoService(s.Todos),
		calendar: services.NewCalendarService(s.Events),
		pomodoro: services.NewPomodoroService(s.Pomodoro, s.Settings),
		profile:  services.NewProfileService(s.DB),
		export:   services.NewExportService(s.Todos, journal, s.Events, c.DBPath, c.BackupDir),
		reader:   bufio.NewReader(os.Stdin),
		logger:   logger,
	}, nil
}

// Run starts the reminder watcher and the interactive loop, and closes
// the database when the loop ends.
func (a *App) Run(ctx context.Context) {
	defer a.storage.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartReminderWatcher(ctx, a.config.ReminderInterval)

	printlnFn("Welcome to Origami (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}
