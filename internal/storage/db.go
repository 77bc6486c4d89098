package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/origami-app/origami/internal/repositories/events"
	"github.com/origami-app/origami/internal/repositories/journal"
	"github.com/origami-app/origami/internal/repositories/pomodoro"
	"github.com/origami-app/origami/internal/repositories/settings"
	"github.com/origami-app/origami/internal/repositories/todos"
	"github.com/origami-app/origami/internal/storage/migrations"

	_ "modernc.org/sqlite"
)

// Storage bundles the opened database with the repositories built on it.
type Storage struct {
	DB       *sql.DB
	Settings settings.Repository
	Journal  journal.Repository
	Todos    todos.Repository
	Events   events.Repository
	Pomodoro pomodoro.Repository
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite file at dsn, migrates it and wires up
// the repositories.
func InitDatabase(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Storage{
		DB:       db,
		Settings: settings.NewSQLiteRepository(db),
		Journal:  journal.NewSQLiteRepository(db),
		Todos:    todos.NewSQLiteRepository(db),
		Events:   events.NewSQLiteRepository(db),
		Pomodoro: pomodoro.NewSQLiteRepository(db),
	}, nil
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	return s.DB.Close()
}
