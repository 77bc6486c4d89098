package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/origami-app/origami/internal/logging"
	"github.com/origami-app/origami/internal/repositories/journal"
	"github.com/origami-app/origami/internal/services"

	_ "modernc.org/sqlite"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range []string{
		`CREATE TABLE app_settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL DEFAULT ''
);`,
		`CREATE TABLE journal_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  content TEXT NOT NULL DEFAULT '',
  encrypted_content BLOB,
  is_encrypted INTEGER NOT NULL DEFAULT 0,
  mood_rating INTEGER,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatal(err)
		}
	}

	guard := services.NewPasswordGuard(db)
	return &App{
		guard:   guard,
		journal: services.NewJournalService(journal.NewSQLiteRepository(db), guard),
		reader:  bufio.NewReader(strings.NewReader("")),
		logger:  logging.NewDefault(),
	}
}

func stubPassword(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func TestUnlockJournal_CorrectPassword(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t)
	ctx := context.Background()

	if err := a.guard.SetPassword(ctx, "abc123"); err != nil {
		t.Fatal(err)
	}

	stubPassword(t, "abc123")
	if !a.unlockJournal(ctx) {
		t.Fatal("correct password must unlock")
	}
}

func TestUnlockJournal_RetriesThenSucceeds(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t)
	ctx := context.Background()

	if err := a.guard.SetPassword(ctx, "abc123"); err != nil {
		t.Fatal(err)
	}

	stubPassword(t, "nope", "nope", "abc123")
	if !a.unlockJournal(ctx) {
		t.Fatal("expected unlock after retries")
	}
}

func TestUnlockJournal_LockoutStopsPrompting(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t)
	ctx := context.Background()

	if err := a.guard.SetPassword(ctx, "abc123"); err != nil {
		t.Fatal(err)
	}

	stubPassword(t, "a", "b", "c", "d", "e", "abc123")
	if a.unlockJournal(ctx) {
		t.Fatal("five failures must lock the journal")
	}

	if locked, err := a.guard.IsLocked(ctx); err != nil || !locked {
		t.Fatalf("expected lockout, locked=%v err=%v", locked, err)
	}
}

func TestParseDay(t *testing.T) {
	got, err := parseDay("2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := parseDay("15/01/2024"); err == nil {
		t.Fatal("expected error for unsupported format")
	}

	today, err := parseDay("")
	if err != nil {
		t.Fatal(err)
	}
	if today.Hour() != 0 || today.Minute() != 0 {
		t.Fatalf("empty input must map to midnight, got %v", today)
	}
}
