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
	"github.com/origami-app/origami/internal/repositories/journal"

	_ "modernc.org/sqlite"
)

func setupJournalDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE journal_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  content TEXT NOT NULL DEFAULT '',
  encrypted_content BLOB,
  is_encrypted INTEGER NOT NULL DEFAULT 0,
  mood_rating INTEGER,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
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
	return db
}

func newTestJournal(t *testing.T) (*JournalService, *PasswordGuard) {
	t.Helper()
	db := setupJournalDB(t)
	guard := NewPasswordGuard(db)
	return NewJournalService(journal.NewSQLiteRepository(db), guard), guard
}

func journalDay(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestSaveForDateCreatesAndUpdates(t *testing.T) {
	svc, _ := newTestJournal(t)
	ctx := context.Background()

	id, err := svc.SaveForDate(ctx, journalDay(15), "Hello")
	require.NoError(t, err)

	entry, content, err := svc.ContentForDate(ctx, journalDay(15))
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Hello", content)
	assert.Equal(t, "Entry for January 15, 2024", entry.Title)

	// saving again for the same date updates the same row
	id2, err := svc.SaveForDate(ctx, journalDay(15), "Hello world")
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	all, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Hello world", all[0].Content)
}

func TestSaveForDateRejectsEmptyContent(t *testing.T) {
	svc, _ := newTestJournal(t)
	ctx := context.Background()

	_, err := svc.SaveForDate(ctx, journalDay(15), "   \n\t ")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestSaveForDateSealsWhenProtected(t *testing.T) {
	svc, guard := newTestJournal(t)
	ctx := context.Background()

	require.NoError(t, guard.SetPassword(ctx, "abc123"))

	_, err := svc.SaveForDate(ctx, journalDay(15), "private thoughts")
	require.NoError(t, err)

	entry, content, err := svc.ContentForDate(ctx, journalDay(15))
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.True(t, entry.IsEncrypted)
	assert.Empty(t, entry.Content, "plaintext column must stay empty for sealed entries")
	assert.NotEmpty(t, entry.EncryptedContent)
	assert.Equal(t, "private thoughts", content, "load path must open the sealed body")
	assert.Equal(t, models.EncryptedPreview, entry.Preview(50))
}

func TestContentForDateMissing(t *testing.T) {
	svc, _ := newTestJournal(t)

	entry, content, err := svc.ContentForDate(context.Background(), journalDay(1))
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Empty(t, content)
}

func TestReadableContentPlaceholderOnGarbage(t *testing.T) {
	svc, _ := newTestJournal(t)

	entry := &models.JournalEntry{
		IsEncrypted:      true,
		EncryptedContent: []byte("not a valid blob"),
	}
	assert.Equal(t, DecryptFailedPlaceholder, svc.ReadableContent(entry))
}

func TestSetMood(t *testing.T) {
	svc, _ := newTestJournal(t)
	ctx := context.Background()

	_, err := svc.SaveForDate(ctx, journalDay(15), "Hello")
	require.NoError(t, err)

	require.ErrorIs(t, svc.SetMood(ctx, journalDay(15), 6), common.ErrValidation)
	require.ErrorIs(t, svc.SetMood(ctx, journalDay(2), 3), common.ErrNotFound)

	require.NoError(t, svc.SetMood(ctx, journalDay(15), 4))

	entry, _, err := svc.ContentForDate(ctx, journalDay(15))
	require.NoError(t, err)
	require.NotNil(t, entry.MoodRating)
	assert.Equal(t, 4, *entry.MoodRating)
	assert.Equal(t, "Hello", entry.Content, "mood patch must not touch content")
}

func TestSearch(t *testing.T) {
	svc, _ := newTestJournal(t)
	ctx := context.Background()

	_, err := svc.SaveForDate(ctx, journalDay(15), "Walked the dog")
	require.NoError(t, err)
	_, err = svc.SaveForDate(ctx, journalDay(16), "Read a book")
	require.NoError(t, err)
	_, err = svc.SaveForDate(ctx, journalDay(17), "Another DOG day")
	require.NoError(t, err)

	t.Run("by content, case-insensitive", func(t *testing.T) {
		got, err := svc.Search(ctx, "dog")
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("by date substring", func(t *testing.T) {
		got, err := svc.Search(ctx, "2024-01-16")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Read a book", got[0].Content)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := svc.Search(ctx, "zebra")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSearchEmptyQueryReturnsRecent(t *testing.T) {
	svc, _ := newTestJournal(t)
	ctx := context.Background()

	for d := 1; d <= 12; d++ {
		_, err := svc.SaveForDate(ctx, journalDay(d), "entry")
		require.NoError(t, err)
	}

	got, err := svc.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, got, recentEntriesLimit)
	// newest first
	assert.Equal(t, journalDay(12), got[0].EntryDate())
}

func TestSearchOpensSealedEntries(t *testing.T) {
	svc, guard := newTestJournal(t)
	ctx := context.Background()

	require.NoError(t, guard.SetPassword(ctx, "abc123"))
	_, err := svc.SaveForDate(ctx, journalDay(15), "secret meeting notes")
	require.NoError(t, err)

	got, err := svc.Search(ctx, "meeting")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestJournal(t)
	ctx := context.Background()

	id, err := svc.SaveForDate(ctx, journalDay(15), "Hello")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	require.ErrorIs(t, svc.Delete(ctx, id), common.ErrNotFound)

	entry, _, err := svc.ContentForDate(ctx, journalDay(15))
	require.NoError(t, err)
	assert.Nil(t, entry)
}
