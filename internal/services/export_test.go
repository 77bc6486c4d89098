package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origami-app/origami/internal/storage"

	_ "modernc.org/sqlite"
)

func newTestExport(t *testing.T) (*ExportService, *storage.Storage) {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "origami.db")

	s, err := storage.InitDatabase(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	guard := NewPasswordGuard(s.DB)
	journalSvc := NewJournalService(s.Journal, guard)
	svc := NewExportService(s.Todos, journalSvc, s.Events, dbPath, filepath.Join(dir, "backups"))
	return svc, s
}

func TestExportTodosCSV(t *testing.T) {
	svc, s := newTestExport(t)
	ctx := context.Background()

	todoSvc := NewTodoService(s.Todos)
	due := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	_, err := todoSvc.Add(ctx, "ship release", "cut the tag", 3, &due)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportTodosCSV(ctx, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "title", "description", "completed", "priority", "due_date", "created_at"}, records[0])
	assert.Equal(t, "ship release", records[1][1])
	assert.Equal(t, "2024-08-01", records[1][5])
}

func TestExportJournalCSVOpensSealedEntries(t *testing.T) {
	svc, s := newTestExport(t)
	ctx := context.Background()

	guard := NewPasswordGuard(s.DB)
	require.NoError(t, guard.SetPassword(ctx, "abc123"))

	journalSvc := NewJournalService(s.Journal, guard)
	day := time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC)
	_, err := journalSvc.SaveForDate(ctx, day, "sealed body")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportJournalCSV(ctx, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "sealed body", records[1][3])
}

func TestBackup(t *testing.T) {
	svc, _ := newTestExport(t)

	path, err := svc.Backup()
	require.NoError(t, err)
	assert.FileExists(t, path)
}
