package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/origami-app/origami/internal/filex"
	"github.com/origami-app/origami/internal/repositories/events"
	"github.com/origami-app/origami/internal/repositories/todos"
)

// ExportService writes user data out as CSV and produces database
// backups.
type ExportService struct {
	todos   todos.Repository
	journal *JournalService
	events  events.Repository

	dbPath    string
	backupDir string
}

func NewExportService(todosRepo todos.Repository, journalSvc *JournalService, eventsRepo events.Repository, dbPath, backupDir string) *ExportService {
	return &ExportService{
		todos:     todosRepo,
		journal:   journalSvc,
		events:    eventsRepo,
		dbPath:    dbPath,
		backupDir: backupDir,
	}
}

// ExportTodosCSV writes all tasks to w.
func (s *ExportService) ExportTodosCSV(ctx context.Context, w io.Writer) error {
	all, err := s.todos.GetAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "description", "completed", "priority", "due_date", "created_at"}); err != nil {
		return err
	}
	for _, t := range all {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		record := []string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			t.Description,
			strconv.FormatBool(t.Completed),
			strconv.Itoa(t.Priority),
			due,
			t.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJournalCSV writes all journal entries to w. Protected entries
// are exported in readable form when the blob opens, otherwise with the
// decrypt-failure placeholder.
func (s *ExportService) ExportJournalCSV(ctx context.Context, w io.Writer) error {
	all, err := s.journal.Entries(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "title", "content", "mood_rating"}); err != nil {
		return err
	}
	for _, e := range all {
		mood := ""
		if e.MoodRating != nil {
			mood = strconv.Itoa(*e.MoodRating)
		}
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.CreatedAt.Format("2006-01-02"),
			e.Title,
			s.journal.ReadableContent(&e),
			mood,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportEventsCSV writes all calendar events to w.
func (s *ExportService) ExportEventsCSV(ctx context.Context, w io.Writer) error {
	all, err := s.events.GetAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "title", "description", "priority"}); err != nil {
		return err
	}
	for _, e := range all {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.EventDate.Format("2006-01-02"),
			e.Title,
			e.Description,
			e.Priority,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Backup copies the database file into the backup directory and returns
// the path of the copy.
func (s *ExportService) Backup() (string, error) {
	return filex.BackupDatabase(s.dbPath, s.backupDir)
}
