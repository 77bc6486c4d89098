package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/dbx"
	"github.com/origami-app/origami/internal/models"
)

const entryColumns = `id, title, content, encrypted_content, is_encrypted, mood_rating, created_at, updated_at`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.JournalEntry) (int64, error) {
	now := time.Now()
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	var mood sql.NullInt64
	if e.MoodRating != nil {
		mood = sql.NullInt64{Int64: int64(*e.MoodRating), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_entries (title, content, encrypted_content, is_encrypted, mood_rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.Title, e.Content, e.EncryptedContent, e.IsEncrypted, mood,
		dbx.FormatTime(createdAt), dbx.FormatTime(now))
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select journal entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *SQLiteRepository) GetByDate(ctx context.Context, day time.Time) (*models.JournalEntry, error) {
	start, end := dayRange(day)

	row := r.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+` FROM journal_entries
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at DESC
		LIMIT 1
	`, dbx.FormatTime(start), dbx.FormatTime(end))

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry by date: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) Search(ctx context.Context, query string) ([]models.JournalEntry, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+entryColumns+` FROM journal_entries
		WHERE LOWER(content) LIKE ? OR LOWER(title) LIKE ?
		ORDER BY created_at DESC
	`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search journal entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, patch models.JournalEntryPatch) error {
	if patch.IsZero() {
		return nil
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *patch.Content)
	}
	if patch.EncryptedContent != nil {
		sets = append(sets, "encrypted_content = ?")
		args = append(args, patch.EncryptedContent)
	}
	if patch.IsEncrypted != nil {
		sets = append(sets, "is_encrypted = ?")
		args = append(args, *patch.IsEncrypted)
	}
	if patch.MoodRating != nil {
		sets = append(sets, "mood_rating = ?")
		args = append(args, *patch.MoodRating)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, dbx.FormatTime(time.Now()))
	args = append(args, id)

	query := "UPDATE journal_entries SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("journal entry %d: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("journal entry %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// dayRange returns [00:00:00 of day, 00:00:00 of the next day) in UTC.
func dayRange(day time.Time) (time.Time, time.Time) {
	y, m, d := day.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.JournalEntry, error) {
	var (
		e         models.JournalEntry
		mood      sql.NullInt64
		createdAt string
		updatedAt string
	)

	err := row.Scan(&e.ID, &e.Title, &e.Content, &e.EncryptedContent,
		&e.IsEncrypted, &mood, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if mood.Valid {
		v := int(mood.Int64)
		e.MoodRating = &v
	}
	if e.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("bad created_at: %w", err)
	}
	if e.UpdatedAt, err = dbx.ParseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("bad updated_at: %w", err)
	}
	return &e, nil
}

func collectEntries(rows *sql.Rows) ([]models.JournalEntry, error) {
	var result []models.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
