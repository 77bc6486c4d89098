package todos

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/origami-app/origami/internal/common"
	"github.com/origami-app/origami/internal/dbx"
	"github.com/origami-app/origami/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, t *models.Todo) (int64, error) {
	now := dbx.FormatTime(time.Now())

	var due sql.NullString
	if t.DueDate != nil {
		due = sql.NullString{String: dbx.FormatTime(*t.DueDate), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (title, description, completed, priority, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, t.Title, t.Description, t.Completed, t.Priority, due, now, now)
	if err != nil {
		return 0, fmt.Errorf("failed to insert todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, completed, priority, due_date, created_at, updated_at
		FROM todos ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to select todos: %w", err)
	}
	defer rows.Close()

	var result []models.Todo
	for rows.Next() {
		var (
			item      models.Todo
			due       sql.NullString
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Completed,
			&item.Priority, &due, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if due.Valid {
			d, err := dbx.ParseTime(due.String)
			if err != nil {
				return nil, fmt.Errorf("bad due_date: %w", err)
			}
			item.DueDate = &d
		}
		if item.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
			return nil, fmt.Errorf("bad created_at: %w", err)
		}
		if item.UpdatedAt, err = dbx.ParseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("bad updated_at: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	return r.exec(ctx, id, `UPDATE todos SET completed = ?, updated_at = ? WHERE id = ?`,
		completed, dbx.FormatTime(time.Now()), id)
}

func (r *SQLiteRepository) Rename(ctx context.Context, id int64, title string) error {
	return r.exec(ctx, id, `UPDATE todos SET title = ?, updated_at = ? WHERE id = ?`,
		title, dbx.FormatTime(time.Now()), id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, id, `DELETE FROM todos WHERE id = ?`, id)
}

func (r *SQLiteRepository) exec(ctx context.Context, id int64, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("todo %d: %w", id, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("todo %d: %w", id, common.ErrNotFound)
	}
	return nil
}
