package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stempel/internal/db"
	"github.com/alexanderramin/stempel/internal/domain"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

func (r *SQLiteNoteRepo) Insert(ctx context.Context, date, text string) (int64, error) {
	query := `INSERT INTO notes (date, note) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, date, text)
	if err != nil {
		return 0, fmt.Errorf("inserting note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading note id: %w", err)
	}
	return id, nil
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM notes WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) ListByDate(ctx context.Context, date string) ([]domain.Note, error) {
	query := `SELECT id, date, note FROM notes WHERE date = ? ORDER BY id`
	return r.list(ctx, query, date)
}

func (r *SQLiteNoteRepo) ListAll(ctx context.Context) ([]domain.Note, error) {
	query := `SELECT id, date, note FROM notes ORDER BY id`
	return r.list(ctx, query)
}

func (r *SQLiteNoteRepo) list(ctx context.Context, query string, args ...any) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Date, &n.Text); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}
