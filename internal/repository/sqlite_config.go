package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/stempel/internal/db"
	"github.com/alexanderramin/stempel/internal/domain"
)

// SQLiteConfigRepo implements ConfigRepo using a SQLite database.
type SQLiteConfigRepo struct {
	db db.DBTX
}

// NewSQLiteConfigRepo creates a new SQLiteConfigRepo.
func NewSQLiteConfigRepo(conn db.DBTX) *SQLiteConfigRepo {
	return &SQLiteConfigRepo{db: conn}
}

func (r *SQLiteConfigRepo) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM config WHERE key = ?`
	var value string
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("config key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("scanning config value: %w", err)
	}
	return value, nil
}

func (r *SQLiteConfigRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO config (key, value) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("setting config value: %w", err)
	}
	return nil
}

func (r *SQLiteConfigRepo) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM config WHERE key = ?`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("deleting config value: %w", err)
	}
	return nil
}

func (r *SQLiteConfigRepo) List(ctx context.Context) ([]domain.ConfigEntry, error) {
	query := `SELECT key, value FROM config ORDER BY key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing config: %w", err)
	}
	defer rows.Close()

	var entries []domain.ConfigEntry
	for rows.Next() {
		var e domain.ConfigEntry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, fmt.Errorf("scanning config row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating config: %w", err)
	}
	return entries, nil
}
