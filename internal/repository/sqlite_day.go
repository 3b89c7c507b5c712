package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/stempel/internal/db"
	"github.com/alexanderramin/stempel/internal/domain"
)

// SQLiteDayRepo implements DayRepo using a SQLite database.
type SQLiteDayRepo struct {
	db db.DBTX
}

// NewSQLiteDayRepo creates a new SQLiteDayRepo.
func NewSQLiteDayRepo(conn db.DBTX) *SQLiteDayRepo {
	return &SQLiteDayRepo{db: conn}
}

func (r *SQLiteDayRepo) Get(ctx context.Context, date string) (*domain.DayRecord, error) {
	query := `SELECT date, start_time, end_time, break_minutes FROM work_hours WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date)

	var rec domain.DayRecord
	var start, end sql.NullString
	var breakMin sql.NullInt64
	if err := row.Scan(&rec.Date, &start, &end, &breakMin); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("day record %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning day record: %w", err)
	}
	rec.StartTime = nullableStr(start)
	rec.EndTime = nullableStr(end)
	rec.BreakMinutes = nullableInt(breakMin)
	return &rec, nil
}

func (r *SQLiteDayRepo) Upsert(ctx context.Context, record *domain.DayRecord) error {
	query := `INSERT OR REPLACE INTO work_hours (date, start_time, end_time, break_minutes)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		record.Date,
		strToValue(record.StartTime),
		strToValue(record.EndTime),
		intToValue(record.BreakMinutes),
	)
	if err != nil {
		return fmt.Errorf("upserting day record: %w", err)
	}
	return nil
}

func (r *SQLiteDayRepo) Delete(ctx context.Context, date string) error {
	query := `DELETE FROM work_hours WHERE date = ?`
	if _, err := r.db.ExecContext(ctx, query, date); err != nil {
		return fmt.Errorf("deleting day record: %w", err)
	}
	return nil
}

func (r *SQLiteDayRepo) ListAll(ctx context.Context) ([]domain.DayRecord, error) {
	query := `SELECT date, start_time, end_time, break_minutes FROM work_hours ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing day records: %w", err)
	}
	defer rows.Close()

	var records []domain.DayRecord
	for rows.Next() {
		var rec domain.DayRecord
		var start, end sql.NullString
		var breakMin sql.NullInt64
		if err := rows.Scan(&rec.Date, &start, &end, &breakMin); err != nil {
			return nil, fmt.Errorf("scanning day row: %w", err)
		}
		rec.StartTime = nullableStr(start)
		rec.EndTime = nullableStr(end)
		rec.BreakMinutes = nullableInt(breakMin)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day records: %w", err)
	}
	return records, nil
}
