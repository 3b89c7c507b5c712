package service

import (
	"context"

	"github.com/alexanderramin/stempel/internal/domain"
	"github.com/alexanderramin/stempel/internal/report"
)

// ConfigKeyExpectedWorkdayHours is the config key holding the expected
// workday length used by overtime accounting.
const ConfigKeyExpectedWorkdayHours = "expected_workday_hours"

// DefaultExpectedWorkdayHours applies when the config key is missing or
// unparsable.
const DefaultExpectedWorkdayHours = 7.8

// Filter selects a window of the recorded history. Exactly one selector is
// active; the CLI layer enforces mutual exclusion before calling in.
type Filter struct {
	Date  string // exact YYYY-MM-DD
	Month string // MM, combined with Year (or the current year)
	Year  string // YYYY
	All   bool
}

// DayWithNotes is one query result row: the record, its derived overtime
// fields and, when requested, its notes. Notes stays nil when the caller
// did not ask for notes and is an empty (never nil) slice when it did.
type DayWithNotes struct {
	report.DaySummary
	Notes []domain.Note
}

// IncompleteDay names the fields missing from a partially recorded day.
type IncompleteDay struct {
	Date          string
	MissingFields []string
}

type LedgerService interface {
	// AddOrUpdateDay merges a partial update into the record for date.
	// With overwrite=false only previously-absent fields are filled.
	AddOrUpdateDay(ctx context.Context, date string, u domain.DayUpdate, overwrite bool) error
	// AddNote appends a note to date, creating an empty day record first
	// when none exists, and returns the assigned note id.
	AddNote(ctx context.Context, date, text string) (int64, error)
	// RemoveDay deletes the record for date; absent dates are a no-op.
	RemoveDay(ctx context.Context, date string) error
	// RemoveNote deletes a note by id; absent ids are a no-op.
	RemoveNote(ctx context.Context, id int64) error
	// QueryDays returns the filtered window ascending by date. Overtime is
	// aggregated over the full history first, so cumulative balances are
	// correct regardless of the window.
	QueryDays(ctx context.Context, f Filter, includeNotes bool) ([]DayWithNotes, error)
	// ListIncomplete reports every record missing start, end or break.
	ListIncomplete(ctx context.Context) ([]IncompleteDay, error)
}

type ConfigService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]domain.ConfigEntry, error)
}

type ExportService interface {
	// Dump writes one plain-text file per table into destDir.
	Dump(ctx context.Context, destDir string) error
}
