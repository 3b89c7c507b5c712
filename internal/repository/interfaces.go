package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/stempel/internal/domain"
)

// ErrNotFound is returned (wrapped) when a targeted lookup misses.
// Deletes never return it; removing something absent is a no-op.
var ErrNotFound = errors.New("not found")

type DayRepo interface {
	// Get returns the record for the date, or an error wrapping ErrNotFound.
	Get(ctx context.Context, date string) (*domain.DayRecord, error)
	// Upsert replaces the stored record for record.Date entirely. Partial
	// update semantics live in domain.MergeDay, not here.
	Upsert(ctx context.Context, record *domain.DayRecord) error
	Delete(ctx context.Context, date string) error
	// ListAll returns every record ascending by date. Aggregation depends
	// on the full history, so there is no windowed variant.
	ListAll(ctx context.Context) ([]domain.DayRecord, error)
}

type NoteRepo interface {
	// Insert appends a note and returns its store-assigned id.
	Insert(ctx context.Context, date, text string) (int64, error)
	Delete(ctx context.Context, id int64) error
	ListByDate(ctx context.Context, date string) ([]domain.Note, error)
	ListAll(ctx context.Context) ([]domain.Note, error)
}

type ConfigRepo interface {
	// Get returns the value for key, or an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]domain.ConfigEntry, error)
}
