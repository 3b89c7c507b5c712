package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/stempel/internal/domain"
	"github.com/alexanderramin/stempel/internal/report"
	"github.com/alexanderramin/stempel/internal/repository"
)

type ledgerService struct {
	days   repository.DayRepo
	notes  repository.NoteRepo
	config repository.ConfigRepo

	now func() time.Time // injectable for tests
}

func NewLedgerService(days repository.DayRepo, notes repository.NoteRepo, config repository.ConfigRepo) LedgerService {
	return &ledgerService{days: days, notes: notes, config: config, now: time.Now}
}

func (s *ledgerService) AddOrUpdateDay(ctx context.Context, date string, u domain.DayUpdate, overwrite bool) error {
	existing, err := s.days.Get(ctx, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		existing = nil
	}

	merged := domain.MergeDay(existing, date, u, overwrite)
	return s.days.Upsert(ctx, &merged)
}

func (s *ledgerService) AddNote(ctx context.Context, date, text string) (int64, error) {
	// A note always references an existing day record. Create an empty one
	// first when the date is unknown.
	if _, err := s.days.Get(ctx, date); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return 0, err
		}
		if err := s.days.Upsert(ctx, &domain.DayRecord{Date: date}); err != nil {
			return 0, fmt.Errorf("creating day record for note: %w", err)
		}
	}
	return s.notes.Insert(ctx, date, text)
}

func (s *ledgerService) RemoveDay(ctx context.Context, date string) error {
	return s.days.Delete(ctx, date)
}

func (s *ledgerService) RemoveNote(ctx context.Context, id int64) error {
	return s.notes.Delete(ctx, id)
}

func (s *ledgerService) QueryDays(ctx context.Context, f Filter, includeNotes bool) ([]DayWithNotes, error) {
	history, err := s.days.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Aggregate over the full history before cutting the window, otherwise
	// cumulative balances inside the window would be wrong.
	summaries := report.Aggregate(history, s.expectedWorkdayHours(ctx))

	results := make([]DayWithNotes, 0, len(summaries))
	for _, sum := range summaries {
		if !f.matches(sum.Date, s.now()) {
			continue
		}
		row := DayWithNotes{DaySummary: sum}
		if includeNotes {
			notes, err := s.notes.ListByDate(ctx, sum.Date)
			if err != nil {
				return nil, err
			}
			if notes == nil {
				notes = []domain.Note{}
			}
			row.Notes = notes
		}
		results = append(results, row)
	}
	return results, nil
}

func (s *ledgerService) ListIncomplete(ctx context.Context) ([]IncompleteDay, error) {
	history, err := s.days.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var incomplete []IncompleteDay
	for _, rec := range history {
		if missing := rec.MissingFields(); len(missing) > 0 {
			incomplete = append(incomplete, IncompleteDay{Date: rec.Date, MissingFields: missing})
		}
	}
	return incomplete, nil
}

// expectedWorkdayHours reads the threshold once per aggregation pass,
// falling back to the default when unset or unparsable.
func (s *ledgerService) expectedWorkdayHours(ctx context.Context) float64 {
	raw, err := s.config.Get(ctx, ConfigKeyExpectedWorkdayHours)
	if err != nil {
		return DefaultExpectedWorkdayHours
	}
	hours, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return DefaultExpectedWorkdayHours
	}
	return hours
}

// matches reports whether a date key falls inside the filter window.
// ISO dates make prefix matching equivalent to calendar matching.
func (f Filter) matches(date string, now time.Time) bool {
	switch {
	case f.Date != "":
		return date == f.Date
	case f.Month != "":
		year := f.Year
		if year == "" {
			year = now.Format("2006")
		}
		return strings.HasPrefix(date, year+"-"+f.Month+"-")
	case f.Year != "":
		return strings.HasPrefix(date, f.Year+"-")
	default:
		return true
	}
}
