package testutil

import "github.com/alexanderramin/stempel/internal/domain"

// Day options
type DayOption func(*domain.DayRecord)

func WithStart(clock string) DayOption {
	return func(r *domain.DayRecord) {
		r.StartTime = &clock
	}
}

func WithEnd(clock string) DayOption {
	return func(r *domain.DayRecord) {
		r.EndTime = &clock
	}
}

func WithBreak(minutes int) DayOption {
	return func(r *domain.DayRecord) {
		r.BreakMinutes = &minutes
	}
}

// NewTestDay builds a DayRecord for the given date. Without options the
// record has all optional fields absent, matching a note-first day.
func NewTestDay(date string, opts ...DayOption) *domain.DayRecord {
	r := &domain.DayRecord{Date: date}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestWorkday builds a fully recorded day.
func NewTestWorkday(date, start, end string, breakMin int) *domain.DayRecord {
	return NewTestDay(date, WithStart(start), WithEnd(end), WithBreak(breakMin))
}
