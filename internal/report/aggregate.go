// Package report derives working hours and overtime accounting from the
// recorded history. It is a pure computation layer: callers pass the full
// date-ordered history and the expected workday length, nothing here reads
// storage or ambient configuration.
package report

import (
	"math"
	"time"

	"github.com/alexanderramin/stempel/internal/domain"
)

// DaySummary is a DayRecord plus its derived accounting fields. The derived
// values are never stored; they are recomputed on every read.
type DaySummary struct {
	domain.DayRecord

	// WorkingHours and OvertimeHours are nil when either start or end time
	// is absent on the record.
	WorkingHours  *float64
	OvertimeHours *float64

	// CumulativeOvertimeHours is the running overtime balance across the
	// full history up to and including this record. Days without computable
	// hours carry the previous balance forward unchanged.
	CumulativeOvertimeHours float64
}

// Aggregate walks the history in ascending date order and computes the
// derived fields for every record. The caller must pass the complete
// history, not a window: the cumulative balance depends on all prior days.
//
// Out-of-range inputs (end before start, break exceeding the span) are not
// validated here and flow through the arithmetic as negative hours.
func Aggregate(history []domain.DayRecord, expectedWorkdayHours float64) []DaySummary {
	summaries := make([]DaySummary, 0, len(history))

	var cumulative float64
	for _, rec := range history {
		s := DaySummary{DayRecord: rec}

		start, startOK := clockMinutes(rec.StartTime)
		end, endOK := clockMinutes(rec.EndTime)
		if startOK && endOK {
			working := float64(end-start-domain.IntFromPtrWithDefault(0, rec.BreakMinutes)) / 60
			overtime := working - expectedWorkdayHours
			cumulative += overtime
			s.WorkingHours = &working
			s.OvertimeHours = &overtime
		}
		s.CumulativeOvertimeHours = cumulative

		summaries = append(summaries, s)
	}
	return summaries
}

// clockMinutes converts an optional HH:MM wall-clock string to minutes
// since midnight. An absent or unparsable value counts as absent; the CLI
// layer validates formats before they reach storage.
func clockMinutes(clock *string) (int, bool) {
	if clock == nil {
		return 0, false
	}
	t, err := time.Parse("15:04", *clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Round2 rounds to two decimal places. Accumulation runs at full float64
// precision; rounding happens only at the rendering boundary so errors do
// not compound across a long history.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
