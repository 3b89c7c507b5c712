package domain

// Field names of a DayRecord as stored, used for completeness diagnostics.
const (
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldBreakMinutes = "break_minutes"
)

// DayRecord is the stored start/end/break data for one calendar date.
// The date is an ISO YYYY-MM-DD string, so lexicographic order is
// chronological order. All three value fields are independently optional:
// a record may exist with nothing but its date.
type DayRecord struct {
	Date         string
	StartTime    *string // wall-clock HH:MM
	EndTime      *string // wall-clock HH:MM
	BreakMinutes *int
}

// DayUpdate is a partial update to a DayRecord. A nil field means
// "not provided", which is distinct from providing a zero value.
type DayUpdate struct {
	StartTime    *string
	EndTime      *string
	BreakMinutes *int
}

// IsEmpty reports whether the update carries no fields at all.
func (u DayUpdate) IsEmpty() bool {
	return u.StartTime == nil && u.EndTime == nil && u.BreakMinutes == nil
}

// MissingFields returns the names of the optional fields that are absent,
// in stored-column order. An empty result means the record is complete.
func (r DayRecord) MissingFields() []string {
	var missing []string
	if r.StartTime == nil {
		missing = append(missing, FieldStartTime)
	}
	if r.EndTime == nil {
		missing = append(missing, FieldEndTime)
	}
	if r.BreakMinutes == nil {
		missing = append(missing, FieldBreakMinutes)
	}
	return missing
}

// Complete reports whether start, end and break are all recorded.
func (r DayRecord) Complete() bool {
	return r.StartTime != nil && r.EndTime != nil && r.BreakMinutes != nil
}
