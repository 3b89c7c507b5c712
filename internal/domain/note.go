package domain

// Note is a free-text annotation attached to a date. IDs are assigned by
// the store, monotonically and never reused. The date references a
// DayRecord key; the store guarantees one exists by creating an empty
// record before the first note of an unknown date.
type Note struct {
	ID   int64
	Date string
	Text string
}

// ConfigEntry is one key/value pair of the flat configuration store.
type ConfigEntry struct {
	Key   string
	Value string
}
