package repository

import "database/sql"

// nullableStr converts a sql.NullString into a *string.
func nullableStr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// nullableInt converts a sql.NullInt64 into a *int.
func nullableInt(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}

// strToValue converts a *string to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func strToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// intToValue converts a *int to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func intToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
