package cli

import (
	"fmt"
	"strconv"
	"time"
)

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return nil
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return nil
}

func validateMonth(s string) error {
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 12 {
		return fmt.Errorf("invalid month %q (want 01-12)", s)
	}
	return nil
}

func validateYear(s string) error {
	if _, err := time.Parse("2006", s); err != nil {
		return fmt.Errorf("invalid year %q (want YYYY)", s)
	}
	return nil
}

// huh validators: blank means "skip this field".

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	return validateClock(s)
}

func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	return nil
}
