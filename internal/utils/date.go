package utils

import (
	"fmt"
	"time"

	"github.com/ksolberg/habitkit/internal/constants"
)

// Date is a calendar date with no time-of-day or timezone component.
// Habit semantics are calendar-based, so dates are anchored at UTC
// midnight internally to keep day arithmetic deterministic across DST.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf truncates a time to its calendar date in that time's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar date in the local timezone.
func Today() Date {
	return DateOf(time.Now())
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.utc().Format(constants.DateFormat)
}

// Weekday returns the day of week (Sunday = 0).
func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// AddDays returns the date n calendar days after d (before, if n is negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool {
	return d.utc().Before(o.utc())
}

// DaysBetween returns the number of calendar days from a to b
// (negative when b is earlier than a).
func DaysBetween(a, b Date) int {
	return int(b.utc().Sub(a.utc()).Hours() / 24)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date string.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
