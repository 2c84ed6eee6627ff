package sqlite

import (
	"time"

	"tasktrack/internal/domain"
)

// FormatDateForDB formats a calendar date as YYYY-MM-DD for database storage
func FormatDateForDB(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// ParseDateFromDB parses a YYYY-MM-DD date string from the database
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
