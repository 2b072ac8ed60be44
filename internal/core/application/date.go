package application

import (
	"strings"
	"time"
)

// DateLayout is the storage and display format of every date field.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date. time.Parse rejects impossible calendar
// dates such as 2024-02-30.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey returns the YYYY-MM bucket of a date.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
