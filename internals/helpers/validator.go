package helper

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

const dateLayout = "2006-01-02"

// ParseDate parses a yyyy-MM-dd value the way the API expects dates on the
// wire. The zero time plus an error comes back for anything else.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders a time as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// TruncateToDay drops the time-of-day part, keeping the calendar date in UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
