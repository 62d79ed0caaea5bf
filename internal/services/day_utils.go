package services

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date (must be yyyy-MM-dd)")

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseISODate parses a yyyy-MM-dd calendar date in the given location. An
// empty string is not an error here; callers default it to today.
func ParseISODate(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}
