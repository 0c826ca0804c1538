package utils

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC. Every date persisted or compared in this
// codebase goes through here so equality holds across drivers.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts "2006-01-02" or RFC3339 and returns the UTC date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOnly(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOnly(t), nil
	}
	return time.Time{}, errors.New("invalid date format, want YYYY-MM-DD")
}

// StayDates returns the nights of a stay: [checkIn, checkIn+nights).
func StayDates(checkIn time.Time, nights int) []time.Time {
	dates := make([]time.Time, 0, nights)
	start := DateOnly(checkIn)
	for i := 0; i < nights; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// WindowDates returns the padded availability window around a stay:
// [checkIn-pad, checkIn+nights+pad).
func WindowDates(checkIn time.Time, nights, pad int) []time.Time {
	dates := make([]time.Time, 0, nights+2*pad)
	start := DateOnly(checkIn)
	for i := -pad; i < nights+pad; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
