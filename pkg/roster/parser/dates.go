package parser

import (
	"math"
	"strings"
	"time"
)

// serialEpoch is day zero of the 1900 date system. Using the 30th rather than
// the 31st absorbs the phantom 29 Feb 1900 for every serial after it.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const msPerDay = 86400000

// SerialToTime converts a spreadsheet date serial to a UTC time. The whole
// part counts days from the epoch; the fraction is the time of day, rounded
// to the millisecond.
func SerialToTime(serial float64) time.Time {
	days := math.Floor(serial)
	ms := math.Round((serial - days) * msPerDay)
	return serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond)
}

// TimeToSerial converts a time back to a date serial using the same epoch.
// The wall clock of t is used regardless of its location.
func TimeToSerial(t time.Time) float64 {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return float64(wall.Sub(serialEpoch)) / float64(24*time.Hour)
}

// DateOnly drops the time of day, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOf returns midnight of the Monday starting t's ISO week.
// Sunday belongs to the week that began six days earlier.
func MondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return DateOnly(t).AddDate(0, 0, -(weekday - 1))
}

// textDateLayouts are tried in order for anchor cells typed as text.
// Numeric forms are day-first, matching the ddmmyyyy sheet names. This differs
// from a month-first reading: "07/10/2024" is 7 October, not 10 July.
var textDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"2.1.2006",
	"02012006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon 2 Jan 2006",
	"Monday 2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, 02 Jan 2006",
}

// ParseTextDate parses a human-entered calendar date.
func ParseTextDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
