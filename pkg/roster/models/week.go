package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the DD-MM-YYYY display format used for weeks and days.
const DateLayout = "02-01-2006"

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// WeekRecord represents one roster sheet's worth of parsed days.
type WeekRecord struct {
	// Week is the Monday the week starts on (midnight UTC).
	Week time.Time
	// ParsedTimestamp is when the sheet was parsed.
	ParsedTimestamp time.Time
	// Days holds the parsed days in sheet order.
	Days []DayRecord
}

// DayRecord represents a single day block within a roster sheet.
type DayRecord struct {
	// Day is the English weekday name (e.g. "Monday").
	Day string
	// Date is the calendar date of the block (midnight UTC).
	Date time.Time
	// Shifts holds the parsed shifts in row order.
	Shifts []ShiftRecord
}

type weekJSON struct {
	Week            string      `json:"week"`
	ParsedTimestamp string      `json:"parsedTimestamp"`
	Data            []DayRecord `json:"data"`
}

type dayJSON struct {
	Day    string        `json:"day"`
	Date   string        `json:"date"`
	Shifts []ShiftRecord `json:"shifts"`
}

// MarshalJSON renders the week with DD-MM-YYYY dates and an ISO-8601 timestamp.
func (w WeekRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(weekJSON{
		Week:            w.Week.Format(DateLayout),
		ParsedTimestamp: w.ParsedTimestamp.UTC().Format(TimestampLayout),
		Data:            w.Days,
	})
}

// UnmarshalJSON reads a week written by MarshalJSON.
func (w *WeekRecord) UnmarshalJSON(data []byte) error {
	var raw weekJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	week, err := time.Parse(DateLayout, raw.Week)
	if err != nil {
		return err
	}
	ts, err := time.Parse(time.RFC3339Nano, raw.ParsedTimestamp)
	if err != nil {
		return err
	}
	*w = WeekRecord{Week: week, ParsedTimestamp: ts, Days: raw.Data}
	return nil
}

// MarshalJSON renders the day with a DD-MM-YYYY date.
func (d DayRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(dayJSON{
		Day:    d.Day,
		Date:   d.Date.Format(DateLayout),
		Shifts: d.Shifts,
	})
}

// UnmarshalJSON reads a day written by MarshalJSON.
func (d *DayRecord) UnmarshalJSON(data []byte) error {
	var raw dayJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return err
	}
	*d = DayRecord{Day: raw.Day, Date: date, Shifts: raw.Shifts}
	return nil
}
