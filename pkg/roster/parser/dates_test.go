package parser

import (
	"math"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSerialToTime(t *testing.T) {
	tests := []struct {
		serial   float64
		expected time.Time
	}{
		{45000, date(2023, time.March, 15)},
		{45572, date(2024, time.October, 7)},
		{45572.5, time.Date(2024, time.October, 7, 12, 0, 0, 0, time.UTC)},
		{45572.25, time.Date(2024, time.October, 7, 6, 0, 0, 0, time.UTC)},
		{1, date(1899, time.December, 31)},
	}

	for _, tt := range tests {
		result := SerialToTime(tt.serial)
		if !result.Equal(tt.expected) {
			t.Errorf("SerialToTime(%v) = %v, expected %v", tt.serial, result, tt.expected)
		}
	}
}

func TestSerialRoundTrip(t *testing.T) {
	for _, serial := range []float64{40001, 45000, 45572, 45572.75, 49999} {
		back := TimeToSerial(SerialToTime(serial))
		if math.Abs(back-serial) > 1e-6 {
			t.Errorf("round trip of %v gave %v", serial, back)
		}
	}
}

func TestSerialToTimeMatchesExcelize(t *testing.T) {
	for _, serial := range []float64{40001, 45000, 45572, 49999} {
		want, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			t.Fatalf("ExcelDateToTime(%v): %v", serial, err)
		}
		got := SerialToTime(serial)
		if got.Format("2006-01-02") != want.Format("2006-01-02") {
			t.Errorf("SerialToTime(%v) = %v, excelize gives %v", serial, got, want)
		}
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected time.Time
	}{
		{"monday", date(2024, time.October, 7), date(2024, time.October, 7)},
		{"wednesday", date(2024, time.October, 9), date(2024, time.October, 7)},
		{"saturday", date(2024, time.October, 12), date(2024, time.October, 7)},
		{"sunday goes back six days", date(2024, time.October, 13), date(2024, time.October, 7)},
		{"time of day is dropped", time.Date(2024, time.October, 10, 17, 45, 0, 0, time.UTC), date(2024, time.October, 7)},
		{"across a month", date(2024, time.November, 1), date(2024, time.October, 28)},
		{"across a year", date(2025, time.January, 1), date(2024, time.December, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MondayOf(tt.in)
			if !result.Equal(tt.expected) {
				t.Errorf("MondayOf(%v) = %v, expected %v", tt.in, result, tt.expected)
			}
		})
	}
}

func TestParseTextDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		ok       bool
	}{
		{"2024-10-09", date(2024, time.October, 9), true},
		{"09-10-2024", date(2024, time.October, 9), true},
		{"07/10/2024", date(2024, time.October, 7), true},
		{"09/10/2024", date(2024, time.October, 9), true},
		{"9/10/2024", date(2024, time.October, 9), true},
		{"09.10.2024", date(2024, time.October, 9), true},
		{" 9 Oct 2024 ", date(2024, time.October, 9), true},
		{"October 9, 2024", date(2024, time.October, 9), true},
		{"09102024", date(2024, time.October, 9), true},
		{"next week", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		result, ok := ParseTextDate(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseTextDate(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && !result.Equal(tt.expected) {
			t.Errorf("ParseTextDate(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
