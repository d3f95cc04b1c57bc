package models

import (
	"encoding/json"
	"fmt"
)

// AssignedState tells whether a person was confirmed for a shift or only asked for it.
type AssignedState int

const (
	// Requested is a plain (unhighlighted) entry.
	Requested AssignedState = iota
	// Assigned is a yellow-highlighted entry.
	Assigned
)

// String returns the JSON name of the state.
func (s AssignedState) String() string {
	if s == Assigned {
		return "assigned"
	}
	return "requested"
}

// MarshalJSON encodes the state as "assigned" or "requested".
func (s AssignedState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes "assigned" or "requested".
func (s *AssignedState) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "assigned":
		*s = Assigned
	case "requested":
		*s = Requested
	default:
		return fmt.Errorf("unknown assign type %q", name)
	}
	return nil
}

// TimeRange is a shift's start and end time, normally "HH:MM".
type TimeRange struct {
	// Start is the shift start time.
	Start string `json:"start"`
	// End is the shift end time.
	End string `json:"end"`
}

// Assignment is one person entered under one shift-type column.
type Assignment struct {
	// Type is the shift-type column header text.
	Type string `json:"type"`
	// Person is the trimmed cell text.
	Person string `json:"person"`
	// State is derived from the cell fill color.
	State AssignedState `json:"assignType"`
}

// ShiftRecord represents one shift row within a day block.
type ShiftRecord struct {
	// Name is the shift name from column A.
	Name string `json:"name"`
	// Time is the parsed time range from column B.
	Time TimeRange `json:"time"`
	// Assignments holds the populated shift-type cells in column order.
	Assignments []Assignment `json:"assignments"`
}
