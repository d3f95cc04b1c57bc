// Package output serializes parsed rosters and writes them to disk.
package output

import (
	"encoding/json"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// ToJSON serializes weeks as the roster document: an array of week objects.
func ToJSON(weeks []models.WeekRecord, pretty bool) ([]byte, error) {
	if weeks == nil {
		weeks = []models.WeekRecord{}
	}
	if pretty {
		return json.MarshalIndent(weeks, "", "  ")
	}
	return json.Marshal(weeks)
}

// FromJSON reads a roster document produced by ToJSON.
func FromJSON(data []byte) ([]models.WeekRecord, error) {
	var weeks []models.WeekRecord
	if err := json.Unmarshal(data, &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}
