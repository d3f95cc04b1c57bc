package parser

import "strings"

// IsRosterSheet reports whether a sheet name follows the roster convention:
// "TA" in any case, or exactly eight digits (a ddmmyyyy date).
func IsRosterSheet(name string) bool {
	if strings.EqualFold(name, "TA") {
		return true
	}
	if len(name) != 8 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
