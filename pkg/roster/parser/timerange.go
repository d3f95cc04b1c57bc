package parser

import (
	"strings"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// ParseTimeRange parses compact range text such as "0815-1630" or "08:15 - 16:30".
// The text must split on "-" into exactly two parts. A part that reduces to
// four digits becomes "HH:MM"; any other part is kept as its trimmed text.
func ParseTimeRange(raw string) (models.TimeRange, bool) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return models.TimeRange{}, false
	}
	return models.TimeRange{
		Start: formatClock(parts[0]),
		End:   formatClock(parts[1]),
	}, true
}

// formatClock turns any part with exactly four digits ("0815", "08.15h") into "08:15".
func formatClock(part string) string {
	part = strings.TrimSpace(part)
	digits := make([]byte, 0, len(part))
	for i := 0; i < len(part); i++ {
		if part[i] >= '0' && part[i] <= '9' {
			digits = append(digits, part[i])
		}
	}
	if len(digits) != 4 {
		return part
	}
	return string(digits[:2]) + ":" + string(digits[2:])
}
