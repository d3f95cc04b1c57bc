// Package render draws parsed rosters for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// Styles holds the lipgloss styles used by Weeks.
type Styles struct {
	Week      lipgloss.Style
	Day       lipgloss.Style
	Shift     lipgloss.Style
	Time      lipgloss.Style
	Assigned  lipgloss.Style
	Requested lipgloss.Style
	Box       lipgloss.Style
}

// DefaultStyles highlights assigned people in yellow, as in the spreadsheet.
func DefaultStyles() Styles {
	return Styles{
		Week:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Day:       lipgloss.NewStyle().Bold(true).Underline(true),
		Shift:     lipgloss.NewStyle().Bold(true),
		Time:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Assigned:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
		Requested: lipgloss.NewStyle(),
		Box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// PlainStyles renders without any color or border.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Week: plain, Day: plain, Shift: plain, Time: plain,
		Assigned: plain, Requested: plain, Box: plain,
	}
}

// Weeks renders every week as a block of days, shifts and people.
func Weeks(weeks []models.WeekRecord, st Styles) string {
	blocks := make([]string, 0, len(weeks))
	for _, w := range weeks {
		blocks = append(blocks, st.Box.Render(week(w, st)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func week(w models.WeekRecord, st Styles) string {
	lines := []string{st.Week.Render("Week of " + w.Week.Format(models.DateLayout))}
	for _, d := range w.Days {
		lines = append(lines, "", st.Day.Render(fmt.Sprintf("%s %s", d.Day, d.Date.Format(models.DateLayout))))
		for _, s := range d.Shifts {
			lines = append(lines, shift(s, st))
		}
	}
	return strings.Join(lines, "\n")
}

func shift(s models.ShiftRecord, st Styles) string {
	people := make([]string, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		style := st.Requested
		if a.State == models.Assigned {
			style = st.Assigned
		}
		people = append(people, fmt.Sprintf("%s: %s", a.Type, style.Render(a.Person)))
	}
	head := fmt.Sprintf("  %s %s", st.Shift.Render(s.Name), st.Time.Render(s.Time.Start+"-"+s.Time.End))
	return head + "  " + strings.Join(people, ", ")
}
