package report

import (
	"fmt"
	"strings"

	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// Template holds the configurable parts of the weekly report.
type Template struct {
	Greeting string `yaml:"greeting"`
	Company  string `yaml:"company"`
}

// DefaultTemplate returns the template the report has always been sent with.
func DefaultTemplate() Template {
	return Template{
		Greeting: "Hi Rita, Simone,",
		Company:  "QanovaTech",
	}
}

const (
	rangeLayout  = "Mon 02 January 2006"
	dayNameWidth = 12
)

// Generate renders the plain-text weekly report for the week under key. The
// output is meant to be pasted into an email as-is, so its line structure is
// fixed. An unset or unparseable key yields an empty report.
func Generate(key timesheet.WeekKey, week timesheet.Week, displayName string, tmpl Template) string {
	if key == "" {
		return ""
	}
	monday, err := key.Time()
	if err != nil {
		return ""
	}
	friday := monday.AddDate(0, 0, timesheet.DaysPerWeek-1)

	daily := timesheet.DayTotals(week)
	var total float64
	for _, hours := range daily {
		total += hours
	}

	lines := []string{
		tmpl.Greeting,
		"",
		fmt.Sprintf("Here are my hours for the week ending the %s %s", Ordinal(friday.Day()), friday.Format("January")),
		"",
		fmt.Sprintf("%s -> %s", monday.Format(rangeLayout), friday.Format(rangeLayout)),
		"",
		fmt.Sprintf("%s - %s", tmpl.Company, timesheet.FormatDuration(total)),
	}
	for i, hours := range daily {
		if hours > 0 {
			lines = append(lines, fmt.Sprintf("\t[%-*s %s]", dayNameWidth, timesheet.DayNames[i], timesheet.FormatDuration(hours)))
		}
	}
	lines = append(lines,
		"",
		"Total: "+timesheet.FormatDuration(total),
		"",
		"Kind Regards",
		"",
		displayName,
	)
	return strings.Join(lines, "\n")
}

// Ordinal renders a day of the month with its English suffix (1st, 22nd, 13th).
func Ordinal(day int) string {
	suffix := "th"
	switch day % 100 {
	case 11, 12, 13:
	default:
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
