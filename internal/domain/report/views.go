package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// DayRow is one line of the week table.
type DayRow struct {
	Name     string              `json:"name"`
	Date     string              `json:"date"`
	Sessions []timesheet.Session `json:"sessions"`
	Total    string              `json:"total"`
}

// WeekRows lays out the week under key as five dated rows.
func WeekRows(key timesheet.WeekKey, week timesheet.Week) ([]DayRow, error) {
	monday, err := key.Time()
	if err != nil {
		return nil, err
	}
	rows := make([]DayRow, 0, timesheet.DaysPerWeek)
	for i, day := range week {
		rows = append(rows, DayRow{
			Name:     timesheet.DayNames[i],
			Date:     monday.AddDate(0, 0, i).Format("02/01/2006"),
			Sessions: append([]timesheet.Session{}, day...),
			Total:    timesheet.FormatDuration(timesheet.DayTotal(day)),
		})
	}
	return rows, nil
}

// MonthLine formats a month summary as "April 2024  15.25 h - CHF 343.13".
func MonthLine(m timesheet.MonthSummary, currency string) string {
	return fmt.Sprintf("%s  %s h - %s %.2f", m.Label, RoundHours(m.TotalHours), currency, m.TotalPay)
}

// WeekLabel formats a week key the way the month listing shows it ("08 Apr").
func WeekLabel(key timesheet.WeekKey) string {
	t, err := key.Time()
	if err != nil {
		return string(key)
	}
	return t.Format("02 Jan")
}

// RoundHours renders hours rounded to two decimals without trailing zeros.
func RoundHours(hours float64) string {
	return strconv.FormatFloat(math.Round(hours*100)/100, 'f', -1, 64)
}
