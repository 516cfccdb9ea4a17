package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HoursBetween returns the decimal hours covered by s. Empty or malformed
// clock values, and ranges that end at or before their start, count as zero.
func HoursBetween(s Session) float64 {
	if s.Start == "" || s.End == "" {
		return 0
	}
	start, ok := clockMinutes(s.Start)
	if !ok {
		return 0
	}
	end, ok := clockMinutes(s.End)
	if !ok {
		return 0
	}
	diff := end - start
	if diff <= 0 {
		return 0
	}
	return float64(diff) / 60
}

// clockMinutes parses "HH:MM" into minutes since midnight. Components past
// the minutes are ignored and an empty component reads as zero, so "09:00:30"
// and "09:" both mean nine o'clock.
func clockMinutes(value string) (int, bool) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, ok := clockPart(parts[0])
	if !ok {
		return 0, false
	}
	m, ok := clockPart(parts[1])
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func clockPart(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// FormatDuration renders decimal hours as "{h}h {mm}m 00s". The value is
// rounded to whole seconds first, then truncated to minutes, so the seconds
// field always reads 00s.
func FormatDuration(hours float64) string {
	sec := int64(math.Round(hours * 3600))
	if sec < 0 {
		sec = 0
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	return fmt.Sprintf("%dh %02dm 00s", h, m)
}

// DayTotal sums the hours of every session in d.
func DayTotal(d Day) float64 {
	var total float64
	for _, s := range d {
		total += HoursBetween(s)
	}
	return total
}

// DayTotals returns the per-day hours of w.
func DayTotals(w Week) [DaysPerWeek]float64 {
	var totals [DaysPerWeek]float64
	for i, day := range w {
		totals[i] = DayTotal(day)
	}
	return totals
}

// WeekTotal returns the hours recorded across all days of w.
func WeekTotal(w Week) float64 {
	var total float64
	for _, day := range w {
		total += DayTotal(day)
	}
	return total
}
