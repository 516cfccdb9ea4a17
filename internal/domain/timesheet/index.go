package timesheet

import (
	"slices"
	"strings"
	"time"
)

// DefaultHourlyRate is the pay rate used when none is configured.
const DefaultHourlyRate = 22.5

// MonthSummary aggregates the weeks whose Monday falls in one calendar month.
type MonthSummary struct {
	Label      string    `json:"label"`
	TotalHours float64   `json:"total_hours"`
	TotalPay   float64   `json:"total_pay"`
	Weeks      []WeekKey `json:"weeks"`
}

// SortedKeys returns the keys of ws newest first. Keys are zero-padded ISO
// dates, so descending string order is descending date order.
func SortedKeys(ws WeeklySessions) []WeekKey {
	keys := make([]WeekKey, 0, len(ws))
	for key := range ws {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b WeekKey) int {
		return strings.Compare(string(b), string(a))
	})
	return keys
}

// MonthlyAggregate groups weeks by the month of their Monday, in the order the
// months are first met while walking SortedKeys.
func MonthlyAggregate(ws WeeklySessions, hourlyRate float64) []MonthSummary {
	var months []MonthSummary
	index := make(map[string]int)
	for _, key := range SortedKeys(ws) {
		monday, err := key.Time()
		if err != nil {
			continue
		}
		label := monday.Format("January 2006")
		i, ok := index[label]
		if !ok {
			i = len(months)
			index[label] = i
			months = append(months, MonthSummary{Label: label})
		}
		months[i].TotalHours += WeekTotal(ws[key])
		months[i].Weeks = append(months[i].Weeks, key)
	}
	for i := range months {
		months[i].TotalPay = months[i].TotalHours * hourlyRate
	}
	return months
}

// NextWeekKey returns the week after the most recent known week, or the
// Monday of now when ws is empty.
func NextWeekKey(ws WeeklySessions, now time.Time) WeekKey {
	keys := SortedKeys(ws)
	if len(keys) == 0 {
		return MondayOf(now)
	}
	latest, err := keys[0].Time()
	if err != nil {
		return MondayOf(now)
	}
	return MondayOf(latest.AddDate(0, 0, 7))
}

// ResolveActive returns current if ws holds it, else the most recent key, else
// the Monday of now.
func ResolveActive(ws WeeklySessions, current WeekKey, now time.Time) WeekKey {
	if _, ok := ws[current]; ok && current != "" {
		return current
	}
	if keys := SortedKeys(ws); len(keys) > 0 {
		return keys[0]
	}
	return MondayOf(now)
}

// OlderKey returns the key listed after active in SortedKeys order.
func OlderKey(keys []WeekKey, active WeekKey) (WeekKey, bool) {
	i := slices.Index(keys, active)
	if i < 0 || i+1 >= len(keys) {
		return "", false
	}
	return keys[i+1], true
}

// NewerKey returns the key listed before active in SortedKeys order.
func NewerKey(keys []WeekKey, active WeekKey) (WeekKey, bool) {
	i := slices.Index(keys, active)
	if i <= 0 {
		return "", false
	}
	return keys[i-1], true
}
