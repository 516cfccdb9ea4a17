package timesheet

import (
	"fmt"
	"time"
)

// KeyLayout is the ISO date layout of a WeekKey.
const KeyLayout = "2006-01-02"

// WeekKey identifies a week by the ISO date of its Monday.
type WeekKey string

func (k WeekKey) String() string {
	return string(k)
}

// Time parses the key as a local wall-clock date.
func (k WeekKey) Time() (time.Time, error) {
	return ParseDate(string(k))
}

// Valid reports whether the key parses as a date.
func (k WeekKey) Valid() bool {
	_, err := k.Time()
	return err == nil
}

// ParseDate parses an ISO date (YYYY-MM-DD) at local midnight.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// ParseWeekKey parses any ISO date and normalizes it to its week's key.
func ParseWeekKey(value string) (WeekKey, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return NormalizeSelectedDate(t), nil
}

// KeyOf formats t as a WeekKey without normalizing it.
func KeyOf(t time.Time) WeekKey {
	return WeekKey(t.Format(KeyLayout))
}

// MondayOf returns the key of the Monday on or before date.
func MondayOf(date time.Time) WeekKey {
	return KeyOf(mondayTime(date))
}

// NormalizeSelectedDate maps a picked date to its week key. Mondays are used
// as they are; any other day maps to the Monday before it.
func NormalizeSelectedDate(date time.Time) WeekKey {
	if date.Weekday() == time.Monday {
		return KeyOf(midnight(date))
	}
	return MondayOf(date)
}

func mondayTime(date time.Time) time.Time {
	// Weekday counts from Sunday; shift so Monday is 0.
	offset := (int(date.Weekday()) + 6) % 7
	return midnight(date.AddDate(0, 0, -offset))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
