package timesheet

import (
	"fmt"
	"time"
)

// Document is the stored form of WeeklySessions used by the remote stores:
// week keys mapped to a list of days, each a list of sessions.
type Document map[string][]Day

// ToDocument converts ws to its stored form. Empty days are kept as empty
// lists so every week serializes with five entries.
func ToDocument(ws WeeklySessions) Document {
	doc := make(Document, len(ws))
	for key, week := range ws {
		days := make([]Day, DaysPerWeek)
		for i, day := range week {
			days[i] = append(Day{}, day...)
		}
		doc[string(key)] = days
	}
	return doc
}

// FromDocument converts a stored document back. Missing trailing days are
// treated as empty. A key that is not a Monday date, or a week with more
// than five days, is an error.
func FromDocument(doc Document) (WeeklySessions, error) {
	ws := make(WeeklySessions, len(doc))
	for raw, days := range doc {
		key := WeekKey(raw)
		t, err := key.Time()
		if err != nil {
			return nil, fmt.Errorf("%w: week key %q", ErrInvalidDocument, raw)
		}
		if t.Weekday() != time.Monday {
			return nil, fmt.Errorf("%w: week key %q is a %s", ErrInvalidDocument, raw, t.Weekday())
		}
		if len(days) > DaysPerWeek {
			return nil, fmt.Errorf("%w: week %s has %d days", ErrInvalidDocument, raw, len(days))
		}
		week := NewWeek()
		for i, day := range days {
			week[i] = append(Day{}, day...)
		}
		ws[key] = week
	}
	return ws, nil
}
