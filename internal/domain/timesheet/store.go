package timesheet

// The functions in this file never modify their input. Each one returns a new
// WeeklySessions value, or the input itself when the call is a no-op, so any
// snapshot handed to persistence stays valid after later edits.

// EnsureWeek returns ws with an empty week stored under key if it was absent.
func EnsureWeek(ws WeeklySessions, key WeekKey) WeeklySessions {
	if _, ok := ws[key]; ok {
		return ws
	}
	out := ws.copyShallow()
	out[key] = NewWeek()
	return out
}

// InsertWeek stores week under key unless the key is already taken. Existing
// data is never overwritten.
func InsertWeek(ws WeeklySessions, key WeekKey, week Week) WeeklySessions {
	if _, ok := ws[key]; ok {
		return ws
	}
	out := ws.copyShallow()
	out[key] = week.Clone()
	return out
}

// DeleteWeek removes key and everything recorded under it. Callers gate this
// behind HasRecordedEntries and an explicit confirmation.
func DeleteWeek(ws WeeklySessions, key WeekKey) WeeklySessions {
	if _, ok := ws[key]; !ok {
		return ws
	}
	out := ws.copyShallow()
	delete(out, key)
	return out
}

// AddSession appends an empty session to the given day of the active week,
// creating the week first if needed.
func AddSession(ws WeeklySessions, active WeekKey, dayIndex int) WeeklySessions {
	if !validDay(dayIndex) {
		return ws
	}
	return editDay(ws, active, dayIndex, func(day Day) (Day, bool) {
		next := make(Day, len(day), len(day)+1)
		copy(next, day)
		return append(next, Session{}), true
	})
}

// UpdateSession sets one field of the addressed session in the active week.
func UpdateSession(ws WeeklySessions, active WeekKey, dayIndex, sessionIndex int, field Field, value string) WeeklySessions {
	if !validDay(dayIndex) || !field.Valid() {
		return ws
	}
	return editDay(ws, active, dayIndex, func(day Day) (Day, bool) {
		if sessionIndex < 0 || sessionIndex >= len(day) {
			return day, false
		}
		next := append(Day{}, day...)
		s := &next[sessionIndex]
		current := &s.Start
		if field == FieldEnd {
			current = &s.End
		}
		if *current == value {
			return day, false
		}
		*current = value
		return next, true
	})
}

// RemoveSession deletes the addressed session, shifting later ones left.
func RemoveSession(ws WeeklySessions, active WeekKey, dayIndex, sessionIndex int) WeeklySessions {
	if !validDay(dayIndex) {
		return ws
	}
	return editDay(ws, active, dayIndex, func(day Day) (Day, bool) {
		if sessionIndex < 0 || sessionIndex >= len(day) {
			return day, false
		}
		next := make(Day, 0, len(day)-1)
		next = append(next, day[:sessionIndex]...)
		next = append(next, day[sessionIndex+1:]...)
		return next, true
	})
}

// HasRecordedEntries reports whether any session of w has a start or end set.
func HasRecordedEntries(w Week) bool {
	for _, day := range w {
		for _, s := range day {
			if s.Recorded() {
				return true
			}
		}
	}
	return false
}

func validDay(dayIndex int) bool {
	return dayIndex >= 0 && dayIndex < DaysPerWeek
}

// editDay applies fn to one day of the active week. When fn reports no change
// the input map is returned untouched.
func editDay(ws WeeklySessions, active WeekKey, dayIndex int, fn func(Day) (Day, bool)) WeeklySessions {
	week, ok := ws[active]
	if !ok {
		week = NewWeek()
	}
	day, changed := fn(week[dayIndex])
	if !changed {
		return ws
	}
	week[dayIndex] = day
	out := ws.copyShallow()
	out[active] = week
	return out
}
