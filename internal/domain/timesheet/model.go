package timesheet

// DaysPerWeek is the number of working days tracked per week (Monday to Friday).
const DaysPerWeek = 5

// DayNames labels the days of a Week by index.
var DayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Field names a Session clock field.
type Field string

const (
	FieldStart Field = "start"
	FieldEnd   Field = "end"
)

// Valid reports whether f names a Session field.
func (f Field) Valid() bool {
	return f == FieldStart || f == FieldEnd
}

// Session is one start/end range within a day. Either side may be empty while
// the user is still typing it in.
type Session struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// Recorded reports whether any field of the session has been filled in.
func (s Session) Recorded() bool {
	return s.Start != "" || s.End != ""
}

// Day is the ordered list of sessions for one weekday.
type Day []Session

// Week holds the five working days of a week, Monday first.
type Week [DaysPerWeek]Day

// NewWeek returns a week of five empty days.
func NewWeek() Week {
	var w Week
	for i := range w {
		w[i] = Day{}
	}
	return w
}

// Clone returns a deep copy of the week.
func (w Week) Clone() Week {
	var out Week
	for i, day := range w {
		out[i] = append(Day{}, day...)
	}
	return out
}

// WeeklySessions maps week keys to their weeks.
type WeeklySessions map[WeekKey]Week

// Get returns the week stored under key.
func (ws WeeklySessions) Get(key WeekKey) (Week, bool) {
	w, ok := ws[key]
	return w, ok
}

// Clone returns a deep copy of ws. A nil receiver yields an empty map.
func (ws WeeklySessions) Clone() WeeklySessions {
	out := make(WeeklySessions, len(ws))
	for key, week := range ws {
		out[key] = week.Clone()
	}
	return out
}

// copyShallow copies the map but shares the week values, which are replaced
// wholesale rather than edited by the store functions.
func (ws WeeklySessions) copyShallow() WeeklySessions {
	out := make(WeeklySessions, len(ws)+1)
	for key, week := range ws {
		out[key] = week
	}
	return out
}
