package timesheet_test

import (
	"reflect"
	"testing"

	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/stretchr/testify/require"
)

const monday = timesheet.WeekKey("2024-04-08")

func TestEnsureWeek(t *testing.T) {
	ws := timesheet.EnsureWeek(nil, monday)
	week, ok := ws.Get(monday)
	require.True(t, ok)
	for _, day := range week {
		require.NotNil(t, day)
		require.Empty(t, day)
	}

	ws = timesheet.AddSession(ws, monday, 1)
	again := timesheet.EnsureWeek(ws, monday)
	require.Len(t, again[monday][1], 1, "existing week must be kept")
}

func TestInsertWeekKeepsExistingData(t *testing.T) {
	first := timesheet.NewWeek()
	first[0] = timesheet.Day{{Start: "09:00", End: "10:00"}}
	second := timesheet.NewWeek()
	second[2] = timesheet.Day{{Start: "11:00", End: "12:00"}}

	ws := timesheet.InsertWeek(timesheet.WeeklySessions{}, monday, first)
	ws = timesheet.InsertWeek(ws, monday, second)

	require.Equal(t, first, ws[monday])
}

func TestDeleteThenEnsureLosesContent(t *testing.T) {
	ws := timesheet.AddSession(nil, monday, 0)
	ws = timesheet.UpdateSession(ws, monday, 0, 0, timesheet.FieldStart, "09:00")

	ws = timesheet.DeleteWeek(ws, monday)
	_, ok := ws.Get(monday)
	require.False(t, ok)

	ws = timesheet.EnsureWeek(ws, monday)
	require.Equal(t, timesheet.NewWeek(), ws[monday])
}

func TestSessionMutations(t *testing.T) {
	ws := timesheet.AddSession(nil, monday, 0)
	ws = timesheet.AddSession(ws, monday, 0)
	ws = timesheet.AddSession(ws, monday, 0)
	ws = timesheet.UpdateSession(ws, monday, 0, 0, timesheet.FieldStart, "08:00")
	ws = timesheet.UpdateSession(ws, monday, 0, 1, timesheet.FieldStart, "10:00")
	ws = timesheet.UpdateSession(ws, monday, 0, 2, timesheet.FieldEnd, "18:00")

	ws = timesheet.RemoveSession(ws, monday, 0, 1)
	require.Equal(t, timesheet.Day{{Start: "08:00"}, {End: "18:00"}}, ws[monday][0])
}

func TestMutationsDoNotTouchInput(t *testing.T) {
	before := timesheet.AddSession(nil, monday, 2)
	snapshot := before.Clone()

	after := timesheet.UpdateSession(before, monday, 2, 0, timesheet.FieldEnd, "17:00")
	after = timesheet.AddSession(after, monday, 2)
	after = timesheet.RemoveSession(after, monday, 2, 0)
	_ = timesheet.DeleteWeek(after, monday)

	require.Equal(t, snapshot, before)
	require.Len(t, after[monday][2], 1)
}

func TestOutOfRangeIndicesAreNoOps(t *testing.T) {
	ws := timesheet.AddSession(nil, monday, 0)
	snapshot := ws.Clone()

	require.Equal(t, snapshot, timesheet.AddSession(ws, monday, 5))
	require.Equal(t, snapshot, timesheet.AddSession(ws, monday, -1))
	require.Equal(t, snapshot, timesheet.UpdateSession(ws, monday, 0, 3, timesheet.FieldStart, "09:00"))
	require.Equal(t, snapshot, timesheet.UpdateSession(ws, monday, 7, 0, timesheet.FieldStart, "09:00"))
	require.Equal(t, snapshot, timesheet.UpdateSession(ws, monday, 0, 0, timesheet.Field("pause"), "09:00"))
	require.Equal(t, snapshot, timesheet.RemoveSession(ws, monday, 0, 1))
	require.Equal(t, snapshot, timesheet.RemoveSession(ws, monday, 9, 0))
}

func TestUpdateWithSameValueReturnsInput(t *testing.T) {
	ws := timesheet.AddSession(nil, monday, 1)
	ws = timesheet.UpdateSession(ws, monday, 1, 0, timesheet.FieldEnd, "17:00")

	same := timesheet.UpdateSession(ws, monday, 1, 0, timesheet.FieldEnd, "17:00")
	require.Equal(t, reflect.ValueOf(ws).Pointer(), reflect.ValueOf(same).Pointer())

	changed := timesheet.UpdateSession(ws, monday, 1, 0, timesheet.FieldEnd, "17:30")
	require.NotEqual(t, reflect.ValueOf(ws).Pointer(), reflect.ValueOf(changed).Pointer())
	require.Equal(t, "17:00", ws[monday][1][0].End)
}

func TestAddSessionCreatesMissingWeek(t *testing.T) {
	ws := timesheet.AddSession(timesheet.WeeklySessions{}, monday, 4)
	require.Len(t, ws[monday][4], 1)
	require.Empty(t, ws[monday][0])
}

func TestHasRecordedEntries(t *testing.T) {
	week := timesheet.NewWeek()
	require.False(t, timesheet.HasRecordedEntries(week))

	week[1] = timesheet.Day{{}}
	require.False(t, timesheet.HasRecordedEntries(week), "blank sessions hold no hours")

	week[1] = timesheet.Day{{End: "12:00"}}
	require.True(t, timesheet.HasRecordedEntries(week))
}
