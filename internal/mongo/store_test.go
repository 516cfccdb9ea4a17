package mongo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/qanova/timesheet/internal/domain/timesheet"
)

func TestUserSessionsBSONShape(t *testing.T) {
	week := timesheet.NewWeek()
	week[0] = timesheet.Day{{Start: "09:00", End: "12:00"}}
	doc := userSessions{
		UserID:         "user1",
		WeeklySessions: timesheet.ToDocument(timesheet.WeeklySessions{"2024-04-08": week}),
	}

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var generic bson.M
	require.NoError(t, bson.Unmarshal(raw, &generic))
	require.Equal(t, "user1", generic["userId"])

	weeks, ok := generic["weeklySessions"].(bson.M)
	require.True(t, ok)
	days, ok := weeks["2024-04-08"].(bson.A)
	require.True(t, ok)
	require.Len(t, days, timesheet.DaysPerWeek)

	var back userSessions
	require.NoError(t, bson.Unmarshal(raw, &back))
	ws, err := timesheet.FromDocument(back.WeeklySessions)
	require.NoError(t, err)
	require.Equal(t, week, ws["2024-04-08"])
}
