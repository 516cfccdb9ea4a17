package report_test

import (
	"strings"
	"testing"

	"github.com/qanova/timesheet/internal/domain/report"
	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FullTemplate(t *testing.T) {
	week := timesheet.NewWeek()
	week[0] = timesheet.Day{{Start: "09:00", End: "12:00"}, {Start: "13:00", End: "17:30"}}
	week[2] = timesheet.Day{{Start: "08:00", End: "16:15"}}
	week[4] = timesheet.Day{{Start: "10:00", End: ""}}

	got := report.Generate("2024-04-08", week, "Jo Doe", report.DefaultTemplate())

	want := strings.Join([]string{
		"Hi Rita, Simone,",
		"",
		"Here are my hours for the week ending the 12th April",
		"",
		"Mon 08 April 2024 -> Fri 12 April 2024",
		"",
		"QanovaTech - 15h 45m 00s",
		"\t[Monday       7h 30m 00s]",
		"\t[Wednesday    8h 15m 00s]",
		"",
		"Total: 15h 45m 00s",
		"",
		"Kind Regards",
		"",
		"Jo Doe",
	}, "\n")
	require.Equal(t, want, got)
}

func TestGenerate_InvalidKey(t *testing.T) {
	require.Empty(t, report.Generate("", timesheet.NewWeek(), "x", report.DefaultTemplate()))
	require.Empty(t, report.Generate("not-a-date", timesheet.NewWeek(), "x", report.DefaultTemplate()))
}

func TestGenerate_EmptyWeekOmitsDayLines(t *testing.T) {
	got := report.Generate("2024-12-30", timesheet.NewWeek(), "", report.Template{Greeting: "Hello,", Company: "Acme"})
	lines := strings.Split(got, "\n")

	require.Equal(t, "Hello,", lines[0])
	require.Equal(t, "Here are my hours for the week ending the 3rd January", lines[2])
	require.Equal(t, "Mon 30 December 2024 -> Fri 03 January 2025", lines[4])
	require.Equal(t, "Acme - 0h 00m 00s", lines[6])
	require.Equal(t, "", lines[7])
	require.Equal(t, "Total: 0h 00m 00s", lines[8])
	require.Equal(t, "", lines[len(lines)-1])
	require.NotContains(t, got, "\t[")
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th",
		13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 30: "30th", 31: "31st",
	}
	for day, want := range cases {
		require.Equal(t, want, report.Ordinal(day))
	}
}
