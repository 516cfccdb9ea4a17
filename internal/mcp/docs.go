package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `timesheet keeps one user's working hours as weeks of Monday-Friday sessions.

Model:
- Week: keyed by its Monday (YYYY-MM-DD). Each weekday holds an ordered list of sessions.
- Session: a start and end clock time (HH:MM). Either may be empty while being filled in.
- Active week: the week edits apply to. Any date selects the week it falls in.

Workflow:
1) Orient: list_weeks, then get_week for the active week.
2) Edit: add_session(day), then update_session(day, session, field=start|end, value).
3) Move around: select_week(week or date), navigate_week(older|newer), next_week.
4) Report: generate_report for the email text; monthly_summary for hours and pay per month.

Deleting a week with recorded hours returns CONFIRMATION_REQUIRED. Ask the user before
calling delete_week again with confirm=true.

Every edit is saved in the background. A save_error field in a response means the edit is
kept in memory but did not reach storage. It is repeated on every edit until a later save
succeeds.

Docs:
- timesheet://docs/report
- timesheet://docs/hours
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "timesheet://docs/report",
		Name:        "docs_report",
		Title:       "Weekly report format",
		Description: "Layout of the email text produced by generate_report.",
		Content: `# Weekly report

The report is plain text meant to be pasted into an email unchanged:

    <greeting>

    Here are my hours for the week ending the <ordinal day> <month of Friday>

    Mon 08 April 2024 -> Fri 12 April 2024

    <company> - <week total>
    	[Monday       7h 30m 00s]
    	[Wednesday    8h 15m 00s]

    Total: <week total>

    Kind Regards

    <display name>

- Only days with hours get a line.
- Durations are written as <h>h <mm>m 00s.
- The greeting and company come from configuration; the display name from set_display_name.
`,
	},
	{
		URI:         "timesheet://docs/hours",
		Name:        "docs_hours",
		Title:       "How hours are counted",
		Description: "Session arithmetic, month grouping and pay.",
		Content: `# Counting hours

- A session counts end minus start. Sessions with a missing side, or an end before the start, count zero.
- Clock values are HH:MM; a value without minutes counts as zero minutes.
- A day total is the sum of its sessions; a week total the sum of its days.
- Months group weeks by the month of their Monday, so a week spanning two months counts in the first.
- Month pay is hours times the configured hourly rate.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
