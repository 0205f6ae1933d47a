package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `creativehub holds the live state of an agency operations dashboard:
clients, their campaigns, campaign tasks, personal tasks, automation rules,
content calendar events, team messages and the notification feed.

Orient first:
1) get_overview returns every aggregate in one call.
2) list_* tools take optional filters; get_* tools take an id.

Writing:
- add_client, add_campaign and add_task push a notification onto the feed.
- delete_client removes the client's campaigns and their tasks.
- add_campaign and delete_campaign keep the client's campaign counter in step.
- update_task emits "Task status updated" only when the status changes.
- In strict mode unknown ids fail with *_NOT_FOUND; in permissive mode they are ignored.

Docs:
- creativehub://docs/index
- creativehub://docs/cascades
- creativehub://docs/modes
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
		URI:         "creativehub://docs/index",
		Name:        "docs_index",
		Title:       "creativehub docs index",
		Description: "What the dashboard state holds and which tools touch it.",
		Content: `# creativehub

Collections: clients, campaigns, tasks, personal_tasks, automation_rules,
calendar_events, messages, channels, notifications, team_members.

Session: current user, current view, search term, open modal.

Every committed mutation bumps the state version by one. Tools that return
no entity answer with {"version": N}.

Read next:
- creativehub://docs/cascades for what a delete takes with it
- creativehub://docs/modes for strict and permissive error handling
`,
	},
	{
		URI:         "creativehub://docs/cascades",
		Name:        "docs_cascades",
		Title:       "Cascades and side effects",
		Description: "Which mutations change more than one collection.",
		Content: `# Cascades and side effects

| Tool | Also changes |
|------|--------------|
| add_client | notification "New client added" (success) |
| delete_client | removes the client's campaigns and their tasks; notification (warning) |
| add_campaign | client campaign counter +1; notification (success) |
| delete_campaign | client campaign counter -1, floored at 0; removes its tasks; notification (warning) |
| add_task | notification (info) naming the assignee |
| update_task | notification (info) when the status changes |
| send_message | channel last_message |
| set_user_status | the user's entry in the team roster |

Bulk task tools never emit notifications.
`,
	},
	{
		URI:         "creativehub://docs/modes",
		Name:        "docs_modes",
		Title:       "Strict and permissive modes",
		Description: "How unknown ids and invalid input are reported.",
		Content: `# Modes

permissive (default): updates of unknown ids return null and change nothing.
Deletes of unknown ids succeed. Input is not validated.

strict: unknown ids fail with a *_NOT_FOUND code, invalid input fails with
INVALID_INPUT, and bulk task tools are all-or-nothing.

The mode is fixed when the server starts (store.mode in the config file).
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

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
