package mcp

// ToolDefinition describes a callable tool.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

var (
	priorities     = []string{"low", "medium", "high", "urgent"}
	clientStatus   = []string{"active", "inactive", "potential"}
	campaignStatus = []string{"planning", "in-progress", "review", "completed"}
	taskStatus     = []string{"todo", "in-progress", "review", "done"}
	taskTypes      = []string{"content-creation", "design", "copy", "review", "publishing"}
	personalStatus = []string{"todo", "in-progress", "done"}
	ruleStatus     = []string{"active", "paused", "draft"}
	eventTypes     = []string{"post", "story", "reel", "video", "article"}
	eventStatus    = []string{"draft", "scheduled", "published"}
	noticeTypes    = []string{"info", "success", "warning", "error"}
	presence       = []string{"online", "away", "busy", "offline"}
	views          = []string{"dashboard", "campaigns", "tasks", "clients", "calendar", "analytics", "automation", "messaging", "teams", "personal-tasks", "settings"}
	modalKinds     = []string{"none", "campaign", "task", "client", "automation", "event"}
)

func object(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func noArgs() map[string]any {
	return object(map[string]any{})
}

func str(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func enum(description string, values []string) map[string]any {
	return map[string]any{"type": "string", "description": description, "enum": values}
}

func timestamp(description string) map[string]any {
	return map[string]any{"type": "string", "format": "date-time", "description": description}
}

func number(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

func integer(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func boolean(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

func stringList(description string) map[string]any {
	return map[string]any{"type": "array", "description": description, "items": map[string]any{"type": "string"}}
}

func anyObject(description string) map[string]any {
	return map[string]any{"type": "object", "description": description}
}

func byID(entity string) map[string]any {
	return object(map[string]any{"id": str(entity + " ID")}, "id")
}

func withID(entity string, props map[string]any) map[string]any {
	merged := map[string]any{"id": str(entity + " ID")}
	for k, v := range props {
		merged[k] = v
	}
	return object(merged, "id")
}

func atArgs() map[string]any {
	return object(map[string]any{"at": timestamp("Reference time for overdue checks (defaults to now)")})
}

func clientFields() map[string]any {
	return map[string]any{
		"name":            str("Client name"),
		"industry":        str("Industry"),
		"website":         str("Website URL"),
		"address":         str("Postal address"),
		"logo":            str("Logo URL"),
		"social_channels": stringList("Social platforms in use"),
		"status":          enum("Relationship status", clientStatus),
		"campaigns":       integer("Campaign counter"),
		"total_budget":    number("Total budget"),
		"start_date":      timestamp("Start of the relationship"),
		"next_meeting":    timestamp("Next scheduled meeting"),
		"contacts":        map[string]any{"type": "array", "description": "Contact people", "items": anyObject("Contact with name, email, phone and role")},
		"notes":           str("Free-form notes"),
		"satisfaction":    number("Satisfaction score"),
	}
}

func campaignFields() map[string]any {
	return map[string]any{
		"client_id":   str("Owning client ID"),
		"title":       str("Campaign title"),
		"description": str("Description"),
		"status":      enum("Campaign status", campaignStatus),
		"priority":    enum("Priority", priorities),
		"due_date":    timestamp("Due date"),
		"assigned_to": stringList("Assigned team member IDs"),
		"progress":    integer("Progress percentage 0-100"),
		"budget":      number("Budget"),
		"platforms":   stringList("Target platforms"),
		"tags":        stringList("Tags"),
	}
}

func taskFields() map[string]any {
	return map[string]any{
		"campaign_id": str("Campaign ID"),
		"title":       str("Task title"),
		"description": str("Description"),
		"type":        enum("Task type", taskTypes),
		"status":      enum("Task status", taskStatus),
		"priority":    enum("Priority", priorities),
		"assigned_to": str("Assignee team member ID"),
		"due_date":    timestamp("Due date"),
		"tags":        stringList("Tags"),
		"time_spent":  number("Hours spent"),
	}
}

func personalTaskFields() map[string]any {
	return map[string]any{
		"title":       str("Task title"),
		"description": str("Description"),
		"status":      enum("Status", personalStatus),
		"priority":    enum("Priority", priorities),
		"due_date":    timestamp("Due date"),
		"tags":        stringList("Tags"),
	}
}

func ruleFields() map[string]any {
	return map[string]any{
		"name":        str("Rule name"),
		"description": str("Description"),
		"trigger":     anyObject("Trigger with type and conditions"),
		"action":      anyObject("Action with type and config"),
		"status":      enum("Rule status", ruleStatus),
		"platforms":   stringList("Platforms the rule acts on"),
		"last_run":    timestamp("Last run time"),
		"next_run":    timestamp("Next scheduled run"),
	}
}

func eventFields() map[string]any {
	return map[string]any{
		"title":       str("Event title"),
		"description": str("Description"),
		"date":        timestamp("Publication date"),
		"time":        str("Time of day, HH:MM"),
		"type":        enum("Content type", eventTypes),
		"platform":    str("Target platform"),
		"campaign_id": str("Related campaign ID"),
		"client_id":   str("Related client ID"),
		"status":      enum("Publication status", eventStatus),
		"content":     anyObject("Content with text, images and hashtags"),
		"assigned_to": str("Assignee team member ID"),
	}
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	updatedRule := ruleFields()
	updatedRule["executions"] = integer("Execution counter")
	updatedRule["success_rate"] = number("Success rate percentage 0-100")

	return []ToolDefinition{
		// Clients
		{Name: "add_client", Description: "Add a client. Emits a success notification.", InputSchema: object(clientFields(), "name")},
		{Name: "update_client", Description: "Update fields of a client", InputSchema: withID("Client", clientFields())},
		{Name: "delete_client", Description: "Delete a client with its campaigns and their tasks", InputSchema: byID("Client")},
		{Name: "get_client", Description: "Get a client by ID", InputSchema: byID("Client")},
		{Name: "list_clients", Description: "List clients, optionally filtered", InputSchema: object(map[string]any{
			"query":    str("Case-insensitive name search"),
			"status":   enum("Filter by status", clientStatus),
			"industry": str("Filter by industry"),
		})},
		{Name: "client_stats", Description: "Client totals and average satisfaction", InputSchema: noArgs()},

		// Campaigns
		{Name: "add_campaign", Description: "Add a campaign and bump its client's campaign counter", InputSchema: object(campaignFields(), "client_id", "title")},
		{Name: "update_campaign", Description: "Update fields of a campaign", InputSchema: withID("Campaign", campaignFields())},
		{Name: "delete_campaign", Description: "Delete a campaign and its tasks", InputSchema: byID("Campaign")},
		{Name: "get_campaign", Description: "Get a campaign by ID", InputSchema: byID("Campaign")},
		{Name: "list_campaigns", Description: "List campaigns, optionally filtered", InputSchema: object(map[string]any{
			"query":     str("Case-insensitive title search"),
			"status":    enum("Filter by status", campaignStatus),
			"client_id": str("Filter by client"),
		})},
		{Name: "campaign_stats", Description: "Campaign counts per status, budget and average progress", InputSchema: noArgs()},

		// Tasks
		{Name: "add_task", Description: "Add a task to a campaign. Emits an info notification.", InputSchema: object(taskFields(), "campaign_id", "title")},
		{Name: "update_task", Description: "Update fields of a task. Status changes emit a notification.", InputSchema: withID("Task", taskFields())},
		{Name: "delete_task", Description: "Delete a task", InputSchema: byID("Task")},
		{Name: "get_task", Description: "Get a task by ID", InputSchema: byID("Task")},
		{Name: "list_tasks", Description: "List tasks, optionally filtered", InputSchema: object(map[string]any{
			"query":       str("Case-insensitive title search"),
			"status":      enum("Filter by status", taskStatus),
			"type":        enum("Filter by type", taskTypes),
			"campaign_id": str("Filter by campaign"),
			"assigned_to": str("Filter by assignee"),
		})},
		{Name: "add_task_comment", Description: "Append a comment to a task", InputSchema: withID("Task", map[string]any{
			"text":      str("Comment text"),
			"author_id": str("Author team member ID"),
		})},
		{Name: "bulk_update_tasks", Description: "Apply the same changes to several tasks", InputSchema: object(map[string]any{
			"ids":     stringList("Task IDs"),
			"changes": object(taskFields()),
		}, "ids", "changes")},
		{Name: "bulk_delete_tasks", Description: "Delete several tasks", InputSchema: object(map[string]any{"ids": stringList("Task IDs")}, "ids")},
		{Name: "task_stats", Description: "Task counts per status and overdue count", InputSchema: atArgs()},

		// Personal tasks
		{Name: "add_personal_task", Description: "Add a task to the signed-in user's personal list", InputSchema: object(personalTaskFields(), "title")},
		{Name: "update_personal_task", Description: "Update a personal task", InputSchema: withID("Personal task", personalTaskFields())},
		{Name: "delete_personal_task", Description: "Delete a personal task", InputSchema: byID("Personal task")},
		{Name: "get_personal_task", Description: "Get a personal task by ID", InputSchema: byID("Personal task")},
		{Name: "list_personal_tasks", Description: "List personal tasks", InputSchema: object(map[string]any{
			"query":  str("Case-insensitive title search"),
			"status": enum("Filter by status", personalStatus),
		})},
		{Name: "personal_task_stats", Description: "Personal task counts and overdue count", InputSchema: atArgs()},

		// Automation
		{Name: "add_automation_rule", Description: "Add an automation rule", InputSchema: object(ruleFields(), "name", "trigger", "action")},
		{Name: "update_automation_rule", Description: "Update an automation rule", InputSchema: withID("Rule", updatedRule)},
		{Name: "toggle_automation_rule", Description: "Flip a rule between active and paused", InputSchema: byID("Rule")},
		{Name: "delete_automation_rule", Description: "Delete an automation rule", InputSchema: byID("Rule")},
		{Name: "get_automation_rule", Description: "Get an automation rule by ID", InputSchema: byID("Rule")},
		{Name: "list_automation_rules", Description: "List automation rules", InputSchema: object(map[string]any{
			"query":  str("Case-insensitive name search"),
			"status": enum("Filter by status", ruleStatus),
		})},
		{Name: "automation_stats", Description: "Rule counts, executions and average success rate", InputSchema: noArgs()},

		// Calendar
		{Name: "add_calendar_event", Description: "Schedule a content calendar event", InputSchema: object(eventFields(), "title", "date")},
		{Name: "update_calendar_event", Description: "Update a calendar event", InputSchema: withID("Event", eventFields())},
		{Name: "delete_calendar_event", Description: "Delete a calendar event", InputSchema: byID("Event")},
		{Name: "get_calendar_event", Description: "Get a calendar event by ID", InputSchema: byID("Event")},
		{Name: "list_calendar_events", Description: "List calendar events, optionally filtered", InputSchema: object(map[string]any{
			"day":       timestamp("Only events on this calendar day"),
			"status":    enum("Filter by status", eventStatus),
			"client_id": str("Filter by client"),
			"platform":  str("Filter by platform"),
		})},

		// Messaging
		{Name: "send_message", Description: "Send a direct or channel message", InputSchema: object(map[string]any{
			"text":        str("Message text"),
			"sender_id":   str("Sender team member ID"),
			"receiver_id": str("Receiver for direct messages"),
			"channel_id":  str("Channel for channel messages"),
		}, "text", "sender_id")},
		{Name: "mark_message_as_read", Description: "Mark a message as read", InputSchema: byID("Message")},
		{Name: "list_messages", Description: "List messages in a channel or between two users", InputSchema: object(map[string]any{
			"channel_id":  str("Channel ID"),
			"between":     stringList("Two user IDs of a direct conversation"),
			"unread_only": boolean("Only unread messages"),
		})},
		{Name: "get_channel", Description: "Get a channel by ID", InputSchema: byID("Channel")},
		{Name: "list_channels", Description: "List message channels", InputSchema: noArgs()},

		// Notifications
		{Name: "add_notification", Description: "Push a notification to the top of the feed", InputSchema: object(map[string]any{
			"title":      str("Title"),
			"message":    str("Body"),
			"type":       enum("Severity", noticeTypes),
			"action_url": str("Link to open"),
		}, "title", "message")},
		{Name: "mark_notification_as_read", Description: "Mark a notification as read", InputSchema: byID("Notification")},
		{Name: "clear_all_notifications", Description: "Remove every notification", InputSchema: noArgs()},
		{Name: "list_notifications", Description: "List notifications newest first", InputSchema: object(map[string]any{
			"unread_only": boolean("Only unread notifications"),
			"type":        enum("Filter by severity", noticeTypes),
		})},

		// Team
		{Name: "set_user", Description: "Sign a user in, or out when user is omitted", InputSchema: object(map[string]any{"user": anyObject("Team member record")})},
		{Name: "set_team_members", Description: "Replace the team roster", InputSchema: object(map[string]any{
			"members": map[string]any{"type": "array", "description": "Team members", "items": anyObject("Team member record")},
		}, "members")},
		{Name: "set_user_status", Description: "Set the signed-in user's presence", InputSchema: object(map[string]any{"status": enum("Presence", presence)}, "status")},
		{Name: "get_current_user", Description: "Get the signed-in user", InputSchema: noArgs()},
		{Name: "list_team_members", Description: "List the team roster", InputSchema: noArgs()},
		{Name: "team_performance", Description: "Per-member task completion and average priority", InputSchema: noArgs()},

		// View
		{Name: "set_current_view", Description: "Switch the dashboard view", InputSchema: object(map[string]any{"view": enum("View", views)}, "view")},
		{Name: "set_search_term", Description: "Set the global search term", InputSchema: object(map[string]any{"term": str("Search term")}, "term")},
		{Name: "open_modal", Description: "Open a create form", InputSchema: object(map[string]any{"kind": enum("Form kind", modalKinds)}, "kind")},
		{Name: "close_modal", Description: "Close the open form", InputSchema: noArgs()},

		// Orientation
		{Name: "get_snapshot", Description: "Get the whole dashboard state", InputSchema: noArgs()},
		{Name: "get_overview", Description: "Get every aggregate in one call", InputSchema: atArgs()},
	}
}
