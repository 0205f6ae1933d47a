package seed

import (
	"fmt"

	"github.com/ganot/creativehub/internal/store"
)

// Severity grades a seed issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in a state.
type Issue struct {
	Severity   Severity `json:"severity"`
	Collection string   `json:"collection"`
	ID         string   `json:"id"`
	Message    string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s %q: %s", i.Severity, i.Collection, i.ID, i.Message)
}

// Check reports duplicate ids and dangling references as errors, and client
// campaign counters that disagree with the campaign list as warnings.
func Check(st store.State) []Issue {
	var issues []Issue
	add := func(sev Severity, collection, id, format string, args ...any) {
		issues = append(issues, Issue{
			Severity:   sev,
			Collection: collection,
			ID:         id,
			Message:    fmt.Sprintf(format, args...),
		})
	}

	dupes := func(collection string, ids []string) map[string]bool {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if id == "" {
				add(SeverityError, collection, id, "empty id")
				continue
			}
			if seen[id] {
				add(SeverityError, collection, id, "duplicate id")
			}
			seen[id] = true
		}
		return seen
	}

	members := dupes("team_members", ids(st.TeamMembers, func(i int) string { return st.TeamMembers[i].ID }))
	clients := dupes("clients", ids(st.Clients, func(i int) string { return st.Clients[i].ID }))
	campaigns := dupes("campaigns", ids(st.Campaigns, func(i int) string { return st.Campaigns[i].ID }))
	dupes("tasks", ids(st.Tasks, func(i int) string { return st.Tasks[i].ID }))
	dupes("personal_tasks", ids(st.PersonalTasks, func(i int) string { return st.PersonalTasks[i].ID }))
	dupes("messages", ids(st.Messages, func(i int) string { return st.Messages[i].ID }))
	channels := dupes("channels", ids(st.Channels, func(i int) string { return st.Channels[i].ID }))
	dupes("automation_rules", ids(st.AutomationRules, func(i int) string { return st.AutomationRules[i].ID }))
	dupes("calendar_events", ids(st.CalendarEvents, func(i int) string { return st.CalendarEvents[i].ID }))
	dupes("notifications", ids(st.Notifications, func(i int) string { return st.Notifications[i].ID }))

	counts := make(map[string]int)
	for _, c := range st.Campaigns {
		if !clients[c.ClientID] {
			add(SeverityError, "campaigns", c.ID, "unknown client %q", c.ClientID)
		}
		counts[c.ClientID]++
		for _, m := range c.AssignedTo {
			if !members[m] {
				add(SeverityWarning, "campaigns", c.ID, "unknown assignee %q", m)
			}
		}
	}
	for _, t := range st.Tasks {
		if !campaigns[t.CampaignID] {
			add(SeverityError, "tasks", t.ID, "unknown campaign %q", t.CampaignID)
		}
		if t.AssignedTo != "" && !members[t.AssignedTo] {
			add(SeverityWarning, "tasks", t.ID, "unknown assignee %q", t.AssignedTo)
		}
	}
	for _, m := range st.Messages {
		if m.ChannelID != "" && !channels[m.ChannelID] {
			add(SeverityError, "messages", m.ID, "unknown channel %q", m.ChannelID)
		}
	}
	for _, c := range st.Clients {
		if c.Campaigns != counts[c.ID] {
			add(SeverityWarning, "clients", c.ID, "campaign counter is %d but %d campaigns reference it", c.Campaigns, counts[c.ID])
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func ids[T any](items []T, id func(int) string) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = id(i)
	}
	return out
}
