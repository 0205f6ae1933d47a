package store

import (
	"github.com/ganot/creativehub/internal/domain/automation"
	"github.com/ganot/creativehub/internal/domain/calendar"
	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/messaging"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/personal"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/team"
	"github.com/ganot/creativehub/internal/domain/view"
)

// State is the full dashboard data set. Collections keep insertion order.
//
// Version counts committed mutations since the state was first seeded.
type State struct {
	Version         int64                       `json:"version" yaml:"version,omitempty"`
	CurrentView     view.View                   `json:"current_view" yaml:"current_view,omitempty"`
	SearchTerm      string                      `json:"search_term" yaml:"search_term,omitempty"`
	Modal           view.ModalKind              `json:"modal" yaml:"modal,omitempty"`
	User            *team.User                  `json:"user,omitempty" yaml:"user,omitempty"`
	TeamMembers     []team.User                 `json:"team_members" yaml:"team_members"`
	Clients         []client.Client             `json:"clients" yaml:"clients"`
	Campaigns       []campaign.Campaign         `json:"campaigns" yaml:"campaigns"`
	Tasks           []task.Task                 `json:"tasks" yaml:"tasks"`
	PersonalTasks   []personal.Task             `json:"personal_tasks" yaml:"personal_tasks"`
	Messages        []messaging.Message         `json:"messages" yaml:"messages"`
	Channels        []messaging.Channel         `json:"channels" yaml:"channels"`
	AutomationRules []automation.Rule           `json:"automation_rules" yaml:"automation_rules"`
	CalendarEvents  []calendar.Event            `json:"calendar_events" yaml:"calendar_events"`
	Notifications   []notification.Notification `json:"notifications" yaml:"notifications"`
}

// Clone returns a deep copy of s that shares no memory with it.
func (s State) Clone() State {
	out := s
	if s.User != nil {
		u := s.User.Clone()
		out.User = &u
	}
	out.TeamMembers = cloneEach(s.TeamMembers, team.User.Clone)
	out.Clients = cloneEach(s.Clients, client.Client.Clone)
	out.Campaigns = cloneEach(s.Campaigns, campaign.Campaign.Clone)
	out.Tasks = cloneEach(s.Tasks, task.Task.Clone)
	out.PersonalTasks = cloneEach(s.PersonalTasks, personal.Task.Clone)
	out.Messages = cloneEach(s.Messages, nil)
	out.Channels = cloneEach(s.Channels, messaging.Channel.Clone)
	out.AutomationRules = cloneEach(s.AutomationRules, automation.Rule.Clone)
	out.CalendarEvents = cloneEach(s.CalendarEvents, calendar.Event.Clone)
	out.Notifications = cloneEach(s.Notifications, nil)
	return out
}

// cloneEach copies items into a fresh slice, deep-copying each element with
// clone when it is non-nil. A nil slice stays nil.
func cloneEach[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		if clone != nil {
			item = clone(item)
		}
		out[i] = item
	}
	return out
}

// indexOf returns the position of the first item whose id matches, or -1.
func indexOf[T any](items []T, id string, idOf func(*T) string) int {
	for i := range items {
		if idOf(&items[i]) == id {
			return i
		}
	}
	return -1
}

func clientID(c *client.Client) string                   { return c.ID }
func campaignID(c *campaign.Campaign) string             { return c.ID }
func taskID(t *task.Task) string                         { return t.ID }
func personalTaskID(t *personal.Task) string             { return t.ID }
func ruleID(r *automation.Rule) string                   { return r.ID }
func eventID(e *calendar.Event) string                   { return e.ID }
func messageID(m *messaging.Message) string              { return m.ID }
func channelID(c *messaging.Channel) string              { return c.ID }
func memberID(u *team.User) string                       { return u.ID }
func notificationID(n *notification.Notification) string { return n.ID }
