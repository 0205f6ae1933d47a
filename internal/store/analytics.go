package store

import (
	"time"

	"github.com/ganot/creativehub/internal/domain/automation"
	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/personal"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/team"
)

// Aggregates are recomputed from the live collections on every call.

func (s *Store) ClientStats() client.Stats {
	var out client.Stats
	s.read(func(st *State) { out = client.ComputeStats(st.Clients) })
	return out
}

func (s *Store) CampaignStats() campaign.Stats {
	var out campaign.Stats
	s.read(func(st *State) { out = campaign.ComputeStats(st.Campaigns) })
	return out
}

// TaskStats counts tasks per status; overdue is judged against now.
func (s *Store) TaskStats(now time.Time) task.Stats {
	var out task.Stats
	s.read(func(st *State) { out = task.ComputeStats(st.Tasks, now) })
	return out
}

func (s *Store) TeamPerformance() []team.Performance {
	var out []team.Performance
	s.read(func(st *State) { out = team.ComputePerformance(st.TeamMembers, st.Tasks) })
	return out
}

func (s *Store) PersonalTaskStats(now time.Time) personal.Stats {
	var out personal.Stats
	s.read(func(st *State) { out = personal.ComputeStats(st.PersonalTasks, now) })
	return out
}

func (s *Store) AutomationStats() automation.Stats {
	var out automation.Stats
	s.read(func(st *State) { out = automation.ComputeStats(st.AutomationRules) })
	return out
}

func (s *Store) UnreadNotifications() int {
	var n int
	s.read(func(st *State) { n = notification.CountUnread(st.Notifications) })
	return n
}

// Overview bundles every aggregate the dashboard home shows.
type Overview struct {
	Version             int64              `json:"version"`
	Clients             client.Stats       `json:"clients"`
	Campaigns           campaign.Stats     `json:"campaigns"`
	Tasks               task.Stats         `json:"tasks"`
	PersonalTasks       personal.Stats     `json:"personal_tasks"`
	Automation          automation.Stats   `json:"automation"`
	Team                []team.Performance `json:"team"`
	UnreadNotifications int                `json:"unread_notifications"`
}

// ComputeOverview derives the overview of st at now.
func ComputeOverview(st State, now time.Time) Overview {
	return Overview{
		Version:             st.Version,
		Clients:             client.ComputeStats(st.Clients),
		Campaigns:           campaign.ComputeStats(st.Campaigns),
		Tasks:               task.ComputeStats(st.Tasks, now),
		PersonalTasks:       personal.ComputeStats(st.PersonalTasks, now),
		Automation:          automation.ComputeStats(st.AutomationRules),
		Team:                team.ComputePerformance(st.TeamMembers, st.Tasks),
		UnreadNotifications: notification.CountUnread(st.Notifications),
	}
}

// Overview computes every aggregate from one consistent read.
func (s *Store) Overview(now time.Time) Overview {
	var out Overview
	s.read(func(st *State) { out = ComputeOverview(*st, now) })
	return out
}
