package store_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/priority"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/team"
	"github.com/ganot/creativehub/internal/store"
)

var fixedNow = time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, initial store.State, opts ...store.Option) *store.Store {
	t.Helper()

	var (
		mu sync.Mutex
		n  int
	)
	base := []store.Option{
		store.WithClock(func() time.Time { return fixedNow }),
		store.WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
	return store.New(initial, append(base, opts...)...)
}

// agencyState returns two clients, each with one campaign holding tasks.
func agencyState() store.State {
	return store.State{
		TeamMembers: []team.User{
			{ID: "u1", Name: "Ahmet", Role: team.RoleAdmin, Status: team.StatusOnline},
			{ID: "u2", Name: "Zeynep", Role: team.RoleDesigner, Status: team.StatusOnline},
		},
		Clients: []client.Client{
			{ID: "c1", Name: "TechnoMax", Status: client.StatusActive, Campaigns: 1, TotalBudget: 50000, Satisfaction: 4.8},
			{ID: "c2", Name: "Gourmet Kitchen", Status: client.StatusActive, Campaigns: 1, TotalBudget: 25000, Satisfaction: 4.5},
		},
		Campaigns: []campaign.Campaign{
			{ID: "k1", ClientID: "c1", Title: "Product Launch", Status: campaign.StatusInProgress, Progress: 65, Budget: 15000},
			{ID: "k2", ClientID: "c2", Title: "Menu Promotion", Status: campaign.StatusPlanning, Progress: 20, Budget: 8000},
		},
		Tasks: []task.Task{
			{ID: "t1", CampaignID: "k1", Title: "Story templates", Status: task.StatusInProgress, Priority: priority.High, AssignedTo: "u2"},
			{ID: "t2", CampaignID: "k1", Title: "Launch copy", Status: task.StatusTodo, Priority: priority.Medium, AssignedTo: "u1"},
			{ID: "t3", CampaignID: "k2", Title: "Menu shoot", Status: task.StatusDone, Priority: priority.Low, AssignedTo: "u2"},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
