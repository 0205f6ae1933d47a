package store_test

import (
	"context"
	"testing"

	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/store"
	"github.com/stretchr/testify/require"
)

func TestAddCampaignIncrementsClientCounter(t *testing.T) {
	s := newTestStore(t, store.State{
		Clients: []client.Client{{ID: "1", Name: "Solo", Campaigns: 0}},
	})

	added, err := s.AddCampaign(context.Background(), campaign.CreateRequest{ClientID: "1", Title: "Spring"})
	require.NoError(t, err)
	require.Equal(t, fixedNow, added.CreatedAt)
	require.Equal(t, fixedNow, added.UpdatedAt)

	c, err := s.GetClient("1")
	require.NoError(t, err)
	require.Equal(t, 1, c.Campaigns)

	notes := s.ListNotifications(notification.ListOptions{})
	require.Len(t, notes, 1)
	require.Equal(t, "New campaign created", notes[0].Title)
	require.Contains(t, notes[0].Message, "Spring")
}

func TestAddCampaign_UnknownClient(t *testing.T) {
	t.Run("permissive adds without counter", func(t *testing.T) {
		s := newTestStore(t, agencyState())

		added, err := s.AddCampaign(context.Background(), campaign.CreateRequest{ClientID: "ghost", Title: "Orphan"})
		require.NoError(t, err)
		require.NotNil(t, added)
		require.Len(t, s.Snapshot().Campaigns, 3)
	})

	t.Run("strict rejects", func(t *testing.T) {
		s := newTestStore(t, agencyState(), store.WithMode(store.ModeStrict))

		_, err := s.AddCampaign(context.Background(), campaign.CreateRequest{ClientID: "ghost", Title: "Orphan"})
		require.ErrorIs(t, err, client.ErrClientNotFound)
		require.Len(t, s.Snapshot().Campaigns, 2)
	})

	t.Run("strict rejects progress out of range", func(t *testing.T) {
		s := newTestStore(t, agencyState(), store.WithMode(store.ModeStrict))

		_, err := s.AddCampaign(context.Background(), campaign.CreateRequest{ClientID: "c1", Title: "Big", Progress: 150})
		require.ErrorIs(t, err, campaign.ErrInvalidInput)
	})
}

func TestUpdateCampaignRefreshesUpdatedAt(t *testing.T) {
	s := newTestStore(t, agencyState())

	updated, err := s.UpdateCampaign(context.Background(), "k1", campaign.UpdateRequest{Progress: ptr(80)})
	require.NoError(t, err)
	require.Equal(t, 80, updated.Progress)
	require.Equal(t, fixedNow, updated.UpdatedAt)
	require.Equal(t, "Product Launch", updated.Title)
}

func TestUpdateCampaign_PermissiveDoesNotClamp(t *testing.T) {
	s := newTestStore(t, agencyState())

	updated, err := s.UpdateCampaign(context.Background(), "k1", campaign.UpdateRequest{Progress: ptr(140)})
	require.NoError(t, err)
	require.Equal(t, 140, updated.Progress)
}

func TestDeleteCampaign(t *testing.T) {
	s := newTestStore(t, agencyState())

	require.NoError(t, s.DeleteCampaign(context.Background(), "k1"))

	c, err := s.GetClient("c1")
	require.NoError(t, err)
	require.Equal(t, 0, c.Campaigns)

	require.Empty(t, s.ListTasks(task.ListOptions{CampaignID: "k1"}))
	require.Len(t, s.ListTasks(task.ListOptions{}), 1)

	notes := s.ListNotifications(notification.ListOptions{})
	require.Len(t, notes, 1)
	require.Equal(t, notification.TypeWarning, notes[0].Type)
	require.Equal(t, "Campaign deleted", notes[0].Title)
}

func TestDeleteCampaign_CounterFlooredAtZero(t *testing.T) {
	st := agencyState()
	st.Clients[0].Campaigns = 0
	s := newTestStore(t, st)

	require.NoError(t, s.DeleteCampaign(context.Background(), "k1"))

	c, err := s.GetClient("c1")
	require.NoError(t, err)
	require.Equal(t, 0, c.Campaigns)
}

func TestAddThenDeleteCampaignRestoresCounter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, agencyState())

	added, err := s.AddCampaign(ctx, campaign.CreateRequest{ClientID: "c2", Title: "Holiday"})
	require.NoError(t, err)

	c, _ := s.GetClient("c2")
	require.Equal(t, 2, c.Campaigns)

	require.NoError(t, s.DeleteCampaign(ctx, added.ID))

	c, _ = s.GetClient("c2")
	require.Equal(t, 1, c.Campaigns)
}

func TestDeleteCampaign_Unknown(t *testing.T) {
	permissive := newTestStore(t, agencyState())
	require.NoError(t, permissive.DeleteCampaign(context.Background(), "ghost"))
	require.Len(t, permissive.Snapshot().Campaigns, 2)
	require.Equal(t, 1, permissive.UnreadNotifications())

	strict := newTestStore(t, agencyState(), store.WithMode(store.ModeStrict))
	err := strict.DeleteCampaign(context.Background(), "ghost")
	require.ErrorIs(t, err, campaign.ErrCampaignNotFound)
	require.Zero(t, strict.UnreadNotifications())
}

func TestListCampaigns(t *testing.T) {
	s := newTestStore(t, agencyState())

	got := s.ListCampaigns(campaign.ListOptions{ClientID: "c2"})
	require.Len(t, got, 1)
	require.Equal(t, "k2", got[0].ID)

	got = s.ListCampaigns(campaign.ListOptions{Query: "LAUNCH", Status: campaign.StatusInProgress})
	require.Len(t, got, 1)
	require.Equal(t, "k1", got[0].ID)
}
