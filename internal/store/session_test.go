package store_test

import (
	"context"
	"testing"

	"github.com/ganot/creativehub/internal/domain/team"
	"github.com/ganot/creativehub/internal/domain/view"
	"github.com/ganot/creativehub/internal/store"
	"github.com/stretchr/testify/require"
)

func TestSetUserStatusMirrorsRoster(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, agencyState())

	require.NoError(t, s.SetUser(ctx, &team.User{ID: "u1", Name: "Ahmet", Status: team.StatusOnline}))
	require.NoError(t, s.SetUserStatus(ctx, team.StatusBusy))

	u, ok := s.CurrentUser()
	require.True(t, ok)
	require.Equal(t, team.StatusBusy, u.Status)
	require.Equal(t, fixedNow, u.LastActive)

	members := s.ListTeamMembers()
	require.Equal(t, team.StatusBusy, members[0].Status)
	require.Equal(t, team.StatusOnline, members[1].Status)
}

func TestSetUserStatus_NoUser(t *testing.T) {
	permissive := newTestStore(t, store.State{})
	require.NoError(t, permissive.SetUserStatus(context.Background(), team.StatusAway))
	require.EqualValues(t, 0, permissive.Version())

	strict := newTestStore(t, store.State{}, store.WithMode(store.ModeStrict))
	require.ErrorIs(t, strict.SetUserStatus(context.Background(), team.StatusAway), store.ErrNoActiveUser)
}

func TestSetTeamMembers(t *testing.T) {
	s := newTestStore(t, agencyState())

	require.NoError(t, s.SetTeamMembers(context.Background(), []team.User{{ID: "u9", Name: "Can"}}))
	members := s.ListTeamMembers()
	require.Len(t, members, 1)
	require.Len(t, s.TeamPerformance(), 1)
}

func TestViewState(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, store.State{})

	require.NoError(t, s.SetCurrentView(ctx, view.Campaigns))
	require.NoError(t, s.SetSearchTerm(ctx, "launch"))
	require.NoError(t, s.OpenModal(ctx, view.ModalCampaign))

	snap := s.Snapshot()
	require.Equal(t, view.Campaigns, snap.CurrentView)
	require.Equal(t, "launch", snap.SearchTerm)
	require.Equal(t, view.ModalCampaign, snap.Modal)
	require.True(t, snap.Modal.Open())

	require.NoError(t, s.CloseModal(ctx))
	require.False(t, s.Snapshot().Modal.Open())

	require.NoError(t, s.OpenModal(ctx, view.ModalTask))
	require.NoError(t, s.OpenModal(ctx, view.ModalNone))
	require.Equal(t, view.ModalNone, s.Snapshot().Modal)

	require.ErrorIs(t, s.OpenModal(ctx, view.ModalKind(42)), view.ErrUnknownModal)
}

func TestSetCurrentView_StrictRejectsUnknown(t *testing.T) {
	s := newTestStore(t, store.State{}, store.WithMode(store.ModeStrict))
	require.ErrorIs(t, s.SetCurrentView(context.Background(), view.View("billing")), view.ErrUnknownView)
}
