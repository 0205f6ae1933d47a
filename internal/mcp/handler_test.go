package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/view"
	"github.com/ganot/creativehub/internal/metrics"
	"github.com/ganot/creativehub/internal/store"
)

var fixedNow = time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T, mode store.Mode) (*Handler, *store.Store) {
	t.Helper()
	s := store.New(store.State{}, store.WithMode(mode), store.WithClock(func() time.Time { return fixedNow }))
	h := NewHandler(s, nil)
	h.now = func() time.Time { return fixedNow }
	return h, s
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func requireAPIError(t *testing.T, err error, code string) *APIError {
	t.Helper()
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %T", err)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestHandler_ClientCommands(t *testing.T) {
	ctx := context.Background()
	h, s := newTestHandler(t, store.ModePermissive)

	result, err := h.Handle(ctx, "add_client", mustJSON(t, client.CreateRequest{Name: "Acme", Industry: "Retail"}))
	require.NoError(t, err)
	added := result.(*client.Client)
	require.Equal(t, "Acme", added.Name)

	result, err = h.Handle(ctx, "list_clients", mustJSON(t, client.ListOptions{Industry: "Retail"}))
	require.NoError(t, err)
	require.Len(t, result.([]client.Client), 1)

	result, err = h.Handle(ctx, "update_client", json.RawMessage(`{"id":"`+added.ID+`","notes":"VIP"}`))
	require.NoError(t, err)
	require.Equal(t, "VIP", result.(*client.Client).Notes)

	result, err = h.Handle(ctx, "get_client", mustJSON(t, IDParams{ID: added.ID}))
	require.NoError(t, err)
	require.Equal(t, "VIP", result.(client.Client).Notes)

	result, err = h.Handle(ctx, "delete_client", mustJSON(t, IDParams{ID: added.ID}))
	require.NoError(t, err)
	require.Equal(t, AckResponse{Version: s.Version()}, result)
	require.Empty(t, s.Snapshot().Clients)
}

func TestHandler_CampaignAndTaskCommands(t *testing.T) {
	ctx := context.Background()
	h, s := newTestHandler(t, store.ModeStrict)

	result, err := h.Handle(ctx, "add_client", mustJSON(t, client.CreateRequest{Name: "Acme"}))
	require.NoError(t, err)
	clientID := result.(*client.Client).ID

	result, err = h.Handle(ctx, "add_campaign", mustJSON(t, campaign.CreateRequest{ClientID: clientID, Title: "Launch"}))
	require.NoError(t, err)
	campaignID := result.(*campaign.Campaign).ID

	got, err := s.GetClient(clientID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Campaigns)

	for _, title := range []string{"Copy", "Design"} {
		_, err = h.Handle(ctx, "add_task", mustJSON(t, task.CreateRequest{CampaignID: campaignID, Title: title}))
		require.NoError(t, err)
	}

	tasks := s.ListTasks(task.ListOptions{})
	require.Len(t, tasks, 2)

	result, err = h.Handle(ctx, "bulk_update_tasks", json.RawMessage(`{"ids":["`+tasks[0].ID+`","`+tasks[1].ID+`"],"changes":{"status":"done"}}`))
	require.NoError(t, err)
	require.Equal(t, 2, result.(BulkResponse).Affected)

	result, err = h.Handle(ctx, "task_stats", mustJSON(t, AtParams{At: fixedNow}))
	require.NoError(t, err)
	require.Equal(t, 2, result.(task.Stats).Done)

	result, err = h.Handle(ctx, "bulk_delete_tasks", mustJSON(t, BulkDeleteTasksParams{IDs: []string{tasks[0].ID}}))
	require.NoError(t, err)
	require.Equal(t, 1, result.(BulkResponse).Affected)
	require.Len(t, s.ListTasks(task.ListOptions{}), 1)
}

func TestHandler_ViewCommands(t *testing.T) {
	ctx := context.Background()
	h, s := newTestHandler(t, store.ModePermissive)

	_, err := h.Handle(ctx, "open_modal", json.RawMessage(`{"kind":"campaign"}`))
	require.NoError(t, err)
	require.Equal(t, view.ModalCampaign, s.Snapshot().Modal)

	_, err = h.Handle(ctx, "close_modal", nil)
	require.NoError(t, err)
	require.Equal(t, view.ModalNone, s.Snapshot().Modal)

	_, err = h.Handle(ctx, "set_current_view", mustJSON(t, SetCurrentViewParams{View: view.Calendar}))
	require.NoError(t, err)
	require.Equal(t, view.Calendar, s.Snapshot().CurrentView)

	result, err := h.Handle(ctx, "get_current_user", nil)
	require.NoError(t, err)
	require.Equal(t, CurrentUserResponse{}, result)

	_, err = h.Handle(ctx, "open_modal", json.RawMessage(`{"kind":"invoice"}`))
	requireAPIError(t, err, "INVALID_PARAMS")
}

func TestHandler_ErrorMapping(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t, store.ModeStrict)

	_, err := h.Handle(ctx, "get_client", mustJSON(t, IDParams{ID: "missing"}))
	apiErr := requireAPIError(t, err, "CLIENT_NOT_FOUND")
	require.Equal(t, -32004, apiErr.RPCCode())
	require.ErrorIs(t, err, client.ErrClientNotFound)

	_, err = h.Handle(ctx, "update_task", mustJSON(t, UpdateTaskParams{ID: "missing"}))
	requireAPIError(t, err, "TASK_NOT_FOUND")

	_, err = h.Handle(ctx, "add_client", mustJSON(t, client.CreateRequest{Name: "  "}))
	apiErr = requireAPIError(t, err, "INVALID_INPUT")
	require.Equal(t, -32602, apiErr.RPCCode())

	_, err = h.Handle(ctx, "set_user_status", json.RawMessage(`{"status":"away"}`))
	requireAPIError(t, err, "NO_ACTIVE_USER")

	_, err = h.Handle(ctx, "add_client", json.RawMessage(`{"name":`))
	requireAPIError(t, err, "INVALID_PARAMS")

	_, err = h.Handle(ctx, "create_project", nil)
	apiErr = requireAPIError(t, err, "METHOD_NOT_FOUND")
	require.Equal(t, -32601, apiErr.RPCCode())
}

func TestHandler_PermissiveUnknownIDs(t *testing.T) {
	ctx := context.Background()
	h, s := newTestHandler(t, store.ModePermissive)

	result, err := h.Handle(ctx, "update_campaign", mustJSON(t, UpdateCampaignParams{ID: "missing"}))
	require.NoError(t, err)
	require.Nil(t, result.(*campaign.Campaign))
	require.Zero(t, s.Version())
}

func TestHandler_CatalogIsDispatched(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t, store.ModePermissive)

	seen := map[string]bool{}
	for _, def := range buildToolCatalog() {
		require.False(t, seen[def.Name], "duplicate tool %s", def.Name)
		seen[def.Name] = true
		require.Equal(t, "object", def.InputSchema["type"], def.Name)

		_, err := h.Handle(ctx, def.Name, nil)
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			require.NotEqual(t, "METHOD_NOT_FOUND", apiErr.Code, def.Name)
		}
	}
}

func TestHandler_ObservesCalls(t *testing.T) {
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())
	h := NewHandler(store.New(store.State{}, store.WithMode(store.ModeStrict)), m)

	_, err := h.Handle(ctx, "list_clients", nil)
	require.NoError(t, err)
	_, err = h.Handle(ctx, "get_task", mustJSON(t, IDParams{ID: "missing"}))
	require.Error(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Calls.WithLabelValues("list_clients", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Calls.WithLabelValues("get_task", "error")))
}
