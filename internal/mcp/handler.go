package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ganot/creativehub/internal/domain/automation"
	"github.com/ganot/creativehub/internal/domain/calendar"
	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/messaging"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/personal"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/metrics"
	"github.com/ganot/creativehub/internal/store"
)

// Handler dispatches MCP commands to the dashboard store.
type Handler struct {
	store   *store.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewHandler creates a new MCP handler. m may be nil.
func NewHandler(s *store.Store, m *metrics.Metrics) *Handler {
	return &Handler{store: s, metrics: m, now: time.Now}
}

// Handle dispatches one named operation. Domain errors come back as *APIError.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	start := time.Now()
	result, err := h.dispatch(ctx, method, params)
	if h.metrics != nil {
		h.metrics.ObserveCall(method, time.Since(start), err)
	}
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (h *Handler) dispatch(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	// Clients
	case "add_client":
		req, err := decode[client.CreateRequest](params)
		if err != nil {
			return nil, err
		}
		return h.store.AddClient(ctx, req)
	case "update_client":
		req, err := decode[UpdateClientParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.UpdateClient(ctx, req.ID, req.UpdateRequest)
	case "delete_client":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.DeleteClient(ctx, req.ID))
	case "get_client":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.GetClient(req.ID)
	case "list_clients":
		opts, err := decode[client.ListOptions](params)
		if err != nil {
			return nil, err
		}
		return h.store.ListClients(opts), nil
	case "client_stats":
		return h.store.ClientStats(), nil

	// Campaigns
	case "add_campaign":
		req, err := decode[campaign.CreateRequest](params)
		if err != nil {
			return nil, err
		}
		return h.store.AddCampaign(ctx, req)
	case "update_campaign":
		req, err := decode[UpdateCampaignParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.UpdateCampaign(ctx, req.ID, req.UpdateRequest)
	case "delete_campaign":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.DeleteCampaign(ctx, req.ID))
	case "get_campaign":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.GetCampaign(req.ID)
	case "list_campaigns":
		opts, err := decode[campaign.ListOptions](params)
		if err != nil {
			return nil, err
		}
		return h.store.ListCampaigns(opts), nil
	case "campaign_stats":
		return h.store.CampaignStats(), nil

	// Tasks
	case "add_task":
		req, err := decode[task.CreateRequest](params)
		if err != nil {
			return nil, err
		}
		return h.store.AddTask(ctx, req)
	case "update_task":
		req, err := decode[UpdateTaskParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.UpdateTask(ctx, req.ID, req.UpdateRequest)
	case "delete_task":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.DeleteTask(ctx, req.ID))
	case "get_task":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.GetTask(req.ID)
	case "list_tasks":
		opts, err := decode[task.ListOptions](params)
		if err != nil {
			return nil, err
		}
		return h.store.ListTasks(opts), nil
	case "add_task_comment":
		req, err := decode[AddTaskCommentParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.AddTaskComment(ctx, req.ID, req.CommentRequest)
	case "bulk_update_tasks":
		req, err := decode[BulkUpdateTasksParams](params)
		if err != nil {
			return nil, err
		}
		n, err := h.store.BulkUpdateTasks(ctx, req.IDs, req.Changes)
		if err != nil {
			return nil, err
		}
		return BulkResponse{Affected: n, Version: h.store.Version()}, nil
	case "bulk_delete_tasks":
		req, err := decode[BulkDeleteTasksParams](params)
		if err != nil {
			return nil, err
		}
		n, err := h.store.BulkDeleteTasks(ctx, req.IDs)
		if err != nil {
			return nil, err
		}
		return BulkResponse{Affected: n, Version: h.store.Version()}, nil
	case "task_stats":
		at, err := h.at(params)
		if err != nil {
			return nil, err
		}
		return h.store.TaskStats(at), nil

	// Personal tasks
	case "add_personal_task":
		req, err := decode[personal.CreateRequest](params)
		if err != nil {
			return nil, err
		}
		return h.store.AddPersonalTask(ctx, req)
	case "update_personal_task":
		req, err := decode[UpdatePersonalTaskParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.UpdatePersonalTask(ctx, req.ID, req.UpdateRequest)
	case "delete_personal_task":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.DeletePersonalTask(ctx, req.ID))
	case "get_personal_task":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.GetPersonalTask(req.ID)
	case "list_personal_tasks":
		opts, err := decode[personal.ListOptions](params)
		if err != nil {
			return nil, err
		}
		return h.store.ListPersonalTasks(opts), nil
	case "personal_task_stats":
		at, err := h.at(params)
		if err != nil {
			return nil, err
		}
		return h.store.PersonalTaskStats(at), nil

	// Automation
	case "add_automation_rule":
		req, err := decode[automation.CreateRequest](params)
		if err != nil {
			return nil, err
		}
		return h.store.AddAutomationRule(ctx, req)
	case "update_automation_rule":
		req, err := decode[UpdateAutomationRuleParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.UpdateAutomationRule(ctx, req.ID, req.UpdateRequest)
	case "toggle_automation_rule":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.ToggleAutomationRule(ctx, req.ID)
	case "delete_automation_rule":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.DeleteAutomationRule(ctx, req.ID))
	case "get_automation_rule":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.GetAutomationRule(req.ID)
	case "list_automation_rules":
		opts, err := decode[automation.ListOptions](params)
		if err != nil {
			return nil, err
		}
		return h.store.ListAutomationRules(opts), nil
	case "automation_stats":
		return h.store.AutomationStats(), nil

	// Calendar
	case "add_calendar_event":
		req, err := decode[calendar.CreateRequest](params)
		if err != nil {
			return nil, err
		}
		return h.store.AddCalendarEvent(ctx, req)
	case "update_calendar_event":
		req, err := decode[UpdateCalendarEventParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.UpdateCalendarEvent(ctx, req.ID, req.UpdateRequest)
	case "delete_calendar_event":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.DeleteCalendarEvent(ctx, req.ID))
	case "get_calendar_event":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.GetCalendarEvent(req.ID)
	case "list_calendar_events":
		opts, err := decode[calendar.ListOptions](params)
		if err != nil {
			return nil, err
		}
		return h.store.ListCalendarEvents(opts), nil

	// Messaging
	case "send_message":
		req, err := decode[messaging.SendRequest](params)
		if err != nil {
			return nil, err
		}
		return h.store.SendMessage(ctx, req)
	case "mark_message_as_read":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.MarkMessageAsRead(ctx, req.ID))
	case "list_messages":
		opts, err := decode[messaging.ListOptions](params)
		if err != nil {
			return nil, err
		}
		return h.store.ListMessages(opts), nil
	case "get_channel":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.store.GetChannel(req.ID)
	case "list_channels":
		return h.store.ListChannels(), nil

	// Notifications
	case "add_notification":
		req, err := decode[notification.CreateRequest](params)
		if err != nil {
			return nil, err
		}
		return h.store.AddNotification(ctx, req)
	case "mark_notification_as_read":
		req, err := decode[IDParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.MarkNotificationAsRead(ctx, req.ID))
	case "clear_all_notifications":
		return h.ack(h.store.ClearAllNotifications(ctx))
	case "list_notifications":
		opts, err := decode[notification.ListOptions](params)
		if err != nil {
			return nil, err
		}
		return h.store.ListNotifications(opts), nil

	// Team
	case "set_user":
		req, err := decode[SetUserParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.SetUser(ctx, req.User))
	case "set_team_members":
		req, err := decode[SetTeamMembersParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.SetTeamMembers(ctx, req.Members))
	case "set_user_status":
		req, err := decode[SetUserStatusParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.SetUserStatus(ctx, req.Status))
	case "get_current_user":
		user, ok := h.store.CurrentUser()
		if !ok {
			return CurrentUserResponse{}, nil
		}
		return CurrentUserResponse{SignedIn: true, User: &user}, nil
	case "list_team_members":
		return h.store.ListTeamMembers(), nil
	case "team_performance":
		return h.store.TeamPerformance(), nil

	// View
	case "set_current_view":
		req, err := decode[SetCurrentViewParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.SetCurrentView(ctx, req.View))
	case "set_search_term":
		req, err := decode[SetSearchTermParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.SetSearchTerm(ctx, req.Term))
	case "open_modal":
		req, err := decode[OpenModalParams](params)
		if err != nil {
			return nil, err
		}
		return h.ack(h.store.OpenModal(ctx, req.Kind))
	case "close_modal":
		return h.ack(h.store.CloseModal(ctx))

	// Orientation
	case "get_snapshot":
		return h.store.Snapshot(), nil
	case "get_overview":
		at, err := h.at(params)
		if err != nil {
			return nil, err
		}
		return h.store.Overview(at), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

func (h *Handler) ack(err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return AckResponse{Version: h.store.Version()}, nil
}

func (h *Handler) at(params json.RawMessage) (time.Time, error) {
	req, err := decode[AtParams](params)
	if err != nil {
		return time.Time{}, err
	}
	if req.At.IsZero() {
		return h.now(), nil
	}
	return req.At, nil
}

func decode[T any](params json.RawMessage) (T, error) {
	var out T
	if len(params) == 0 || string(params) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(params, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return out, nil
}
