package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/creativehub/internal/domain/automation"
	"github.com/ganot/creativehub/internal/domain/calendar"
	"github.com/ganot/creativehub/internal/domain/messaging"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/personal"
	"github.com/ganot/creativehub/internal/domain/priority"
	"github.com/ganot/creativehub/internal/store"
	"github.com/stretchr/testify/require"
)

func TestPersonalTaskCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, store.State{})

	added, err := s.AddPersonalTask(ctx, personal.CreateRequest{
		Title:    "Weekly report",
		Status:   personal.StatusTodo,
		Priority: priority.High,
	})
	require.NoError(t, err)
	require.Equal(t, fixedNow, added.CreatedAt)

	updated, err := s.UpdatePersonalTask(ctx, added.ID, personal.UpdateRequest{Status: ptr(personal.StatusDone)})
	require.NoError(t, err)
	require.Equal(t, personal.StatusDone, updated.Status)

	require.Len(t, s.ListPersonalTasks(personal.ListOptions{Status: personal.StatusDone}), 1)
	require.NoError(t, s.DeletePersonalTask(ctx, added.ID))
	_, err = s.GetPersonalTask(added.ID)
	require.ErrorIs(t, err, personal.ErrTaskNotFound)

	require.Empty(t, s.ListNotifications(notification.ListOptions{}))
}

func TestPersonalTask_Strict(t *testing.T) {
	s := newTestStore(t, store.State{}, store.WithMode(store.ModeStrict))

	require.ErrorIs(t, s.DeletePersonalTask(context.Background(), "ghost"), personal.ErrTaskNotFound)
	_, err := s.AddPersonalTask(context.Background(), personal.CreateRequest{})
	require.ErrorIs(t, err, personal.ErrInvalidInput)
}

func TestAddAutomationRule(t *testing.T) {
	s := newTestStore(t, store.State{})

	rule, err := s.AddAutomationRule(context.Background(), automation.CreateRequest{
		Name:    "Auto reply",
		Trigger: automation.Trigger{Type: automation.TriggerMention, Condition: "brand mention"},
		Action:  automation.Action{Type: automation.ActionReply, Details: "thank you"},
		Status:  automation.StatusDraft,
	})
	require.NoError(t, err)
	require.Zero(t, rule.Executions)
	require.Zero(t, rule.SuccessRate)

	notes := s.ListNotifications(notification.ListOptions{})
	require.Len(t, notes, 1)
	require.Equal(t, "New automation rule created", notes[0].Title)
}

func TestToggleAutomationRule(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, store.State{
		AutomationRules: []automation.Rule{
			{ID: "r1", Status: automation.StatusActive},
			{ID: "r2", Status: automation.StatusDraft},
		},
	})

	r, err := s.ToggleAutomationRule(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, automation.StatusPaused, r.Status)

	r, err = s.ToggleAutomationRule(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, automation.StatusActive, r.Status)

	r, err = s.ToggleAutomationRule(ctx, "r2")
	require.NoError(t, err)
	require.Equal(t, automation.StatusActive, r.Status)

	r, err = s.ToggleAutomationRule(ctx, "ghost")
	require.NoError(t, err)
	require.Nil(t, r)
}

func TestUpdateAndDeleteAutomationRule(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, store.State{
		AutomationRules: []automation.Rule{{ID: "r1", Name: "Old", Executions: 4, SuccessRate: 80}},
	})

	r, err := s.UpdateAutomationRule(ctx, "r1", automation.UpdateRequest{Name: ptr("New")})
	require.NoError(t, err)
	require.Equal(t, "New", r.Name)
	require.Equal(t, 4, r.Executions)

	require.NoError(t, s.DeleteAutomationRule(ctx, "r1"))
	_, err = s.GetAutomationRule("r1")
	require.ErrorIs(t, err, automation.ErrRuleNotFound)
}

func TestCalendarEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, store.State{})
	day := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

	e, err := s.AddCalendarEvent(ctx, calendar.CreateRequest{
		Title:    "Launch post",
		Date:     day.Add(14 * time.Hour),
		Time:     "14:00",
		Type:     calendar.TypePost,
		Platform: "Instagram",
		ClientID: "c1",
		Status:   calendar.StatusScheduled,
		Content:  calendar.Content{Text: "Launching today", Hashtags: []string{"#launch"}},
	})
	require.NoError(t, err)

	require.Len(t, s.ListCalendarEvents(calendar.ListOptions{Day: day}), 1)
	require.Empty(t, s.ListCalendarEvents(calendar.ListOptions{Day: day.AddDate(0, 0, 1)}))

	updated, err := s.UpdateCalendarEvent(ctx, e.ID, calendar.UpdateRequest{Status: ptr(calendar.StatusPublished)})
	require.NoError(t, err)
	require.Equal(t, calendar.StatusPublished, updated.Status)
	require.Equal(t, []string{"#launch"}, updated.Content.Hashtags)

	require.NoError(t, s.DeleteCalendarEvent(ctx, e.ID))
	_, err = s.GetCalendarEvent(e.ID)
	require.ErrorIs(t, err, calendar.ErrEventNotFound)
	require.Empty(t, s.ListNotifications(notification.ListOptions{}))
}

func TestSendMessageUpdatesChannel(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, store.State{
		Channels: []messaging.Channel{{ID: "general", Name: "General", Members: []string{"u1", "u2"}}},
	})

	msg, err := s.SendMessage(ctx, messaging.SendRequest{Text: "Morning all", SenderID: "u1", ChannelID: "general"})
	require.NoError(t, err)
	require.Equal(t, messaging.TypeChannel, msg.Type)
	require.Equal(t, fixedNow, msg.Timestamp)

	ch, err := s.GetChannel("general")
	require.NoError(t, err)
	require.NotNil(t, ch.LastMessage)
	require.Equal(t, *msg, *ch.LastMessage)

	direct, err := s.SendMessage(ctx, messaging.SendRequest{Text: "hi", SenderID: "u1", ReceiverID: "u2"})
	require.NoError(t, err)
	require.Equal(t, messaging.TypeDirect, direct.Type)

	ch, _ = s.GetChannel("general")
	require.Equal(t, msg.ID, ch.LastMessage.ID)

	require.Len(t, s.ListMessages(messaging.ListOptions{ChannelID: "general"}), 1)
	require.Len(t, s.ListMessages(messaging.ListOptions{Between: [2]string{"u2", "u1"}}), 1)

	require.NoError(t, s.MarkMessageAsRead(ctx, direct.ID))
	require.Len(t, s.ListMessages(messaging.ListOptions{UnreadOnly: true}), 1)
	require.Empty(t, s.ListNotifications(notification.ListOptions{}))
}

func TestSendMessage_StrictUnknownChannel(t *testing.T) {
	s := newTestStore(t, store.State{}, store.WithMode(store.ModeStrict))

	_, err := s.SendMessage(context.Background(), messaging.SendRequest{Text: "hi", ChannelID: "ghost"})
	require.ErrorIs(t, err, messaging.ErrChannelNotFound)
	require.Empty(t, s.ListMessages(messaging.ListOptions{}))
}

func TestNotificationFeed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, agencyState())

	require.NoError(t, s.DeleteTask(ctx, "t1"))
	explicit, err := s.AddNotification(ctx, notification.CreateRequest{
		Title:   "New task assigned",
		Message: "You have a new design task",
		Type:    notification.TypeInfo,
	})
	require.NoError(t, err)
	require.NoError(t, s.DeleteTask(ctx, "t2"))

	feed := s.ListNotifications(notification.ListOptions{})
	require.Len(t, feed, 3)
	require.Equal(t, explicit.ID, feed[0].ID, "explicit notifications go first")
	require.Equal(t, "Task deleted", feed[1].Title)
	require.Equal(t, "Task deleted", feed[2].Title)
	require.Equal(t, 3, s.UnreadNotifications())

	require.NoError(t, s.MarkNotificationAsRead(ctx, explicit.ID))
	require.Equal(t, 2, s.UnreadNotifications())
	require.Len(t, s.ListNotifications(notification.ListOptions{UnreadOnly: true}), 2)

	require.NoError(t, s.ClearAllNotifications(ctx))
	require.Empty(t, s.ListNotifications(notification.ListOptions{}))
	require.Zero(t, s.UnreadNotifications())
}
