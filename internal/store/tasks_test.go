package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/priority"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/store"
	"github.com/stretchr/testify/require"
)

func TestAddTask(t *testing.T) {
	s := newTestStore(t, agencyState())

	added, err := s.AddTask(context.Background(), task.CreateRequest{
		CampaignID: "k1",
		Title:      "Banner set",
		Type:       task.TypeDesign,
		Status:     task.StatusTodo,
		Priority:   priority.Urgent,
		AssignedTo: "u2",
	})
	require.NoError(t, err)
	require.Empty(t, added.Comments)
	require.NotNil(t, added.Comments)

	stored, err := s.GetTask(added.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Comments)

	notes := s.ListNotifications(notification.ListOptions{})
	require.Len(t, notes, 1)
	require.Equal(t, notification.TypeInfo, notes[0].Type)
	require.Equal(t, "New task created", notes[0].Title)
	require.Equal(t, "Banner set was created and assigned to Zeynep", notes[0].Message)
}

func TestAddTask_UnknownAssignee(t *testing.T) {
	s := newTestStore(t, agencyState())

	_, err := s.AddTask(context.Background(), task.CreateRequest{CampaignID: "k1", Title: "Misc", AssignedTo: "ghost"})
	require.NoError(t, err)

	notes := s.ListNotifications(notification.ListOptions{})
	require.Equal(t, "Misc was created and assigned to the assignee", notes[0].Message)
}

func TestAddTask_StrictRequiresCampaign(t *testing.T) {
	s := newTestStore(t, agencyState(), store.WithMode(store.ModeStrict))

	_, err := s.AddTask(context.Background(), task.CreateRequest{CampaignID: "ghost", Title: "Misc"})
	require.ErrorIs(t, err, campaign.ErrCampaignNotFound)

	_, err = s.AddTask(context.Background(), task.CreateRequest{CampaignID: "k1"})
	require.ErrorIs(t, err, task.ErrInvalidInput)
}

func TestUpdateTask_StatusChangeNotifies(t *testing.T) {
	s := newTestStore(t, agencyState())

	var kinds []store.ChangeKind
	s.Subscribe(func(_ context.Context, c store.Change, _ store.State) { kinds = append(kinds, c.Kind) })

	updated, err := s.UpdateTask(context.Background(), "t2", task.UpdateRequest{Status: ptr(task.StatusDone)})
	require.NoError(t, err)
	require.Equal(t, task.StatusDone, updated.Status)
	require.Equal(t, fixedNow, updated.UpdatedAt)

	notes := s.ListNotifications(notification.ListOptions{})
	require.Len(t, notes, 1)
	require.Equal(t, notification.TypeSuccess, notes[0].Type)
	require.Equal(t, "Task status updated", notes[0].Title)
	require.Equal(t, `Launch copy was marked "completed"`, notes[0].Message)
	require.Equal(t, []store.ChangeKind{store.ChangeTaskStatusChanged}, kinds)

	_, err = s.UpdateTask(context.Background(), "t1", task.UpdateRequest{Status: ptr(task.StatusReview)})
	require.NoError(t, err)
	notes = s.ListNotifications(notification.ListOptions{})
	require.Equal(t, `Story templates was marked "review"`, notes[1].Message)
}

func TestUpdateTask_NoNotificationWithoutStatusChange(t *testing.T) {
	s := newTestStore(t, agencyState())

	_, err := s.UpdateTask(context.Background(), "t1", task.UpdateRequest{Status: ptr(task.StatusInProgress)})
	require.NoError(t, err)
	_, err = s.UpdateTask(context.Background(), "t1", task.UpdateRequest{Title: ptr("Story templates v2")})
	require.NoError(t, err)

	require.Empty(t, s.ListNotifications(notification.ListOptions{}))
	require.EqualValues(t, 2, s.Version())
}

func TestUpdateTask_UnknownPermissive(t *testing.T) {
	s := newTestStore(t, agencyState())

	got, err := s.UpdateTask(context.Background(), "nonexistent-id", task.UpdateRequest{Status: ptr(task.StatusDone)})
	require.NoError(t, err)
	require.Nil(t, got)

	snap := s.Snapshot()
	require.Len(t, snap.Tasks, 3)
	require.Empty(t, snap.Notifications)
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t, agencyState())

	require.NoError(t, s.DeleteTask(context.Background(), "t1"))
	_, err := s.GetTask("t1")
	require.ErrorIs(t, err, task.ErrTaskNotFound)

	require.NoError(t, s.DeleteTask(context.Background(), "ghost"))
	notes := s.ListNotifications(notification.ListOptions{})
	require.Len(t, notes, 2)
	require.Equal(t, "Task deleted", notes[1].Title)
}

func TestAddTaskComment(t *testing.T) {
	s := newTestStore(t, agencyState())

	comment, err := s.AddTaskComment(context.Background(), "t1", task.CommentRequest{Text: "Looks good", AuthorID: "u1"})
	require.NoError(t, err)
	require.Equal(t, "Looks good", comment.Text)
	require.Equal(t, fixedNow, comment.CreatedAt)

	got, err := s.GetTask("t1")
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	require.Equal(t, *comment, got.Comments[0])
	require.Equal(t, fixedNow, got.UpdatedAt)

	none, err := s.AddTaskComment(context.Background(), "ghost", task.CommentRequest{Text: "x"})
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestBulkUpdateTasks(t *testing.T) {
	s := newTestStore(t, agencyState())

	n, err := s.BulkUpdateTasks(context.Background(), []string{"t1", "t2", "ghost"}, task.UpdateRequest{
		Priority: ptr(priority.Urgent),
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	for _, id := range []string{"t1", "t2"} {
		got, err := s.GetTask(id)
		require.NoError(t, err)
		require.Equal(t, priority.Urgent, got.Priority)
		require.Equal(t, fixedNow, got.UpdatedAt)
	}
	require.Empty(t, s.ListNotifications(notification.ListOptions{}))
}

func TestBulkUpdateTasks_CountsRepeatedIDsOnce(t *testing.T) {
	s := newTestStore(t, agencyState())

	n, err := s.BulkUpdateTasks(context.Background(), []string{"t1", "t1", "t2", "t1"}, task.UpdateRequest{
		Status: ptr(task.StatusReview),
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestBulkUpdateTasks_StrictIsAllOrNothing(t *testing.T) {
	s := newTestStore(t, agencyState(), store.WithMode(store.ModeStrict))

	_, err := s.BulkUpdateTasks(context.Background(), []string{"t1", "ghost"}, task.UpdateRequest{
		Status: ptr(task.StatusDone),
	})
	require.ErrorIs(t, err, task.ErrTaskNotFound)

	got, err := s.GetTask("t1")
	require.NoError(t, err)
	require.Equal(t, task.StatusInProgress, got.Status)
}

func TestBulkDeleteTasks(t *testing.T) {
	s := newTestStore(t, agencyState())

	n, err := s.BulkDeleteTasks(context.Background(), []string{"t1", "t3", "ghost"})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	remaining := s.ListTasks(task.ListOptions{})
	require.Len(t, remaining, 1)
	require.Equal(t, "t2", remaining[0].ID)
	require.Empty(t, s.ListNotifications(notification.ListOptions{}))

	n, err = s.BulkDeleteTasks(context.Background(), []string{"ghost"})
	require.NoError(t, err)
	require.Zero(t, n)
	require.EqualValues(t, 1, s.Version())
}

func TestTaskStats(t *testing.T) {
	st := agencyState()
	st.Tasks = append(st.Tasks, task.Task{
		ID:      "t4",
		Status:  task.StatusTodo,
		DueDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	s := newTestStore(t, st)

	stats := s.TaskStats(fixedNow)
	require.Equal(t, 1, stats.Overdue)
	require.Equal(t, 4, stats.Total)
	require.Equal(t, stats.Total, stats.Todo+stats.InProgress+stats.Review+stats.Done)
}

func TestListTasks(t *testing.T) {
	s := newTestStore(t, agencyState())

	got := s.ListTasks(task.ListOptions{AssignedTo: "u2"})
	require.Len(t, got, 2)

	got = s.ListTasks(task.ListOptions{Query: "copy", Status: task.StatusTodo})
	require.Len(t, got, 1)
	require.Equal(t, "t2", got[0].ID)
}
