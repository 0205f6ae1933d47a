package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/team"
)

// AddTask appends a task with no comments and posts an info notification
// naming the assignee.
func (s *Store) AddTask(ctx context.Context, req task.CreateRequest) (*task.Task, error) {
	if s.strict() {
		if err := task.ValidateCreateInput(req); err != nil {
			return nil, err
		}
	}

	var added task.Task
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		if s.strict() && indexOf(tx.Campaigns, req.CampaignID, campaignID) < 0 {
			return Change{}, campaign.ErrCampaignNotFound
		}

		added = req.Build(tx.newID(), tx.now)
		tx.Tasks = append(tx.Tasks, added.Clone())

		assignee := "the assignee"
		if m, ok := team.FindMember(tx.TeamMembers, req.AssignedTo); ok {
			assignee = m.Name
		}
		tx.notify(notification.TypeInfo, "New task created",
			fmt.Sprintf("%s was created and assigned to %s", added.Title, assignee))
		return tx.change(ChangeTaskAdded, added.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// UpdateTask merges req into the task and refreshes UpdatedAt. A status
// change posts a success notification; an unknown id in permissive mode
// posts nothing.
func (s *Store) UpdateTask(ctx context.Context, id string, req task.UpdateRequest) (*task.Task, error) {
	if s.strict() {
		if err := task.ValidateUpdateInput(req); err != nil {
			return nil, err
		}
	}

	var updated *task.Task
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Tasks, id, taskID)
		if i < 0 {
			return Change{}, s.missing(task.ErrTaskNotFound)
		}

		t := &tx.Tasks[i]
		statusChanged := req.Status != nil && *req.Status != t.Status
		req.Apply(t)
		t.UpdatedAt = tx.now

		kind := ChangeTaskUpdated
		if statusChanged {
			kind = ChangeTaskStatusChanged
			tx.notify(notification.TypeSuccess, "Task status updated",
				fmt.Sprintf("%s was marked %q", t.Title, statusLabel(t.Status)))
		}
		c := t.Clone()
		updated = &c
		return tx.change(kind, id), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func statusLabel(status task.Status) string {
	if status == task.StatusDone {
		return "completed"
	}
	return string(status)
}

// DeleteTask removes the task. Permissive mode posts the warning even for an
// unknown id.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Tasks, id, taskID)
		if i < 0 && s.strict() {
			return Change{}, task.ErrTaskNotFound
		}
		if i >= 0 {
			tx.Tasks = slices.Delete(tx.Tasks, i, i+1)
		}
		tx.notify(notification.TypeWarning, "Task deleted", "The task was deleted successfully")
		return tx.change(ChangeTaskDeleted, id), nil
	})
}

// AddTaskComment appends a comment to the task and refreshes UpdatedAt.
func (s *Store) AddTaskComment(ctx context.Context, id string, req task.CommentRequest) (*task.Comment, error) {
	if s.strict() {
		if err := task.ValidateCommentInput(req); err != nil {
			return nil, err
		}
	}

	var added *task.Comment
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Tasks, id, taskID)
		if i < 0 {
			return Change{}, s.missing(task.ErrTaskNotFound)
		}
		comment := task.Comment{
			ID:        tx.newID(),
			Text:      req.Text,
			AuthorID:  req.AuthorID,
			CreatedAt: tx.now,
		}
		tx.Tasks[i].Comments = append(tx.Tasks[i].Comments, comment)
		tx.Tasks[i].UpdatedAt = tx.now
		added = &comment
		return tx.change(ChangeTaskCommented, id), nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// BulkUpdateTasks merges req into every listed task and returns how many
// were updated. Strict mode fails the whole batch on the first unknown id.
// No notification is posted.
func (s *Store) BulkUpdateTasks(ctx context.Context, ids []string, req task.UpdateRequest) (int, error) {
	if s.strict() {
		if err := task.ValidateUpdateInput(req); err != nil {
			return 0, err
		}
	}

	var n int
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		n = 0
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			i := indexOf(tx.Tasks, id, taskID)
			if i < 0 {
				if s.strict() {
					return Change{}, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
				}
				continue
			}
			req.Apply(&tx.Tasks[i])
			tx.Tasks[i].UpdatedAt = tx.now
			n++
		}
		if n == 0 {
			return Change{}, nil
		}
		return tx.change(ChangeTasksBulkUpdated, ""), nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// BulkDeleteTasks removes every listed task and returns how many were
// removed. No notification is posted.
func (s *Store) BulkDeleteTasks(ctx context.Context, ids []string) (int, error) {
	var n int
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		drop := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if s.strict() && indexOf(tx.Tasks, id, taskID) < 0 {
				return Change{}, fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
			}
			drop[id] = struct{}{}
		}
		before := len(tx.Tasks)
		tx.Tasks = slices.DeleteFunc(tx.Tasks, func(t task.Task) bool {
			_, ok := drop[t.ID]
			return ok
		})
		n = before - len(tx.Tasks)
		if n == 0 {
			return Change{}, nil
		}
		return tx.change(ChangeTasksBulkDeleted, ""), nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) GetTask(id string) (task.Task, error) {
	var (
		out task.Task
		err error
	)
	s.read(func(st *State) {
		i := indexOf(st.Tasks, id, taskID)
		if i < 0 {
			err = task.ErrTaskNotFound
			return
		}
		out = st.Tasks[i].Clone()
	})
	return out, err
}

func (s *Store) ListTasks(opts task.ListOptions) []task.Task {
	out := []task.Task{}
	s.read(func(st *State) {
		for _, t := range st.Tasks {
			if opts.Matches(t) {
				out = append(out, t.Clone())
			}
		}
	})
	return out
}
