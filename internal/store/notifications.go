package store

import (
	"context"

	"github.com/ganot/creativehub/internal/domain/notification"
)

// AddNotification puts an explicit notification at the head of the feed.
// Side-effect notifications from other mutations go to the tail.
func (s *Store) AddNotification(ctx context.Context, req notification.CreateRequest) (*notification.Notification, error) {
	var added notification.Notification
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		added = req.Build(tx.newID(), tx.now)
		tx.Notifications = append([]notification.Notification{added}, tx.Notifications...)
		return tx.change(ChangeNotificationAdded, added.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *Store) MarkNotificationAsRead(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Notifications, id, notificationID)
		if i < 0 {
			return Change{}, s.missing(notification.ErrNotificationNotFound)
		}
		tx.Notifications[i].Read = true
		return tx.change(ChangeNotificationRead, id), nil
	})
}

// ClearAllNotifications empties the feed.
func (s *Store) ClearAllNotifications(ctx context.Context) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		tx.Notifications = []notification.Notification{}
		return tx.change(ChangeNotificationsClear, ""), nil
	})
}

func (s *Store) ListNotifications(opts notification.ListOptions) []notification.Notification {
	out := []notification.Notification{}
	s.read(func(st *State) {
		for _, n := range st.Notifications {
			if opts.Matches(n) {
				out = append(out, n)
			}
		}
	})
	return out
}
