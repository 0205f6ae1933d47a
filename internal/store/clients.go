package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/task"
)

// AddClient appends a new client and posts a success notification.
func (s *Store) AddClient(ctx context.Context, req client.CreateRequest) (*client.Client, error) {
	if s.strict() {
		if err := client.ValidateCreateInput(req); err != nil {
			return nil, err
		}
	}

	var added client.Client
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		added = req.Build(tx.newID(), tx.now)
		tx.Clients = append(tx.Clients, added.Clone())
		tx.notify(notification.TypeSuccess, "New client added",
			fmt.Sprintf("%s was added successfully", added.Name))
		return tx.change(ChangeClientAdded, added.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// UpdateClient merges req into the client with the given id.
func (s *Store) UpdateClient(ctx context.Context, id string, req client.UpdateRequest) (*client.Client, error) {
	if s.strict() {
		if err := client.ValidateUpdateInput(req); err != nil {
			return nil, err
		}
	}

	var updated *client.Client
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Clients, id, clientID)
		if i < 0 {
			return Change{}, s.missing(client.ErrClientNotFound)
		}
		req.Apply(&tx.Clients[i])
		c := tx.Clients[i].Clone()
		updated = &c
		return tx.change(ChangeClientUpdated, id), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteClient removes the client, every campaign it owns and every task of
// those campaigns. In permissive mode an unknown id still removes orphaned
// campaigns pointing at it and posts the notification.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Clients, id, clientID)
		if i < 0 && s.strict() {
			return Change{}, client.ErrClientNotFound
		}
		if i >= 0 {
			tx.Clients = slices.Delete(tx.Clients, i, i+1)
		}

		removed := make(map[string]struct{})
		tx.Campaigns = slices.DeleteFunc(tx.Campaigns, func(c campaign.Campaign) bool {
			if c.ClientID != id {
				return false
			}
			removed[c.ID] = struct{}{}
			return true
		})
		tx.Tasks = slices.DeleteFunc(tx.Tasks, func(t task.Task) bool {
			_, ok := removed[t.CampaignID]
			return ok
		})

		tx.notify(notification.TypeWarning, "Client deleted",
			"The client and its campaigns were deleted successfully")
		return tx.change(ChangeClientDeleted, id), nil
	})
}

// GetClient returns the client with the given id.
func (s *Store) GetClient(id string) (client.Client, error) {
	var (
		out client.Client
		err error
	)
	s.read(func(st *State) {
		i := indexOf(st.Clients, id, clientID)
		if i < 0 {
			err = client.ErrClientNotFound
			return
		}
		out = st.Clients[i].Clone()
	})
	return out, err
}

// ListClients returns the clients matching opts in insertion order.
func (s *Store) ListClients(opts client.ListOptions) []client.Client {
	out := []client.Client{}
	s.read(func(st *State) {
		for _, c := range st.Clients {
			if opts.Matches(c) {
				out = append(out, c.Clone())
			}
		}
	})
	return out
}
