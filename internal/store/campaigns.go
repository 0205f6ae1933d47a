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

// AddCampaign appends a campaign and bumps the owning client's campaign
// counter. Strict mode requires the client to exist; permissive mode adds
// the campaign with no counter change.
func (s *Store) AddCampaign(ctx context.Context, req campaign.CreateRequest) (*campaign.Campaign, error) {
	if s.strict() {
		if err := campaign.ValidateCreateInput(req); err != nil {
			return nil, err
		}
	}

	var added campaign.Campaign
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		owner := indexOf(tx.Clients, req.ClientID, clientID)
		if owner < 0 && s.strict() {
			return Change{}, client.ErrClientNotFound
		}

		added = req.Build(tx.newID(), tx.now)
		tx.Campaigns = append(tx.Campaigns, added.Clone())
		if owner >= 0 {
			tx.Clients[owner].Campaigns++
		}

		tx.notify(notification.TypeSuccess, "New campaign created",
			fmt.Sprintf("The %s campaign was created successfully", added.Title))
		return tx.change(ChangeCampaignAdded, added.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// UpdateCampaign merges req into the campaign and refreshes UpdatedAt.
func (s *Store) UpdateCampaign(ctx context.Context, id string, req campaign.UpdateRequest) (*campaign.Campaign, error) {
	if s.strict() {
		if err := campaign.ValidateUpdateInput(req); err != nil {
			return nil, err
		}
	}

	var updated *campaign.Campaign
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Campaigns, id, campaignID)
		if i < 0 {
			return Change{}, s.missing(campaign.ErrCampaignNotFound)
		}
		req.Apply(&tx.Campaigns[i])
		tx.Campaigns[i].UpdatedAt = tx.now
		c := tx.Campaigns[i].Clone()
		updated = &c
		return tx.change(ChangeCampaignUpdated, id), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCampaign removes the campaign and its tasks and decrements the
// owning client's counter, never below zero.
func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Campaigns, id, campaignID)
		if i < 0 && s.strict() {
			return Change{}, campaign.ErrCampaignNotFound
		}
		if i >= 0 {
			if owner := indexOf(tx.Clients, tx.Campaigns[i].ClientID, clientID); owner >= 0 {
				tx.Clients[owner].Campaigns = max(0, tx.Clients[owner].Campaigns-1)
			}
			tx.Campaigns = slices.Delete(tx.Campaigns, i, i+1)
		}
		tx.Tasks = slices.DeleteFunc(tx.Tasks, func(t task.Task) bool {
			return t.CampaignID == id
		})

		tx.notify(notification.TypeWarning, "Campaign deleted",
			"The campaign and its tasks were deleted successfully")
		return tx.change(ChangeCampaignDeleted, id), nil
	})
}

func (s *Store) GetCampaign(id string) (campaign.Campaign, error) {
	var (
		out campaign.Campaign
		err error
	)
	s.read(func(st *State) {
		i := indexOf(st.Campaigns, id, campaignID)
		if i < 0 {
			err = campaign.ErrCampaignNotFound
			return
		}
		out = st.Campaigns[i].Clone()
	})
	return out, err
}

func (s *Store) ListCampaigns(opts campaign.ListOptions) []campaign.Campaign {
	out := []campaign.Campaign{}
	s.read(func(st *State) {
		for _, c := range st.Campaigns {
			if opts.Matches(c) {
				out = append(out, c.Clone())
			}
		}
	})
	return out
}
