package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/ganot/creativehub/internal/domain/automation"
	"github.com/ganot/creativehub/internal/domain/notification"
)

// AddAutomationRule appends a rule with zeroed execution counters.
func (s *Store) AddAutomationRule(ctx context.Context, req automation.CreateRequest) (*automation.Rule, error) {
	if s.strict() {
		if err := automation.ValidateCreateInput(req); err != nil {
			return nil, err
		}
	}

	var added automation.Rule
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		added = req.Build(tx.newID(), tx.now)
		tx.AutomationRules = append(tx.AutomationRules, added.Clone())
		tx.notify(notification.TypeSuccess, "New automation rule created",
			fmt.Sprintf("The %s automation rule was created", added.Name))
		return tx.change(ChangeRuleAdded, added.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *Store) UpdateAutomationRule(ctx context.Context, id string, req automation.UpdateRequest) (*automation.Rule, error) {
	if s.strict() {
		if err := automation.ValidateUpdateInput(req); err != nil {
			return nil, err
		}
	}
	return s.editRule(ctx, id, ChangeRuleUpdated, req.Apply)
}

// ToggleAutomationRule pauses an active rule and activates any other.
func (s *Store) ToggleAutomationRule(ctx context.Context, id string) (*automation.Rule, error) {
	return s.editRule(ctx, id, ChangeRuleToggled, func(r *automation.Rule) {
		r.Status = r.Toggled()
	})
}

func (s *Store) editRule(ctx context.Context, id string, kind ChangeKind, edit func(*automation.Rule)) (*automation.Rule, error) {
	var updated *automation.Rule
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.AutomationRules, id, ruleID)
		if i < 0 {
			return Change{}, s.missing(automation.ErrRuleNotFound)
		}
		edit(&tx.AutomationRules[i])
		r := tx.AutomationRules[i].Clone()
		updated = &r
		return tx.change(kind, id), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) DeleteAutomationRule(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.AutomationRules, id, ruleID)
		if i < 0 {
			return Change{}, s.missing(automation.ErrRuleNotFound)
		}
		tx.AutomationRules = slices.Delete(tx.AutomationRules, i, i+1)
		return tx.change(ChangeRuleDeleted, id), nil
	})
}

func (s *Store) GetAutomationRule(id string) (automation.Rule, error) {
	var (
		out automation.Rule
		err error
	)
	s.read(func(st *State) {
		i := indexOf(st.AutomationRules, id, ruleID)
		if i < 0 {
			err = automation.ErrRuleNotFound
			return
		}
		out = st.AutomationRules[i].Clone()
	})
	return out, err
}

func (s *Store) ListAutomationRules(opts automation.ListOptions) []automation.Rule {
	out := []automation.Rule{}
	s.read(func(st *State) {
		for _, r := range st.AutomationRules {
			if opts.Matches(r) {
				out = append(out, r.Clone())
			}
		}
	})
	return out
}
