package store

import (
	"context"
	"slices"

	"github.com/ganot/creativehub/internal/domain/personal"
)

func (s *Store) AddPersonalTask(ctx context.Context, req personal.CreateRequest) (*personal.Task, error) {
	if s.strict() {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	var added personal.Task
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		added = req.Build(tx.newID(), tx.now)
		tx.PersonalTasks = append(tx.PersonalTasks, added.Clone())
		return tx.change(ChangePersonalTaskAdded, added.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *Store) UpdatePersonalTask(ctx context.Context, id string, req personal.UpdateRequest) (*personal.Task, error) {
	if s.strict() {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	var updated *personal.Task
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.PersonalTasks, id, personalTaskID)
		if i < 0 {
			return Change{}, s.missing(personal.ErrTaskNotFound)
		}
		req.Apply(&tx.PersonalTasks[i])
		t := tx.PersonalTasks[i].Clone()
		updated = &t
		return tx.change(ChangePersonalTaskUpdated, id), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) DeletePersonalTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.PersonalTasks, id, personalTaskID)
		if i < 0 {
			return Change{}, s.missing(personal.ErrTaskNotFound)
		}
		tx.PersonalTasks = slices.Delete(tx.PersonalTasks, i, i+1)
		return tx.change(ChangePersonalTaskDeleted, id), nil
	})
}

func (s *Store) GetPersonalTask(id string) (personal.Task, error) {
	var (
		out personal.Task
		err error
	)
	s.read(func(st *State) {
		i := indexOf(st.PersonalTasks, id, personalTaskID)
		if i < 0 {
			err = personal.ErrTaskNotFound
			return
		}
		out = st.PersonalTasks[i].Clone()
	})
	return out, err
}

func (s *Store) ListPersonalTasks(opts personal.ListOptions) []personal.Task {
	out := []personal.Task{}
	s.read(func(st *State) {
		for _, t := range st.PersonalTasks {
			if opts.Matches(t) {
				out = append(out, t.Clone())
			}
		}
	})
	return out
}
