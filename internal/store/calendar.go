package store

import (
	"context"
	"slices"

	"github.com/ganot/creativehub/internal/domain/calendar"
)

func (s *Store) AddCalendarEvent(ctx context.Context, req calendar.CreateRequest) (*calendar.Event, error) {
	if s.strict() {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	var added calendar.Event
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		added = req.Build(tx.newID())
		tx.CalendarEvents = append(tx.CalendarEvents, added.Clone())
		return tx.change(ChangeEventAdded, added.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *Store) UpdateCalendarEvent(ctx context.Context, id string, req calendar.UpdateRequest) (*calendar.Event, error) {
	if s.strict() {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	var updated *calendar.Event
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.CalendarEvents, id, eventID)
		if i < 0 {
			return Change{}, s.missing(calendar.ErrEventNotFound)
		}
		req.Apply(&tx.CalendarEvents[i])
		e := tx.CalendarEvents[i].Clone()
		updated = &e
		return tx.change(ChangeEventUpdated, id), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) DeleteCalendarEvent(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.CalendarEvents, id, eventID)
		if i < 0 {
			return Change{}, s.missing(calendar.ErrEventNotFound)
		}
		tx.CalendarEvents = slices.Delete(tx.CalendarEvents, i, i+1)
		return tx.change(ChangeEventDeleted, id), nil
	})
}

func (s *Store) GetCalendarEvent(id string) (calendar.Event, error) {
	var (
		out calendar.Event
		err error
	)
	s.read(func(st *State) {
		i := indexOf(st.CalendarEvents, id, eventID)
		if i < 0 {
			err = calendar.ErrEventNotFound
			return
		}
		out = st.CalendarEvents[i].Clone()
	})
	return out, err
}

// ListCalendarEvents returns matching events in insertion order.
func (s *Store) ListCalendarEvents(opts calendar.ListOptions) []calendar.Event {
	out := []calendar.Event{}
	s.read(func(st *State) {
		for _, e := range st.CalendarEvents {
			if opts.Matches(e) {
				out = append(out, e.Clone())
			}
		}
	})
	return out
}
