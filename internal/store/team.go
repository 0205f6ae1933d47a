package store

import (
	"context"

	"github.com/ganot/creativehub/internal/domain/team"
)

// SetUser replaces the signed-in user. A nil user signs out.
func (s *Store) SetUser(ctx context.Context, user *team.User) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		if user == nil {
			tx.User = nil
			return tx.change(ChangeUserSet, ""), nil
		}
		u := user.Clone()
		tx.User = &u
		return tx.change(ChangeUserSet, u.ID), nil
	})
}

// SetTeamMembers replaces the roster.
func (s *Store) SetTeamMembers(ctx context.Context, members []team.User) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		tx.TeamMembers = cloneEach(members, team.User.Clone)
		if tx.TeamMembers == nil {
			tx.TeamMembers = []team.User{}
		}
		return tx.change(ChangeTeamSet, ""), nil
	})
}

// SetUserStatus changes the signed-in user's presence and mirrors it onto
// their roster entry.
func (s *Store) SetUserStatus(ctx context.Context, status team.Status) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		if tx.User == nil {
			return Change{}, s.missing(ErrNoActiveUser)
		}
		tx.User.Status = status
		tx.User.LastActive = tx.now
		if i := indexOf(tx.TeamMembers, tx.User.ID, memberID); i >= 0 {
			tx.TeamMembers[i].Status = status
			tx.TeamMembers[i].LastActive = tx.now
		}
		return tx.change(ChangeUserStatusChanged, tx.User.ID), nil
	})
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (team.User, bool) {
	var (
		out team.User
		ok  bool
	)
	s.read(func(st *State) {
		if st.User != nil {
			out, ok = st.User.Clone(), true
		}
	})
	return out, ok
}

func (s *Store) ListTeamMembers() []team.User {
	var out []team.User
	s.read(func(st *State) {
		out = cloneEach(st.TeamMembers, team.User.Clone)
	})
	if out == nil {
		out = []team.User{}
	}
	return out
}
