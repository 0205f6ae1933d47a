package store

import (
	"context"
	"fmt"

	"github.com/ganot/creativehub/internal/domain/view"
)

func (s *Store) SetCurrentView(ctx context.Context, v view.View) error {
	if s.strict() && !v.Valid() {
		return fmt.Errorf("%w: %q", view.ErrUnknownView, v)
	}
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		tx.CurrentView = v
		return tx.change(ChangeViewChanged, string(v)), nil
	})
}

func (s *Store) SetSearchTerm(ctx context.Context, term string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		tx.SearchTerm = term
		return tx.change(ChangeSearchChanged, ""), nil
	})
}

// OpenModal shows the create form for kind. Opening ModalNone closes it.
func (s *Store) OpenModal(ctx context.Context, kind view.ModalKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", view.ErrUnknownModal, int(kind))
	}
	if !kind.Open() {
		return s.CloseModal(ctx)
	}
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		tx.Modal = kind
		return tx.change(ChangeModalOpened, kind.String()), nil
	})
}

func (s *Store) CloseModal(ctx context.Context) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		tx.Modal = view.ModalNone
		return tx.change(ChangeModalClosed, ""), nil
	})
}
