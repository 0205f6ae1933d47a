package store

import (
	"context"
	"log/slog"
)

// Saver persists committed state.
type Saver interface {
	Save(ctx context.Context, state State) error
}

// PersistTo returns a listener that saves every committed state. Save
// failures are logged and do not roll back the change. The save ignores
// cancellation of the mutating caller's context, since the change is already
// committed in memory.
func PersistTo(saver Saver, logger *slog.Logger) Listener {
	return func(ctx context.Context, change Change, state State) {
		if err := saver.Save(context.WithoutCancel(ctx), state); err != nil {
			logger.ErrorContext(ctx, "persisting state failed",
				"kind", change.Kind,
				"version", change.Version,
				"error", err)
		}
	}
}
