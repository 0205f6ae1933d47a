package repository

import (
	"context"
	"time"

	"github.com/ganot/creativehub/internal/store"
)

// SnapshotRepository persists the whole store state.
type SnapshotRepository interface {
	Save(ctx context.Context, state store.State) error
	Load(ctx context.Context) (store.State, error)
	Info(ctx context.Context) (SnapshotInfo, error)
}

// SnapshotInfo describes the most recently saved snapshot
type SnapshotInfo struct {
	Version int64          `json:"version"`
	SavedAt time.Time      `json:"saved_at"`
	Counts  map[string]int `json:"counts"`
}
