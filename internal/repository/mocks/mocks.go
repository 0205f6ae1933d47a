package mocks

import (
	"context"

	"github.com/ganot/creativehub/internal/repository"
	"github.com/ganot/creativehub/internal/store"
	"github.com/stretchr/testify/mock"
)

// SnapshotRepository is a mock for repository.SnapshotRepository.
type SnapshotRepository struct {
	mock.Mock
}

func (m *SnapshotRepository) Save(ctx context.Context, state store.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *SnapshotRepository) Load(ctx context.Context) (store.State, error) {
	args := m.Called(ctx)
	if st, ok := args.Get(0).(store.State); ok {
		return st, args.Error(1)
	}
	return store.State{}, args.Error(1)
}

func (m *SnapshotRepository) Info(ctx context.Context) (repository.SnapshotInfo, error) {
	args := m.Called(ctx)
	if info, ok := args.Get(0).(repository.SnapshotInfo); ok {
		return info, args.Error(1)
	}
	return repository.SnapshotInfo{}, args.Error(1)
}
