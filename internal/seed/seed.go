// Package seed loads the initial dashboard state from YAML and restores a
// persisted snapshot at boot.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/view"
	"github.com/ganot/creativehub/internal/repository"
	"github.com/ganot/creativehub/internal/store"
)

//go:embed default.yaml
var defaultSeed []byte

// Default returns the built-in seed state.
func Default(now time.Time) (store.State, error) {
	return Parse(defaultSeed, now)
}

// Load reads a seed file. An empty path loads the built-in seed.
func Load(path string, now time.Time) (store.State, error) {
	if path == "" {
		return Default(now)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return store.State{}, fmt.Errorf("reading seed file: %w", err)
	}

	st, err := Parse(data, now)
	if err != nil {
		return store.State{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return st, nil
}

// Parse decodes seed YAML. Missing "live" timestamps (last activity,
// update and creation times the seed leaves out) are set to now, and tasks
// without comments get an empty comment list.
func Parse(data []byte, now time.Time) (store.State, error) {
	var st store.State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return store.State{}, fmt.Errorf("parsing seed: %w", err)
	}

	st.Version = 0
	if st.CurrentView == "" {
		st.CurrentView = view.Dashboard
	}
	fillTimes(&st, now)
	return st, nil
}

func fillTimes(st *store.State, now time.Time) {
	fill := func(t *time.Time) {
		if t.IsZero() {
			*t = now
		}
	}

	if st.User != nil {
		fill(&st.User.LastActive)
	}
	for i := range st.TeamMembers {
		fill(&st.TeamMembers[i].LastActive)
	}
	for i := range st.Campaigns {
		fill(&st.Campaigns[i].UpdatedAt)
	}
	for i := range st.Tasks {
		fill(&st.Tasks[i].UpdatedAt)
		if st.Tasks[i].Comments == nil {
			st.Tasks[i].Comments = []task.Comment{}
		}
	}
	for i := range st.PersonalTasks {
		fill(&st.PersonalTasks[i].CreatedAt)
	}
	for i := range st.Notifications {
		fill(&st.Notifications[i].CreatedAt)
	}
}

// Snapshots loads a persisted state.
type Snapshots interface {
	Load(ctx context.Context) (store.State, error)
}

// Restore returns the persisted state when there is one and the seed from
// seedPath otherwise. A nil snapshots source always uses the seed.
func Restore(ctx context.Context, snapshots Snapshots, seedPath string, now time.Time, logger *slog.Logger) (store.State, error) {
	if snapshots != nil {
		st, err := snapshots.Load(ctx)
		switch {
		case err == nil:
			logger.InfoContext(ctx, "restored persisted snapshot", "version", st.Version)
			return st, nil
		case errors.Is(err, repository.ErrNotFound):
			logger.InfoContext(ctx, "no persisted snapshot, using seed")
		default:
			return store.State{}, fmt.Errorf("loading snapshot: %w", err)
		}
	}

	st, err := Load(seedPath, now)
	if err != nil {
		return store.State{}, err
	}
	logger.InfoContext(ctx, "loaded seed",
		"path", seedPath,
		"clients", len(st.Clients),
		"campaigns", len(st.Campaigns),
		"tasks", len(st.Tasks))
	return st, nil
}
