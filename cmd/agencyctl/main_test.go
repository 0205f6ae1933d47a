package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/creativehub/internal/repository"
	"github.com/ganot/creativehub/internal/seed"
	"github.com/ganot/creativehub/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatsFromDefaultSeed(t *testing.T) {
	out, err := execute(t, "stats", "--json", "--at", "2024-01-20T09:00:00Z")
	require.NoError(t, err)

	var overview store.Overview
	require.NoError(t, json.Unmarshal([]byte(out), &overview))
	require.Equal(t, 2, overview.Clients.Total)
	require.Equal(t, 1, overview.Campaigns.Total)
	require.Len(t, overview.Team, 5)
	require.Equal(t, 1, overview.UnreadNotifications)
}

func TestStatsTable(t *testing.T) {
	out, err := execute(t, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "CLIENTS")
	require.Contains(t, out, "MEMBER")
}

func TestStatsRejectsBadTime(t *testing.T) {
	_, err := execute(t, "stats", "--at", "yesterday")
	require.ErrorContains(t, err, "invalid --at")
}

func TestSeedCheckWarnsOnly(t *testing.T) {
	out, err := execute(t, "seed", "check", "--json")
	require.NoError(t, err)

	var issues []seed.Issue
	require.NoError(t, json.Unmarshal([]byte(out), &issues))
	require.NotEmpty(t, issues)
	require.False(t, seed.HasErrors(issues))
}

func TestSeedCheckFailsOnErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
campaigns:
  - id: k1
    client_id: ghost
    title: Orphan
`), 0o644))

	out, err := execute(t, "seed", "check", "--seed", path)
	require.Error(t, err)
	var exitErr interface{ ExitCode() int }
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 1, exitErr.ExitCode())
	require.Contains(t, out, "ghost")
}

func TestSnapshotSaveAndInfo(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")

	_, err := execute(t, "snapshot", "info", "--db", dbPath)
	var exitErr interface{ ExitCode() int }
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.ExitCode())

	out, err := execute(t, "snapshot", "save", "--db", dbPath)
	require.NoError(t, err)
	require.Contains(t, out, "saved 2 clients")

	out, err = execute(t, "snapshot", "info", "--db", dbPath, "--json")
	require.NoError(t, err)
	var info repository.SnapshotInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, 2, info.Counts["clients"])

	out, err = execute(t, "stats", "--db", dbPath, "--json")
	require.NoError(t, err)
	var overview store.Overview
	require.NoError(t, json.Unmarshal([]byte(out), &overview))
	require.Equal(t, 2, overview.Clients.Total)
}
