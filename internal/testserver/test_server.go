// Package testserver runs the full HTTP stack against an in-memory database.
package testserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/ganot/creativehub/internal/mcp"
	"github.com/ganot/creativehub/internal/metrics"
	"github.com/ganot/creativehub/internal/seed"
	"github.com/ganot/creativehub/internal/sqlite"
	"github.com/ganot/creativehub/internal/store"
	"github.com/ganot/creativehub/internal/transport"
)

// Now is the clock every test server runs on.
var Now = time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

type TestServer struct {
	Server    *httptest.Server
	DB        *sqlite.DB
	Store     *store.Store
	Snapshots *sqlite.SnapshotRepository
	Registry  *prometheus.Registry
	Token     string
}

// New starts a server seeded with the default seed. Mutations are persisted
// to the returned DB.
func New(t *testing.T, token string, mode store.Mode) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	logger := slog.New(slog.DiscardHandler)
	snapshots := sqlite.NewSnapshotRepository(db)
	initial, err := seed.Restore(context.Background(), snapshots, "", Now, logger)
	require.NoError(t, err)

	s := store.New(initial,
		store.WithMode(mode),
		store.WithClock(func() time.Time { return Now }),
		store.WithLogger(logger))

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.SetState(s.Snapshot())
	s.Subscribe(m.Observe)
	s.Subscribe(store.PersistTo(snapshots, logger))

	handler := mcp.NewHandler(s, m)
	opts := transport.Options{
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:  logger,
	}
	if token != "" {
		opts.Auth = transport.AuthMiddleware(token)
	}
	server := httptest.NewServer(transport.NewServer(handler, opts))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:    server,
		DB:        db,
		Store:     s,
		Snapshots: snapshots,
		Registry:  reg,
		Token:     token,
	}
}
