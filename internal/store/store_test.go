package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestStore(t, agencyState())

	snap := s.Snapshot()
	snap.Clients[0].Name = "changed"
	snap.Tasks = snap.Tasks[:0]

	c, err := s.GetClient("c1")
	require.NoError(t, err)
	require.Equal(t, "TechnoMax", c.Name)
	require.Len(t, s.Snapshot().Tasks, 3)
}

func TestNewCopiesInitialState(t *testing.T) {
	initial := agencyState()
	s := newTestStore(t, initial)

	initial.Clients[0].Name = "changed"

	c, err := s.GetClient("c1")
	require.NoError(t, err)
	require.Equal(t, "TechnoMax", c.Name)
}

func TestMutationsBumpVersion(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, agencyState())
	require.EqualValues(t, 0, s.Version())

	_, err := s.AddClient(ctx, client.CreateRequest{Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, s.SetSearchTerm(ctx, "acme"))

	require.EqualValues(t, 2, s.Version())
	require.EqualValues(t, 2, s.Snapshot().Version)
}

func TestSubscribeReceivesChangesInOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, agencyState())

	var got []store.Change
	cancel := s.Subscribe(func(_ context.Context, change store.Change, state store.State) {
		require.Equal(t, change.Version, state.Version)
		got = append(got, change)
	})

	added, err := s.AddClient(ctx, client.CreateRequest{Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteTask(ctx, "t1"))

	require.Len(t, got, 2)
	require.Equal(t, store.ChangeClientAdded, got[0].Kind)
	require.Equal(t, added.ID, got[0].EntityID)
	require.EqualValues(t, 1, got[0].Version)
	require.Equal(t, fixedNow, got[0].At)
	require.Equal(t, store.ChangeTaskDeleted, got[1].Kind)
	require.EqualValues(t, 2, got[1].Version)

	cancel()
	cancel()
	require.NoError(t, s.SetSearchTerm(ctx, "x"))
	require.Len(t, got, 2)
}

func TestListenersRunInSubscriptionOrder(t *testing.T) {
	s := newTestStore(t, agencyState())

	var order []string
	s.Subscribe(func(context.Context, store.Change, store.State) { order = append(order, "first") })
	s.Subscribe(func(context.Context, store.Change, store.State) { order = append(order, "second") })

	require.NoError(t, s.SetSearchTerm(context.Background(), "q"))
	require.Equal(t, []string{"first", "second"}, order)
}

func TestListenerMayReadSnapshot(t *testing.T) {
	s := newTestStore(t, agencyState())

	var seen int
	s.Subscribe(func(context.Context, store.Change, store.State) {
		seen = len(s.Snapshot().Tasks)
	})

	require.NoError(t, s.DeleteTask(context.Background(), "t1"))
	require.Equal(t, 2, seen)
}

func TestListenerReadsWhileAnotherWriterWaits(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, agencyState())

	started := make(chan struct{})
	release := make(chan struct{})
	var first sync.Once
	var terms []string
	s.Subscribe(func(context.Context, store.Change, store.State) {
		first.Do(func() {
			close(started)
			<-release
		})
		terms = append(terms, s.Snapshot().SearchTerm)
	})

	done := make(chan struct{}, 2)
	go func() {
		assert.NoError(t, s.SetSearchTerm(ctx, "first"))
		done <- struct{}{}
	}()
	<-started

	go func() {
		assert.NoError(t, s.SetSearchTerm(ctx, "second"))
		done <- struct{}{}
	}()
	time.Sleep(20 * time.Millisecond)

	read := make(chan int, 1)
	go func() { read <- s.ClientStats().Total }()
	select {
	case total := <-read:
		require.Equal(t, 2, total)
	case <-time.After(2 * time.Second):
		t.Fatal("reader blocked behind a running listener")
	}

	close(release)
	for range 2 {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("mutations did not complete")
		}
	}
	require.Equal(t, []string{"first", "second"}, terms)
	require.EqualValues(t, 2, s.Version())
}

func TestPermissiveNoOpDoesNotPublish(t *testing.T) {
	s := newTestStore(t, agencyState())

	var calls int
	s.Subscribe(func(context.Context, store.Change, store.State) { calls++ })

	got, err := s.UpdateClient(context.Background(), "missing", client.UpdateRequest{Name: ptr("x")})
	require.NoError(t, err)
	require.Nil(t, got)
	require.Zero(t, calls)
	require.EqualValues(t, 0, s.Version())
}

func TestStrictFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, agencyState(), store.WithMode(store.ModeStrict))
	before := s.Snapshot()

	var calls int
	s.Subscribe(func(context.Context, store.Change, store.State) { calls++ })

	err := s.DeleteClient(ctx, "missing")
	require.ErrorIs(t, err, client.ErrClientNotFound)

	_, err = s.UpdateTask(ctx, "missing", task.UpdateRequest{Status: ptr(task.StatusDone)})
	require.ErrorIs(t, err, task.ErrTaskNotFound)

	_, err = s.AddClient(ctx, client.CreateRequest{Name: " "})
	require.ErrorIs(t, err, client.ErrInvalidInput)

	require.Equal(t, before, s.Snapshot())
	require.Zero(t, calls)
}

func TestConcurrentMutationsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, store.State{})

	const workers = 20
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddClient(ctx, client.CreateRequest{Name: "Acme"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Len(t, snap.Clients, workers)
	require.Len(t, snap.Notifications, workers)
	require.EqualValues(t, workers, snap.Version)

	ids := make(map[string]struct{})
	for _, c := range snap.Clients {
		ids[c.ID] = struct{}{}
	}
	require.Len(t, ids, workers)
}

func TestParseMode(t *testing.T) {
	mode, err := store.ParseMode("")
	require.NoError(t, err)
	require.Equal(t, store.ModePermissive, mode)

	mode, err = store.ParseMode("strict")
	require.NoError(t, err)
	require.Equal(t, store.ModeStrict, mode)

	_, err = store.ParseMode("lenient")
	require.ErrorIs(t, err, store.ErrUnknownMode)
}

func TestDefaultIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.State{})

	a, err := s.AddClient(ctx, client.CreateRequest{Name: "A"})
	require.NoError(t, err)
	b, err := s.AddClient(ctx, client.CreateRequest{Name: "B"})
	require.NoError(t, err)

	require.NotEqual(t, a.ID, b.ID)
	require.Len(t, a.ID, 36)
}
