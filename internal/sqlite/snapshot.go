package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ganot/creativehub/internal/domain/automation"
	"github.com/ganot/creativehub/internal/domain/calendar"
	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/messaging"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/personal"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/team"
	"github.com/ganot/creativehub/internal/domain/view"
	"github.com/ganot/creativehub/internal/repository"
	"github.com/ganot/creativehub/internal/store"
)

const (
	colTeamMembers     = "team_members"
	colClients         = "clients"
	colCampaigns       = "campaigns"
	colTasks           = "tasks"
	colPersonalTasks   = "personal_tasks"
	colMessages        = "messages"
	colChannels        = "channels"
	colAutomationRules = "automation_rules"
	colCalendarEvents  = "calendar_events"
	colNotifications   = "notifications"
)

const (
	metaVersion     = "version"
	metaSavedAt     = "saved_at"
	metaCurrentView = "current_view"
	metaSearchTerm  = "search_term"
	metaModal       = "modal"
	metaUser        = "user"
)

// SnapshotRepository implements repository.SnapshotRepository for SQLite.
// Each Save replaces the previous snapshot.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save replaces the stored snapshot with state in one transaction
func (r *SnapshotRepository) Save(ctx context.Context, state store.State) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entities`); err != nil {
		return fmt.Errorf("failed to clear entities: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entities (collection, id, position, payload) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	if err := insertAll(ctx, stmt, colTeamMembers, state.TeamMembers, func(u team.User) string { return u.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colClients, state.Clients, func(c client.Client) string { return c.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colCampaigns, state.Campaigns, func(c campaign.Campaign) string { return c.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colTasks, state.Tasks, func(t task.Task) string { return t.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colPersonalTasks, state.PersonalTasks, func(t personal.Task) string { return t.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colMessages, state.Messages, func(m messaging.Message) string { return m.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colChannels, state.Channels, func(c messaging.Channel) string { return c.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colAutomationRules, state.AutomationRules, func(r automation.Rule) string { return r.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colCalendarEvents, state.CalendarEvents, func(e calendar.Event) string { return e.ID }); err != nil {
		return err
	}
	if err := insertAll(ctx, stmt, colNotifications, state.Notifications, func(n notification.Notification) string { return n.ID }); err != nil {
		return err
	}

	meta := map[string]string{
		metaVersion:     strconv.FormatInt(state.Version, 10),
		metaSavedAt:     time.Now().UTC().Format(time.RFC3339Nano),
		metaCurrentView: string(state.CurrentView),
		metaSearchTerm:  state.SearchTerm,
		metaModal:       state.Modal.String(),
		metaUser:        "",
	}
	if state.User != nil {
		data, err := json.Marshal(state.User)
		if err != nil {
			return fmt.Errorf("failed to encode user: %w", err)
		}
		meta[metaUser] = string(data)
	}
	for key, value := range meta {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// insertAll writes items in order. A repeated id maps to
// repository.ErrDuplicateID.
func insertAll[T any](ctx context.Context, stmt *sql.Stmt, collection string, items []T, idOf func(T) string) error {
	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode %s[%d]: %w", collection, i, err)
		}
		_, err = stmt.ExecContext(ctx, collection, idOf(item), i, string(payload))
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %q", repository.ErrDuplicateID, collection, idOf(item))
		}
		if err != nil {
			return fmt.Errorf("failed to insert %s %q: %w", collection, idOf(item), err)
		}
	}
	return nil
}

// Load reads the stored snapshot. It returns repository.ErrNotFound when
// nothing has been saved.
func (r *SnapshotRepository) Load(ctx context.Context) (store.State, error) {
	meta, err := r.meta(ctx)
	if err != nil {
		return store.State{}, err
	}

	var state store.State
	state.Version, err = strconv.ParseInt(meta[metaVersion], 10, 64)
	if err != nil {
		return store.State{}, fmt.Errorf("%w: version %q", repository.ErrCorrupt, meta[metaVersion])
	}
	state.CurrentView = view.View(meta[metaCurrentView])
	state.SearchTerm = meta[metaSearchTerm]
	if state.Modal, err = view.ParseModalKind(meta[metaModal]); err != nil {
		return store.State{}, fmt.Errorf("%w: %v", repository.ErrCorrupt, err)
	}
	if raw := meta[metaUser]; raw != "" {
		var u team.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return store.State{}, fmt.Errorf("%w: user: %v", repository.ErrCorrupt, err)
		}
		state.User = &u
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT collection, payload FROM entities ORDER BY collection, position`)
	if err != nil {
		return store.State{}, fmt.Errorf("failed to load entities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var collection, payload string
		if err := rows.Scan(&collection, &payload); err != nil {
			return store.State{}, fmt.Errorf("failed to scan entity: %w", err)
		}
		if err := decodeInto(&state, collection, []byte(payload)); err != nil {
			return store.State{}, err
		}
	}
	if err := rows.Err(); err != nil {
		return store.State{}, fmt.Errorf("failed to iterate entities: %w", err)
	}

	return state, nil
}

func decodeInto(state *store.State, collection string, payload []byte) error {
	var err error
	switch collection {
	case colTeamMembers:
		state.TeamMembers, err = appendDecoded(state.TeamMembers, payload)
	case colClients:
		state.Clients, err = appendDecoded(state.Clients, payload)
	case colCampaigns:
		state.Campaigns, err = appendDecoded(state.Campaigns, payload)
	case colTasks:
		state.Tasks, err = appendDecoded(state.Tasks, payload)
	case colPersonalTasks:
		state.PersonalTasks, err = appendDecoded(state.PersonalTasks, payload)
	case colMessages:
		state.Messages, err = appendDecoded(state.Messages, payload)
	case colChannels:
		state.Channels, err = appendDecoded(state.Channels, payload)
	case colAutomationRules:
		state.AutomationRules, err = appendDecoded(state.AutomationRules, payload)
	case colCalendarEvents:
		state.CalendarEvents, err = appendDecoded(state.CalendarEvents, payload)
	case colNotifications:
		state.Notifications, err = appendDecoded(state.Notifications, payload)
	default:
		return fmt.Errorf("%w: unknown collection %q", repository.ErrCorrupt, collection)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", repository.ErrCorrupt, collection, err)
	}
	return nil
}

func appendDecoded[T any](items []T, payload []byte) ([]T, error) {
	var item T
	if err := json.Unmarshal(payload, &item); err != nil {
		return items, err
	}
	return append(items, item), nil
}

// Info reports the version, save time and per-collection counts of the
// stored snapshot.
func (r *SnapshotRepository) Info(ctx context.Context) (repository.SnapshotInfo, error) {
	meta, err := r.meta(ctx)
	if err != nil {
		return repository.SnapshotInfo{}, err
	}

	info := repository.SnapshotInfo{Counts: make(map[string]int)}
	if info.Version, err = strconv.ParseInt(meta[metaVersion], 10, 64); err != nil {
		return repository.SnapshotInfo{}, fmt.Errorf("%w: version %q", repository.ErrCorrupt, meta[metaVersion])
	}
	if raw := meta[metaSavedAt]; raw != "" {
		if info.SavedAt, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return repository.SnapshotInfo{}, fmt.Errorf("%w: saved_at %q", repository.ErrCorrupt, raw)
		}
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT collection, COUNT(*) FROM entities GROUP BY collection`)
	if err != nil {
		return repository.SnapshotInfo{}, fmt.Errorf("failed to count entities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			collection string
			n          int
		)
		if err := rows.Scan(&collection, &n); err != nil {
			return repository.SnapshotInfo{}, fmt.Errorf("failed to scan count: %w", err)
		}
		info.Counts[collection] = n
	}
	if err := rows.Err(); err != nil {
		return repository.SnapshotInfo{}, fmt.Errorf("failed to iterate counts: %w", err)
	}

	return info, nil
}

func (r *SnapshotRepository) meta(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM snapshot_meta`)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot meta: %w", err)
		}
		meta[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot meta: %w", err)
	}

	if _, ok := meta[metaVersion]; !ok {
		return nil, repository.ErrNotFound
	}
	return meta, nil
}
