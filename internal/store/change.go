package store

import (
	"context"
	"time"
)

// ChangeKind names a committed mutation.
type ChangeKind string

const (
	ChangeClientAdded   ChangeKind = "client.added"
	ChangeClientUpdated ChangeKind = "client.updated"
	ChangeClientDeleted ChangeKind = "client.deleted"

	ChangeCampaignAdded   ChangeKind = "campaign.added"
	ChangeCampaignUpdated ChangeKind = "campaign.updated"
	ChangeCampaignDeleted ChangeKind = "campaign.deleted"

	ChangeTaskAdded         ChangeKind = "task.added"
	ChangeTaskUpdated       ChangeKind = "task.updated"
	ChangeTaskStatusChanged ChangeKind = "task.status_changed"
	ChangeTaskDeleted       ChangeKind = "task.deleted"
	ChangeTaskCommented     ChangeKind = "task.commented"
	ChangeTasksBulkUpdated  ChangeKind = "tasks.bulk_updated"
	ChangeTasksBulkDeleted  ChangeKind = "tasks.bulk_deleted"

	ChangePersonalTaskAdded   ChangeKind = "personal_task.added"
	ChangePersonalTaskUpdated ChangeKind = "personal_task.updated"
	ChangePersonalTaskDeleted ChangeKind = "personal_task.deleted"

	ChangeRuleAdded   ChangeKind = "automation_rule.added"
	ChangeRuleUpdated ChangeKind = "automation_rule.updated"
	ChangeRuleDeleted ChangeKind = "automation_rule.deleted"
	ChangeRuleToggled ChangeKind = "automation_rule.toggled"

	ChangeEventAdded   ChangeKind = "calendar_event.added"
	ChangeEventUpdated ChangeKind = "calendar_event.updated"
	ChangeEventDeleted ChangeKind = "calendar_event.deleted"

	ChangeMessageSent ChangeKind = "message.sent"
	ChangeMessageRead ChangeKind = "message.read"

	ChangeNotificationAdded  ChangeKind = "notification.added"
	ChangeNotificationRead   ChangeKind = "notification.read"
	ChangeNotificationsClear ChangeKind = "notification.cleared"

	ChangeUserSet           ChangeKind = "user.set"
	ChangeUserStatusChanged ChangeKind = "user.status_changed"
	ChangeTeamSet           ChangeKind = "team.set"

	ChangeViewChanged   ChangeKind = "view.changed"
	ChangeSearchChanged ChangeKind = "view.search_changed"
	ChangeModalOpened   ChangeKind = "view.modal_opened"
	ChangeModalClosed   ChangeKind = "view.modal_closed"
)

// Change describes one committed mutation. EntityID is empty for changes
// that touch a whole collection.
type Change struct {
	Kind     ChangeKind `json:"kind"`
	EntityID string     `json:"entity_id,omitempty"`
	Version  int64      `json:"version"`
	At       time.Time  `json:"at"`
}

// Listener observes committed changes. The state it receives is the
// committed value and must be treated as read-only. Listeners may call
// Snapshot or any read method but must not call mutations.
type Listener func(ctx context.Context, change Change, state State)
