package mcp

import (
	"time"

	"github.com/ganot/creativehub/internal/domain/automation"
	"github.com/ganot/creativehub/internal/domain/calendar"
	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/personal"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/team"
	"github.com/ganot/creativehub/internal/domain/view"
)

type IDParams struct {
	ID string `json:"id"`
}

type UpdateClientParams struct {
	ID string `json:"id"`
	client.UpdateRequest
}

type UpdateCampaignParams struct {
	ID string `json:"id"`
	campaign.UpdateRequest
}

type UpdateTaskParams struct {
	ID string `json:"id"`
	task.UpdateRequest
}

type AddTaskCommentParams struct {
	ID string `json:"id"`
	task.CommentRequest
}

type BulkUpdateTasksParams struct {
	IDs     []string           `json:"ids"`
	Changes task.UpdateRequest `json:"changes"`
}

type BulkDeleteTasksParams struct {
	IDs []string `json:"ids"`
}

type UpdatePersonalTaskParams struct {
	ID string `json:"id"`
	personal.UpdateRequest
}

type UpdateAutomationRuleParams struct {
	ID string `json:"id"`
	automation.UpdateRequest
}

type UpdateCalendarEventParams struct {
	ID string `json:"id"`
	calendar.UpdateRequest
}

type SetUserParams struct {
	User *team.User `json:"user"`
}

type SetTeamMembersParams struct {
	Members []team.User `json:"members"`
}

type SetUserStatusParams struct {
	Status team.Status `json:"status"`
}

type SetCurrentViewParams struct {
	View view.View `json:"view"`
}

type SetSearchTermParams struct {
	Term string `json:"term"`
}

type OpenModalParams struct {
	Kind view.ModalKind `json:"kind"`
}

// AtParams pins the reference time of overdue calculations. Zero means now.
type AtParams struct {
	At time.Time `json:"at,omitempty"`
}

// AckResponse is returned by mutations that have no entity to return.
type AckResponse struct {
	Version int64 `json:"version"`
}

type BulkResponse struct {
	Affected int   `json:"affected"`
	Version  int64 `json:"version"`
}

type CurrentUserResponse struct {
	SignedIn bool       `json:"signed_in"`
	User     *team.User `json:"user,omitempty"`
}
