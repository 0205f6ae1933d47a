package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/creativehub/internal/domain/automation"
	"github.com/ganot/creativehub/internal/domain/calendar"
	"github.com/ganot/creativehub/internal/domain/campaign"
	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/ganot/creativehub/internal/domain/messaging"
	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/domain/personal"
	"github.com/ganot/creativehub/internal/domain/task"
	"github.com/ganot/creativehub/internal/domain/view"
	"github.com/ganot/creativehub/internal/store"
)

var (
	// ErrUnknownMethod is returned by Handle for names outside the catalog.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrInvalidParams marks arguments that could not be decoded.
	ErrInvalidParams = errors.New("invalid params")
)

// JSON-RPC codes reported through RPCCode.
const (
	rpcMethodNotFound = -32601
	rpcInvalidParams  = -32602
	rpcInternal       = -32603
	rpcNotFound       = -32004
	rpcConflict       = -32009
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`

	rpc int
	err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}

// RPCCode is the JSON-RPC error code for the HTTP transport.
func (e *APIError) RPCCode() int {
	if e.rpc == 0 {
		return rpcInternal
	}
	return e.rpc
}

func notFound(code, message string, err error) *APIError {
	return &APIError{Code: code, Message: message, RecoveryHint: "Check ID spelling", rpc: rpcNotFound, err: err}
}

func invalid(code, message string, err error) *APIError {
	return &APIError{Code: code, Message: message, Details: err.Error(), rpc: rpcInvalidParams, err: err}
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrUnknownMethod):
		return &APIError{Code: "METHOD_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call tools/list for the catalog", rpc: rpcMethodNotFound, err: err}
	case errors.Is(err, ErrInvalidParams):
		return invalid("INVALID_PARAMS", "arguments could not be decoded", err)
	case errors.Is(err, client.ErrClientNotFound):
		return notFound("CLIENT_NOT_FOUND", "client not found", err)
	case errors.Is(err, campaign.ErrCampaignNotFound):
		return notFound("CAMPAIGN_NOT_FOUND", "campaign not found", err)
	case errors.Is(err, task.ErrTaskNotFound):
		return notFound("TASK_NOT_FOUND", "task not found", err)
	case errors.Is(err, personal.ErrTaskNotFound):
		return notFound("PERSONAL_TASK_NOT_FOUND", "personal task not found", err)
	case errors.Is(err, automation.ErrRuleNotFound):
		return notFound("AUTOMATION_RULE_NOT_FOUND", "automation rule not found", err)
	case errors.Is(err, calendar.ErrEventNotFound):
		return notFound("CALENDAR_EVENT_NOT_FOUND", "calendar event not found", err)
	case errors.Is(err, messaging.ErrMessageNotFound):
		return notFound("MESSAGE_NOT_FOUND", "message not found", err)
	case errors.Is(err, messaging.ErrChannelNotFound):
		return notFound("CHANNEL_NOT_FOUND", "channel not found", err)
	case errors.Is(err, notification.ErrNotificationNotFound):
		return notFound("NOTIFICATION_NOT_FOUND", "notification not found", err)
	case errors.Is(err, store.ErrNoActiveUser):
		return &APIError{Code: "NO_ACTIVE_USER", Message: "no user is signed in", RecoveryHint: "Call set_user first", rpc: rpcConflict, err: err}
	case errors.Is(err, view.ErrUnknownView):
		return invalid("UNKNOWN_VIEW", "unknown view", err)
	case errors.Is(err, view.ErrUnknownModal):
		return invalid("UNKNOWN_MODAL", "unknown modal kind", err)
	case errors.Is(err, client.ErrInvalidInput),
		errors.Is(err, campaign.ErrInvalidInput),
		errors.Is(err, task.ErrInvalidInput),
		errors.Is(err, personal.ErrInvalidInput),
		errors.Is(err, automation.ErrInvalidInput),
		errors.Is(err, calendar.ErrInvalidInput),
		errors.Is(err, messaging.ErrInvalidInput):
		return invalid("INVALID_INPUT", "input failed validation", err)
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
