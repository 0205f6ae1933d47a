// Package notification models the advisory feed of past mutations.
//
// Notifications describe what the store did. They are never an error or
// result channel.
package notification

import (
	"errors"
	"time"
)

// Type is the severity of a notification.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Notification struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Message   string    `json:"message" yaml:"message"`
	Type      Type      `json:"type" yaml:"type"`
	Read      bool      `json:"read" yaml:"read"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at,omitempty"`
	ActionURL string    `json:"action_url,omitempty" yaml:"action_url,omitempty"`
}

// CreateRequest is an explicitly posted notification. It starts unread.
type CreateRequest struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      Type   `json:"type,omitempty"`
	ActionURL string `json:"action_url,omitempty"`
}

func (r CreateRequest) Build(id string, now time.Time) Notification {
	return Notification{
		ID:        id,
		Title:     r.Title,
		Message:   r.Message,
		Type:      r.Type,
		CreatedAt: now,
		ActionURL: r.ActionURL,
	}
}

// ListOptions filters the feed.
type ListOptions struct {
	UnreadOnly bool `json:"unread_only,omitempty"`
	Type       Type `json:"type,omitempty"`
}

func (o ListOptions) Matches(n Notification) bool {
	if o.UnreadOnly && n.Read {
		return false
	}
	return o.Type == "" || n.Type == o.Type
}

// CountUnread returns the number of unread notifications.
func CountUnread(feed []Notification) int {
	var n int
	for _, item := range feed {
		if !item.Read {
			n++
		}
	}
	return n
}
