package messaging

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// Type distinguishes direct messages from channel posts.
type Type string

const (
	TypeDirect  Type = "direct"
	TypeChannel Type = "channel"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrChannelNotFound = errors.New("channel not found")
	ErrInvalidInput    = errors.New("invalid message input")
)

type Message struct {
	ID         string    `json:"id" yaml:"id"`
	Text       string    `json:"text" yaml:"text"`
	SenderID   string    `json:"sender_id" yaml:"sender_id"`
	ReceiverID string    `json:"receiver_id,omitempty" yaml:"receiver_id,omitempty"`
	ChannelID  string    `json:"channel_id,omitempty" yaml:"channel_id,omitempty"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp,omitempty"`
	Read       bool      `json:"read" yaml:"read"`
	Type       Type      `json:"type" yaml:"type"`
}

// Channel is a group conversation. LastMessage is a copy of the most recent
// message sent to it.
type Channel struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Members     []string  `json:"members,omitempty" yaml:"members,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at,omitempty"`
	LastMessage *Message  `json:"last_message,omitempty" yaml:"last_message,omitempty"`
}

func (c Channel) Clone() Channel {
	c.Members = slices.Clone(c.Members)
	if c.LastMessage != nil {
		last := *c.LastMessage
		c.LastMessage = &last
	}
	return c
}

// SendRequest is a message to deliver. Set ChannelID for channel posts and
// ReceiverID for direct messages.
type SendRequest struct {
	Text       string `json:"text"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id,omitempty"`
	ChannelID  string `json:"channel_id,omitempty"`
	Type       Type   `json:"type,omitempty"`
}

// Build turns the request into an unread message. A missing type is
// inferred from ChannelID.
func (r SendRequest) Build(id string, now time.Time) Message {
	typ := r.Type
	if typ == "" {
		typ = TypeDirect
		if r.ChannelID != "" {
			typ = TypeChannel
		}
	}
	return Message{
		ID:         id,
		Text:       r.Text,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		ChannelID:  r.ChannelID,
		Timestamp:  now,
		Type:       typ,
	}
}

func (r SendRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ListOptions selects a conversation. Between returns the direct messages
// exchanged by the two given users in either direction.
type ListOptions struct {
	ChannelID  string    `json:"channel_id,omitempty"`
	Between    [2]string `json:"between,omitempty"`
	UnreadOnly bool      `json:"unread_only,omitempty"`
}

func (o ListOptions) Matches(m Message) bool {
	if o.UnreadOnly && m.Read {
		return false
	}
	if o.ChannelID != "" && m.ChannelID != o.ChannelID {
		return false
	}
	if a, b := o.Between[0], o.Between[1]; a != "" && b != "" {
		forward := m.SenderID == a && m.ReceiverID == b
		backward := m.SenderID == b && m.ReceiverID == a
		if !forward && !backward {
			return false
		}
	}
	return true
}
