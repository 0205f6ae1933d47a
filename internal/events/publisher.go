// Package events publishes committed store changes to an AMQP exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/ganot/creativehub/internal/domain/notification"
	"github.com/ganot/creativehub/internal/store"
)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Event is the message body published for each change.
type Event struct {
	Kind                store.ChangeKind `json:"kind"`
	EntityID            string           `json:"entity_id,omitempty"`
	Version             int64            `json:"version"`
	At                  string           `json:"at"`
	UnreadNotifications int              `json:"unread_notifications"`
}

// Publisher sends one message per store change, routed by change kind.
type Publisher struct {
	ch       Channel
	exchange string
	logger   *slog.Logger
}

func NewPublisher(ch Channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, logger: logger}
}

// Publish sends change to the exchange.
func (p *Publisher) Publish(change store.Change, state store.State) error {
	body, err := json.Marshal(Event{
		Kind:                change.Kind,
		EntityID:            change.EntityID,
		Version:             change.Version,
		At:                  change.At.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		UnreadNotifications: notification.CountUnread(state.Notifications),
	})
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	err = p.ch.Publish(p.exchange, string(change.Kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    fmt.Sprintf("%d", change.Version),
		Timestamp:    change.At,
		Type:         string(change.Kind),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publishing %s: %w", change.Kind, err)
	}
	return nil
}

// Listener adapts the publisher to store.Subscribe. Failures are logged.
func (p *Publisher) Listener() store.Listener {
	return func(ctx context.Context, change store.Change, state store.State) {
		if err := p.Publish(change, state); err != nil {
			p.logger.WarnContext(ctx, "event publish failed",
				"kind", change.Kind,
				"version", change.Version,
				"error", err)
		}
	}
}

// Connection owns the broker connection behind a Publisher.
type Connection struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial connects to url and declares exchange as a durable topic exchange.
func Dial(url, exchange string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declaring exchange %s: %w", exchange, err)
	}

	return &Connection{conn: conn, ch: ch}, nil
}

// Channel returns the AMQP channel to publish on.
func (c *Connection) Channel() Channel {
	return c.ch
}

func (c *Connection) Close() error {
	if err := c.ch.Close(); err != nil {
		c.conn.Close()
		return err
	}
	return c.conn.Close()
}
