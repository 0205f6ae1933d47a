package store

import (
	"context"

	"github.com/ganot/creativehub/internal/domain/messaging"
)

// SendMessage appends a message. A message sent to a known channel becomes
// that channel's last message. Strict mode rejects unknown channels.
func (s *Store) SendMessage(ctx context.Context, req messaging.SendRequest) (*messaging.Message, error) {
	if s.strict() {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	var sent messaging.Message
	err := s.mutate(ctx, func(tx *txn) (Change, error) {
		ch := -1
		if req.ChannelID != "" {
			ch = indexOf(tx.Channels, req.ChannelID, channelID)
			if ch < 0 && s.strict() {
				return Change{}, messaging.ErrChannelNotFound
			}
		}

		sent = req.Build(tx.newID(), tx.now)
		tx.Messages = append(tx.Messages, sent)
		if ch >= 0 {
			last := sent
			tx.Channels[ch].LastMessage = &last
		}
		return tx.change(ChangeMessageSent, sent.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return &sent, nil
}

func (s *Store) MarkMessageAsRead(ctx context.Context, id string) error {
	return s.mutate(ctx, func(tx *txn) (Change, error) {
		i := indexOf(tx.Messages, id, messageID)
		if i < 0 {
			return Change{}, s.missing(messaging.ErrMessageNotFound)
		}
		tx.Messages[i].Read = true
		return tx.change(ChangeMessageRead, id), nil
	})
}

func (s *Store) GetChannel(id string) (messaging.Channel, error) {
	var (
		out messaging.Channel
		err error
	)
	s.read(func(st *State) {
		i := indexOf(st.Channels, id, channelID)
		if i < 0 {
			err = messaging.ErrChannelNotFound
			return
		}
		out = st.Channels[i].Clone()
	})
	return out, err
}

func (s *Store) ListChannels() []messaging.Channel {
	var out []messaging.Channel
	s.read(func(st *State) {
		out = cloneEach(st.Channels, messaging.Channel.Clone)
	})
	if out == nil {
		out = []messaging.Channel{}
	}
	return out
}

// ListMessages returns matching messages oldest first.
func (s *Store) ListMessages(opts messaging.ListOptions) []messaging.Message {
	out := []messaging.Message{}
	s.read(func(st *State) {
		for _, m := range st.Messages {
			if opts.Matches(m) {
				out = append(out, m)
			}
		}
	})
	return out
}
