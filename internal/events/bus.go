package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// MutationTopic carries one message per completed write against the backend.
// The UI layer subscribes and re-fetches whatever the mutation invalidated;
// the data layer itself never caches.
const MutationTopic = "schedule.mutations"

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Mutation describes a completed write.
type Mutation struct {
	Entity string `json:"entity"` // "class" or "student"
	Action Action `json:"action"`
	ID     string `json:"id"`
}

// Bus is an in-process pub/sub for mutation notifications. Publishing is
// fire-and-forget: a subscriber that lags or is absent never blocks or fails
// a data-layer call.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, watermill.NewSlogLogger(logger)),
		logger: logger,
	}
}

// PublishMutation announces a completed write. A publish failure is logged
// and swallowed; notifications are best-effort.
func (b *Bus) PublishMutation(entity string, action Action, id string) {
	if b == nil {
		return
	}

	payload, err := json.Marshal(Mutation{Entity: entity, Action: action, ID: id})
	if err != nil {
		b.logger.Error("failed to marshal mutation event", "error", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubsub.Publish(MutationTopic, msg); err != nil {
		b.logger.Error("failed to publish mutation event", "error", err)
	}
}

// Subscribe returns a channel of decoded mutations. The channel closes when
// ctx is cancelled or the bus shuts down.
func (b *Bus) Subscribe(ctx context.Context) (<-chan Mutation, error) {
	messages, err := b.pubsub.Subscribe(ctx, MutationTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to mutations: %w", err)
	}

	out := make(chan Mutation)
	go func() {
		defer close(out)
		for msg := range messages {
			var mutation Mutation
			if err := json.Unmarshal(msg.Payload, &mutation); err != nil {
				b.logger.Error("failed to decode mutation event", "error", err)
				msg.Ack()
				continue
			}
			msg.Ack()

			select {
			case out <- mutation:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close shuts down the bus and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
