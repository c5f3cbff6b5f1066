package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	Topic = "session_events"

	metaEventType  = "event_type"
	metaOccurredAt = "occurred_at"
)

// Publisher is anything events can be sent to: the in-process bus or an
// external broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus is the in-process event bus. Messages published before anyone
// subscribes are dropped.
type Bus struct {
	pubSub *gochannel.GoChannel
}

var _ Publisher = (*Bus)(nil)

func NewBus(logger watermill.LoggerAdapter) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, logger),
	}
}

func (b *Bus) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	msg.Metadata.Set(metaEventType, event.EventType())
	msg.Metadata.Set(metaOccurredAt, event.Timestamp().UTC().Format(time.RFC3339Nano))

	return b.pubSub.Publish(Topic, msg)
}

func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, Topic)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// Decode rebuilds the event carried by a bus message.
func Decode(msg *message.Message) (Event, error) {
	eventType := msg.Metadata.Get(metaEventType)
	if eventType == "" {
		return nil, fmt.Errorf("message %s has no event type", msg.UUID)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &data); err != nil {
		return nil, fmt.Errorf("message %s: %w", msg.UUID, err)
	}

	occurredAt, err := time.Parse(time.RFC3339Nano, msg.Metadata.Get(metaOccurredAt))
	if err != nil {
		occurredAt = time.Now()
	}

	return BaseEvent{Type: eventType, Data: data, OccurredAt: occurredAt}, nil
}
