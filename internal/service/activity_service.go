package service

import (
	"context"

	"expert-session-be/internal/pkg/logger"
	"expert-session-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IActivityService drains the in-process event bus.
type IActivityService interface {
	Consume(ctx context.Context) error
}

type activityService struct {
	bus       *events.Bus
	forwarder events.Publisher
	logger    logger.ILogger
}

// NewActivityService takes an optional forwarder (nil when no broker is
// configured) that receives every event after it is logged.
func NewActivityService(bus *events.Bus, forwarder events.Publisher, logger logger.ILogger) IActivityService {
	return &activityService{
		bus:       bus,
		forwarder: forwarder,
		logger:    logger,
	}
}

func (s *activityService) Consume(ctx context.Context) error {
	messages, err := s.bus.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *activityService) processMessage(ctx context.Context, msg *message.Message) {
	// Always Ack: gochannel redelivers Nacked messages immediately and a
	// broken payload would never succeed.
	defer msg.Ack()

	event, err := events.Decode(msg)
	if err != nil {
		s.logger.Error("SESSION_ACTIVITY", "Failed to decode event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	s.logger.Info("SESSION_ACTIVITY", event.EventType(), event.Payload())

	if s.forwarder == nil {
		return
	}
	if err := s.forwarder.Publish(ctx, event); err != nil {
		s.logger.Warn("SESSION_ACTIVITY", "Failed to forward event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
