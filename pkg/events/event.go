package events

import "time"

const (
	TypeSessionBooked     = "session.booked"
	TypeSessionSummarized = "session.summarized"
	TypeSessionMessage    = "session.message"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "session.booked").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func SessionBooked(sessionId, expertId, clientId string, price float64, at time.Time) Event {
	return BaseEvent{
		Type: TypeSessionBooked,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"expert_id":  expertId,
			"client_id":  clientId,
			"price":      price,
		},
		OccurredAt: at,
	}
}

// SessionSummarized never carries the summary text, only its shape.
func SessionSummarized(sessionId, source string, actionItems int, at time.Time) Event {
	return BaseEvent{
		Type: TypeSessionSummarized,
		Data: map[string]interface{}{
			"session_id":   sessionId,
			"source":       source,
			"action_items": actionItems,
		},
		OccurredAt: at,
	}
}

// SessionMessageSent leaves the chat text out of the payload.
func SessionMessageSent(sessionId, messageId, senderRole, messageType string, at time.Time) Event {
	return BaseEvent{
		Type: TypeSessionMessage,
		Data: map[string]interface{}{
			"session_id":   sessionId,
			"message_id":   messageId,
			"sender_role":  senderRole,
			"message_type": messageType,
		},
		OccurredAt: at,
	}
}
