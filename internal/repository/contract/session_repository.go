package contract

import (
	"context"

	"expert-session-be/internal/entity"
	"expert-session-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindById(ctx context.Context, id string) (*entity.Session, error)
	// FindAll returns sessions ordered by date, earliest first.
	FindAll(ctx context.Context, specs ...specification.Specification[entity.Session]) ([]*entity.Session, error)

	// AddMessage appends to the session's chat log. Callers check the
	// session exists first.
	AddMessage(ctx context.Context, msg *entity.SessionMessage) error
	// FindMessages returns the chat log oldest first.
	FindMessages(ctx context.Context, sessionId string) ([]*entity.SessionMessage, error)
}
