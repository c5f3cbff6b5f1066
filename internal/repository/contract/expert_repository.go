package contract

import (
	"context"
	"errors"

	"expert-session-be/internal/entity"
	"expert-session-be/internal/repository/specification"
)

var ErrNotFound = errors.New("record not found")

type ExpertRepository interface {
	FindById(ctx context.Context, id string) (*entity.Expert, error)
	// FindAll keeps catalog order.
	FindAll(ctx context.Context, specs ...specification.Specification[entity.Expert]) ([]*entity.Expert, error)
}
