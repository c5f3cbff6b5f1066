package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"expert-session-be/internal/constant"
	"expert-session-be/internal/entity"
	"expert-session-be/internal/repository/contract"
	"expert-session-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps sessions in process memory. Seeded sessions never
// expire; booked ones live for the configured TTL. Chat logs sit beside the
// cache and keep only the newest constant.MaxMessageHistory lines.
type SessionRepository struct {
	cache *cache.Cache

	mu       sync.RWMutex
	messages map[string][]entity.SessionMessage
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(ttl time.Duration, seed []*entity.Session) *SessionRepository {
	// Purge expired items every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	for _, s := range seed {
		copied := *s
		c.Set(s.Id, &copied, cache.NoExpiration)
	}
	return &SessionRepository{
		cache:    c,
		messages: make(map[string][]entity.SessionMessage),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	copied := *session
	if err := r.cache.Add(session.Id, &copied, cache.DefaultExpiration); err != nil {
		return fmt.Errorf("session %s: %w", session.Id, err)
	}
	return nil
}

func (r *SessionRepository) FindById(ctx context.Context, id string) (*entity.Session, error) {
	if x, found := r.cache.Get(id); found {
		copied := *x.(*entity.Session)
		return &copied, nil
	}
	return nil, contract.ErrNotFound
}

func (r *SessionRepository) FindAll(ctx context.Context, specs ...specification.Specification[entity.Session]) ([]*entity.Session, error) {
	items := r.cache.Items()
	out := make([]*entity.Session, 0, len(items))
	for _, item := range items {
		s := item.Object.(*entity.Session)
		if specification.SatisfiesAll(s, specs...) {
			copied := *s
			out = append(out, &copied)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Session) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Id, b.Id)
	})
	return out, nil
}

func (r *SessionRepository) AddMessage(ctx context.Context, msg *entity.SessionMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := append(r.messages[msg.SessionId], *msg)
	if overflow := len(history) - constant.MaxMessageHistory; overflow > 0 {
		history = slices.Clone(history[overflow:])
	}
	r.messages[msg.SessionId] = history
	return nil
}

func (r *SessionRepository) FindMessages(ctx context.Context, sessionId string) ([]*entity.SessionMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.messages[sessionId]
	out := make([]*entity.SessionMessage, len(history))
	for i := range history {
		copied := history[i]
		out[i] = &copied
	}
	return out, nil
}
