package specification

import (
	"expert-session-be/internal/entity"

	"github.com/samber/lo"
)

type SessionByStatus struct {
	Statuses []entity.SessionStatus
}

func (s SessionByStatus) IsSatisfiedBy(sess *entity.Session) bool {
	return lo.Contains(s.Statuses, sess.Status)
}

type SessionByClient struct {
	ClientId string
}

func (s SessionByClient) IsSatisfiedBy(sess *entity.Session) bool {
	return sess.ClientId == s.ClientId
}

type SessionByExpert struct {
	ExpertId string
}

func (s SessionByExpert) IsSatisfiedBy(sess *entity.Session) bool {
	return sess.ExpertId == s.ExpertId
}
