package mapper

import (
	"expert-session-be/internal/dto"
	"expert-session-be/internal/entity"

	"github.com/samber/lo"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToResponse(s *entity.Session) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	return &dto.SessionResponse{
		Id:              s.Id,
		ExpertId:        s.ExpertId,
		ExpertName:      s.ExpertName,
		ClientId:        s.ClientId,
		ClientName:      s.ClientName,
		Date:            s.Date,
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
		Topic:           s.Topic,
		Notes:           s.Notes,
		Subtotal:        s.Subtotal,
		ServiceFee:      s.ServiceFee,
		Price:           s.Price,
	}
}

func (m *SessionMapper) ToResponses(sessions []*entity.Session) []*dto.SessionResponse {
	return lo.Map(sessions, func(s *entity.Session, _ int) *dto.SessionResponse {
		return m.ToResponse(s)
	})
}
