package mapper

import (
	"expert-session-be/internal/dto"
	"expert-session-be/internal/entity"

	"github.com/samber/lo"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToResponse(msg *entity.SessionMessage) *dto.MessageResponse {
	if msg == nil {
		return nil
	}
	return &dto.MessageResponse{
		Id:         msg.Id,
		SessionId:  msg.SessionId,
		SenderId:   msg.SenderId,
		SenderRole: string(msg.SenderRole),
		Type:       string(msg.Type),
		Text:       msg.Text,
		FileName:   msg.FileName,
		FileSize:   msg.FileSize,
		SentAt:     msg.SentAt,
	}
}

func (m *MessageMapper) ToResponses(messages []*entity.SessionMessage) []*dto.MessageResponse {
	return lo.Map(messages, func(msg *entity.SessionMessage, _ int) *dto.MessageResponse {
		return m.ToResponse(msg)
	})
}
