package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"expert-session-be/internal/constant"
	"expert-session-be/internal/dto"
	"expert-session-be/internal/entity"
	"expert-session-be/internal/mapper"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/internal/pkg/serverutils"
	"expert-session-be/internal/repository/contract"
	"expert-session-be/internal/repository/memory"
	"expert-session-be/internal/repository/specification"
	"expert-session-be/pkg/ai/summary"
	"expert-session-be/pkg/events"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ISessionService interface {
	List(ctx context.Context, clientId string) (*dto.ListSessionsResponse, error)
	Show(ctx context.Context, id string) (*dto.SessionResponse, error)
	Book(ctx context.Context, clientId string, req *dto.BookSessionRequest) (*dto.SessionResponse, error)
	SampleTranscript(ctx context.Context) *dto.TranscriptResponse
	Summarize(ctx context.Context, id string, req *dto.GenerateSummaryRequest) (*dto.SessionSummaryResponse, error)
	ListMessages(ctx context.Context, id string) ([]*dto.MessageResponse, error)
	SendMessage(ctx context.Context, id, senderId string, role entity.UserRole, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
}

// MessageBroadcaster pushes a stored chat message to everyone connected to
// the session room.
type MessageBroadcaster interface {
	BroadcastToSession(sessionId string, msg *dto.MessageResponse)
}

type sessionService struct {
	sessionRepo contract.SessionRepository
	expertRepo  contract.ExpertRepository
	summarizer  *summary.Summarizer
	publisher   events.Publisher
	broadcaster MessageBroadcaster
	mapper      *mapper.SessionMapper
	msgMapper   *mapper.MessageMapper
	logger      logger.ILogger
	now         func() time.Time
}

func NewSessionService(
	sessionRepo contract.SessionRepository,
	expertRepo contract.ExpertRepository,
	summarizer *summary.Summarizer,
	publisher events.Publisher,
	broadcaster MessageBroadcaster,
	logger logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		expertRepo:  expertRepo,
		summarizer:  summarizer,
		publisher:   publisher,
		broadcaster: broadcaster,
		mapper:      mapper.NewSessionMapper(),
		msgMapper:   mapper.NewMessageMapper(),
		logger:      logger,
		now:         time.Now,
	}
}

func (s *sessionService) List(ctx context.Context, clientId string) (*dto.ListSessionsResponse, error) {
	sessions, err := s.sessionRepo.FindAll(ctx, specification.SessionByClient{ClientId: clientId})
	if err != nil {
		return nil, err
	}

	upcoming, rest := lo.FilterReject(sessions, func(sess *entity.Session, _ int) bool {
		return sess.IsUpcoming()
	})
	past := lo.Filter(rest, func(sess *entity.Session, _ int) bool {
		return sess.Status == entity.SessionStatusCompleted
	})

	return &dto.ListSessionsResponse{
		Upcoming: s.mapper.ToResponses(upcoming),
		Past:     s.mapper.ToResponses(past),
	}, nil
}

func (s *sessionService) Show(ctx context.Context, id string) (*dto.SessionResponse, error) {
	sess, err := s.findSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(sess), nil
}

func (s *sessionService) Book(ctx context.Context, clientId string, req *dto.BookSessionRequest) (*dto.SessionResponse, error) {
	expert, err := s.expertRepo.FindById(ctx, req.ExpertId)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, serverutils.NewNotFoundError("Expert not found")
		}
		return nil, err
	}

	if !req.Date.After(s.now()) {
		return nil, serverutils.NewBadRequestError("Session date must be in the future")
	}

	subtotal := expert.HourlyRate * float64(req.DurationMinutes) / 60
	sess := &entity.Session{
		Id:              uuid.NewString(),
		ExpertId:        expert.Id,
		ExpertName:      expert.Name,
		ClientId:        clientId,
		ClientName:      "You",
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Status:          entity.SessionStatusScheduled,
		Topic:           strings.TrimSpace(req.Topic),
		Subtotal:        subtotal,
		ServiceFee:      constant.BookingServiceFee,
		Price:           subtotal + constant.BookingServiceFee,
	}

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		s.logger.Error("SESSION_SERVICE", "Failed to store session", map[string]interface{}{
			"expert_id": expert.Id,
			"error":     err.Error(),
		})
		return nil, serverutils.NewInternalError("Failed to book session", err)
	}

	s.logger.Info("SESSION_SERVICE", "Session booked", map[string]interface{}{
		"session_id": sess.Id,
		"expert_id":  expert.Id,
		"minutes":    sess.DurationMinutes,
	})
	s.publish(ctx, events.SessionBooked(sess.Id, sess.ExpertId, sess.ClientId, sess.Price, s.now()))

	return s.mapper.ToResponse(sess), nil
}

func (s *sessionService) SampleTranscript(ctx context.Context) *dto.TranscriptResponse {
	return &dto.TranscriptResponse{Transcript: memory.SampleTranscript}
}

// Summarize never fails because of the model; only an unknown session is an error.
func (s *sessionService) Summarize(ctx context.Context, id string, req *dto.GenerateSummaryRequest) (*dto.SessionSummaryResponse, error) {
	sess, err := s.findSession(ctx, id)
	if err != nil {
		return nil, err
	}

	transcript := req.Transcript
	if strings.TrimSpace(transcript) == "" {
		transcript = memory.SampleTranscript
	}

	result := s.summarizer.Summarize(ctx, transcript)

	s.logger.Info("SESSION_SERVICE", "Session summarized", map[string]interface{}{
		"session_id":   sess.Id,
		"source":       result.Source,
		"action_items": len(result.ActionItems),
	})
	s.publish(ctx, events.SessionSummarized(sess.Id, result.Source, len(result.ActionItems), s.now()))

	return &dto.SessionSummaryResponse{
		SessionId:   sess.Id,
		Summary:     result.Summary.Summary,
		ActionItems: result.ActionItems,
		Source:      result.Source,
	}, nil
}

func (s *sessionService) ListMessages(ctx context.Context, id string) ([]*dto.MessageResponse, error) {
	sess, err := s.findSession(ctx, id)
	if err != nil {
		return nil, err
	}

	messages, err := s.sessionRepo.FindMessages(ctx, sess.Id)
	if err != nil {
		return nil, err
	}
	return s.msgMapper.ToResponses(messages), nil
}

// SendMessage stores a chat line and pushes it to the session room. An
// anonymous sender speaks for the session's client or expert, by role.
func (s *sessionService) SendMessage(ctx context.Context, id, senderId string, role entity.UserRole, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	sess, err := s.findSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status == entity.SessionStatusCancelled {
		return nil, serverutils.NewBadRequestError("Session is cancelled")
	}

	msg := &entity.SessionMessage{
		Id:         uuid.NewString(),
		SessionId:  sess.Id,
		SenderId:   senderId,
		SenderRole: role,
		Type:       entity.MessageType(req.Type),
		Text:       strings.TrimSpace(req.Text),
		SentAt:     s.now(),
	}
	if msg.SenderId == "" {
		msg.SenderId = sess.ClientId
		if role == entity.UserRoleExpert {
			msg.SenderId = sess.ExpertId
		}
	}

	switch msg.Type {
	case entity.MessageTypeFile:
		msg.FileName = strings.TrimSpace(req.FileName)
		msg.FileSize = strings.TrimSpace(req.FileSize)
		if msg.FileName == "" {
			return nil, serverutils.NewBadRequestError("FileName is required")
		}
	default:
		msg.Type = entity.MessageTypeText
		if msg.Text == "" {
			return nil, serverutils.NewBadRequestError("Text is required")
		}
	}

	if err := s.sessionRepo.AddMessage(ctx, msg); err != nil {
		return nil, serverutils.NewInternalError("Failed to send message", err)
	}

	res := s.msgMapper.ToResponse(msg)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sess.Id, res)
	}
	s.publish(ctx, events.SessionMessageSent(sess.Id, msg.Id, string(msg.SenderRole), string(msg.Type), msg.SentAt))

	return res, nil
}

func (s *sessionService) findSession(ctx context.Context, id string) (*entity.Session, error) {
	sess, err := s.sessionRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, serverutils.NewNotFoundError("Session not found")
		}
		return nil, err
	}
	return sess, nil
}

// publish is best effort; the request has already succeeded.
func (s *sessionService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("SESSION_SERVICE", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
