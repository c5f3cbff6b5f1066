package service

import (
	"context"
	"errors"
	"strings"

	"expert-session-be/internal/dto"
	"expert-session-be/internal/entity"
	"expert-session-be/internal/mapper"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/internal/pkg/serverutils"
	"expert-session-be/internal/repository/contract"
	"expert-session-be/internal/repository/specification"
	"expert-session-be/pkg/ai/matcher"

	"github.com/samber/lo"
)

const (
	MatchModeAll       = "all"
	MatchModeAIMatched = "ai_matched"
)

type IExpertService interface {
	List(ctx context.Context, req *dto.ListExpertsRequest) ([]*dto.ExpertResponse, error)
	Show(ctx context.Context, id string) (*dto.ExpertResponse, error)
	Match(ctx context.Context, req *dto.MatchExpertsRequest) (*dto.MatchExpertsResponse, error)
}

type expertService struct {
	expertRepo contract.ExpertRepository
	matcher    *matcher.Matcher
	mapper     *mapper.ExpertMapper
	logger     logger.ILogger
}

func NewExpertService(
	expertRepo contract.ExpertRepository,
	matcher *matcher.Matcher,
	logger logger.ILogger,
) IExpertService {
	return &expertService{
		expertRepo: expertRepo,
		matcher:    matcher,
		mapper:     mapper.NewExpertMapper(),
		logger:     logger,
	}
}

func (s *expertService) List(ctx context.Context, req *dto.ListExpertsRequest) ([]*dto.ExpertResponse, error) {
	specs := []specification.Specification[entity.Expert]{}
	if q := strings.TrimSpace(req.Query); q != "" {
		specs = append(specs, specification.ExpertByKeyword{Keyword: q})
	}
	if tag := strings.TrimSpace(req.Tag); tag != "" {
		specs = append(specs, specification.ExpertByTag{Tag: tag})
	}

	experts, err := s.expertRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponses(experts), nil
}

func (s *expertService) Show(ctx context.Context, id string) (*dto.ExpertResponse, error) {
	expert, err := s.expertRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, serverutils.NewNotFoundError("Expert not found")
		}
		return nil, err
	}
	return s.mapper.ToResponse(expert), nil
}

// Match runs the AI matcher over the whole catalog. A blank query skips the
// model and lists everyone.
func (s *expertService) Match(ctx context.Context, req *dto.MatchExpertsRequest) (*dto.MatchExpertsResponse, error) {
	experts, err := s.expertRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		ids := lo.Map(experts, func(e *entity.Expert, _ int) string { return e.Id })
		return &dto.MatchExpertsResponse{
			Mode:       MatchModeAll,
			MatchedIds: ids,
			Experts:    s.mapper.ToResponses(experts),
		}, nil
	}

	result := s.matcher.Match(ctx, query, s.mapper.ToCandidates(experts))

	byId := lo.KeyBy(experts, func(e *entity.Expert) string { return e.Id })
	matched := lo.FilterMap(result.IDs, func(id string, _ int) (*entity.Expert, bool) {
		e, ok := byId[id]
		return e, ok
	})

	s.logger.Info("EXPERT_SERVICE", "Experts matched", map[string]interface{}{
		"query_len": len(query),
		"matched":   len(matched),
		"source":    result.Source,
	})

	return &dto.MatchExpertsResponse{
		Mode:       MatchModeAIMatched,
		Source:     result.Source,
		MatchedIds: result.IDs,
		Experts:    s.mapper.ToResponses(matched),
	}, nil
}
