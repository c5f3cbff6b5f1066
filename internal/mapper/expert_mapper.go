package mapper

import (
	"expert-session-be/internal/dto"
	"expert-session-be/internal/entity"
	"expert-session-be/pkg/ai/matcher"

	"github.com/samber/lo"
)

type ExpertMapper struct{}

func NewExpertMapper() *ExpertMapper {
	return &ExpertMapper{}
}

func (m *ExpertMapper) ToResponse(e *entity.Expert) *dto.ExpertResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpertResponse{
		Id:          e.Id,
		Name:        e.Name,
		Title:       e.Title,
		AvatarURL:   e.AvatarURL,
		HourlyRate:  e.HourlyRate,
		Skills:      e.Skills,
		Rating:      e.Rating,
		ReviewCount: e.ReviewCount,
		Bio:         e.Bio,
		Tags:        e.Tags,
	}
}

func (m *ExpertMapper) ToResponses(experts []*entity.Expert) []*dto.ExpertResponse {
	return lo.Map(experts, func(e *entity.Expert, _ int) *dto.ExpertResponse {
		return m.ToResponse(e)
	})
}

// ToCandidate keeps only the fields the matcher shows the model.
func (m *ExpertMapper) ToCandidate(e *entity.Expert) matcher.Candidate {
	return matcher.Candidate{
		ID:     e.Id,
		Name:   e.Name,
		Skills: e.Skills,
		Bio:    e.Bio,
		Tags:   e.Tags,
	}
}

func (m *ExpertMapper) ToCandidates(experts []*entity.Expert) []matcher.Candidate {
	return lo.Map(experts, func(e *entity.Expert, _ int) matcher.Candidate {
		return m.ToCandidate(e)
	})
}
