package specification

import (
	"strings"

	"expert-session-be/internal/entity"

	"github.com/samber/lo"
)

// ExpertByKeyword matches the name or any skill, case-insensitively.
type ExpertByKeyword struct {
	Keyword string
}

func (s ExpertByKeyword) IsSatisfiedBy(e *entity.Expert) bool {
	q := strings.ToLower(strings.TrimSpace(s.Keyword))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Name), q) {
		return true
	}
	return lo.ContainsBy(e.Skills, func(skill string) bool {
		return strings.Contains(strings.ToLower(skill), q)
	})
}

type ExpertByTag struct {
	Tag string
}

func (s ExpertByTag) IsSatisfiedBy(e *entity.Expert) bool {
	return lo.ContainsBy(e.Tags, func(tag string) bool {
		return strings.EqualFold(tag, s.Tag)
	})
}

type ExpertByIds struct {
	Ids []string
}

func (s ExpertByIds) IsSatisfiedBy(e *entity.Expert) bool {
	return lo.Contains(s.Ids, e.Id)
}
