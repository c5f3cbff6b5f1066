package memory

import (
	"context"
	"slices"

	"expert-session-be/internal/entity"
	"expert-session-be/internal/repository/contract"
	"expert-session-be/internal/repository/specification"
)

// ExpertRepository serves a fixed catalog. Reads hand out copies so callers
// cannot mutate the reference data.
type ExpertRepository struct {
	experts []*entity.Expert
	byId    map[string]*entity.Expert
}

var _ contract.ExpertRepository = (*ExpertRepository)(nil)

func NewExpertRepository(experts []*entity.Expert) *ExpertRepository {
	r := &ExpertRepository{
		experts: make([]*entity.Expert, 0, len(experts)),
		byId:    make(map[string]*entity.Expert, len(experts)),
	}
	for _, e := range experts {
		c := cloneExpert(e)
		r.experts = append(r.experts, c)
		r.byId[c.Id] = c
	}
	return r
}

func (r *ExpertRepository) FindById(ctx context.Context, id string) (*entity.Expert, error) {
	e, ok := r.byId[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return cloneExpert(e), nil
}

func (r *ExpertRepository) FindAll(ctx context.Context, specs ...specification.Specification[entity.Expert]) ([]*entity.Expert, error) {
	out := make([]*entity.Expert, 0, len(r.experts))
	for _, e := range r.experts {
		if specification.SatisfiesAll(e, specs...) {
			out = append(out, cloneExpert(e))
		}
	}
	return out, nil
}

func cloneExpert(e *entity.Expert) *entity.Expert {
	c := *e
	c.Skills = slices.Clone(e.Skills)
	c.Tags = slices.Clone(e.Tags)
	return &c
}
